package storefront

// Static operation documents sent to the storefront GraphQL API. Every
// mutation selects customerUserErrors so callers can detect domain failures
// embedded in 200 responses.

const CustomerActivateDocument = `mutation customerActivate($id: ID!, $input: CustomerActivateInput!) {
  customerActivate(id: $id, input: $input) {
    customer {
      id
      firstName
      lastName
      email
      acceptsMarketing
    }
    customerAccessToken {
      accessToken
      expiresAt
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}`

const CustomerCreateDocument = `mutation customerCreate($input: CustomerCreateInput!) {
  customerCreate(input: $input) {
    customer {
      id
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}`

const CustomerAccessTokenCreateDocument = `mutation customerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
  customerAccessTokenCreate(input: $input) {
    customerAccessToken {
      accessToken
      expiresAt
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}`

const CustomerUpdateDocument = `mutation customerUpdate($customerAccessToken: String!, $customer: CustomerUpdateInput!) {
  customerUpdate(customerAccessToken: $customerAccessToken, customer: $customer) {
    customer {
      id
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}`

const addressFields = `
  id
  firstName
  lastName
  address1
  address2
  company
  phone
  city
  country
  province
  zip
`

const CustomerAddressCreateDocument = `mutation customerAddressCreate($customerAccessToken: String!, $address: MailingAddressInput!) {
  customerAddressCreate(customerAccessToken: $customerAccessToken, address: $address) {
    customerAddress {` + addressFields + `}
    customerUserErrors {
      code
      field
      message
    }
  }
}`

const CustomerAddressUpdateDocument = `mutation customerAddressUpdate($customerAccessToken: String!, $id: ID!, $address: MailingAddressInput!) {
  customerAddressUpdate(customerAccessToken: $customerAccessToken, id: $id, address: $address) {
    customerAddress {` + addressFields + `}
    customerUserErrors {
      code
      field
      message
    }
  }
}`

const CustomerAddressDeleteDocument = `mutation customerAddressDelete($id: ID!, $customerAccessToken: String!) {
  customerAddressDelete(id: $id, customerAccessToken: $customerAccessToken) {
    customerUserErrors {
      code
      field
      message
    }
    deletedCustomerAddressId
  }
}`

const CustomerDefaultAddressUpdateDocument = `mutation customerDefaultAddressUpdate($customerAccessToken: String!, $addressId: ID!) {
  customerDefaultAddressUpdate(customerAccessToken: $customerAccessToken, addressId: $addressId) {
    customer {
      id
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}`

const CustomerQueryDocument = `query customerQuery($customerAccessToken: String!) {
  customer(customerAccessToken: $customerAccessToken) {
    firstName
    lastName
    acceptsMarketing
    phone
    email
    tags
    defaultAddress {` + addressFields + `}
    addresses(first: 100) {
      edges {
        node {` + addressFields + `}
      }
    }
    orders(first: 100) {
      edges {
        node {
          orderNumber
          totalPrice {
            amount
            currencyCode
          }
          processedAt
          statusUrl
          successfulFulfillments(first: 100) {
            trackingInfo(first: 100) {
              number
              url
            }
          }
          lineItems(first: 100) {
            edges {
              node {
                customAttributes {
                  key
                  value
                }
                quantity
                title
                variant {
                  title
                  price {
                    amount
                    currencyCode
                  }
                  image {
                    originalSrc
                  }
                }
              }
            }
          }
        }
      }
    }
    productwarranty: metafield(namespace: "polaroid", key: "product_warranty") {
      id
      value
    }
  }
}`
