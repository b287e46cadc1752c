package storefront

import (
	"time"

	"storefront-gateway/internal/domain"
)

// CustomerSummary holds the short customer selection returned by mutations.
type CustomerSummary struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	AcceptsMarketing bool   `json:"acceptsMarketing"`
}

// CustomerRef is the id-only customer selection some mutations return.
type CustomerRef struct {
	ID string `json:"id"`
}

// ActivateData is the response shape of customerActivate.
type ActivateData struct {
	CustomerActivate struct {
		Customer            *CustomerSummary    `json:"customer"`
		CustomerAccessToken *domain.AccessToken `json:"customerAccessToken"`
		CustomerUserErrors  []domain.UserError  `json:"customerUserErrors"`
	} `json:"customerActivate"`
}

// CreateData is the response shape of customerCreate.
type CreateData struct {
	CustomerCreate *struct {
		Customer           *CustomerRef       `json:"customer"`
		CustomerUserErrors []domain.UserError `json:"customerUserErrors"`
	} `json:"customerCreate"`
}

// TokenCreateData is the response shape of customerAccessTokenCreate.
type TokenCreateData struct {
	CustomerAccessTokenCreate *struct {
		CustomerAccessToken *domain.AccessToken `json:"customerAccessToken"`
		CustomerUserErrors  []domain.UserError  `json:"customerUserErrors"`
	} `json:"customerAccessTokenCreate"`
}

// UpdateData is the response shape of customerUpdate.
type UpdateData struct {
	CustomerUpdate struct {
		Customer           *CustomerRef       `json:"customer"`
		CustomerUserErrors []domain.UserError `json:"customerUserErrors"`
	} `json:"customerUpdate"`
}

// AddressCreateData is the response shape of customerAddressCreate.
type AddressCreateData struct {
	CustomerAddressCreate struct {
		CustomerAddress    *domain.Address    `json:"customerAddress"`
		CustomerUserErrors []domain.UserError `json:"customerUserErrors"`
	} `json:"customerAddressCreate"`
}

// AddressUpdateData is the response shape of customerAddressUpdate.
type AddressUpdateData struct {
	CustomerAddressUpdate struct {
		CustomerAddress    *domain.Address    `json:"customerAddress"`
		CustomerUserErrors []domain.UserError `json:"customerUserErrors"`
	} `json:"customerAddressUpdate"`
}

// AddressDeleteData is the response shape of customerAddressDelete.
type AddressDeleteData struct {
	CustomerAddressDelete struct {
		DeletedCustomerAddressID *string            `json:"deletedCustomerAddressId"`
		CustomerUserErrors       []domain.UserError `json:"customerUserErrors"`
	} `json:"customerAddressDelete"`
}

// DefaultAddressUpdateData is the response shape of customerDefaultAddressUpdate.
type DefaultAddressUpdateData struct {
	CustomerDefaultAddressUpdate struct {
		Customer           *CustomerRef       `json:"customer"`
		CustomerUserErrors []domain.UserError `json:"customerUserErrors"`
	} `json:"customerDefaultAddressUpdate"`
}

// CustomerQueryData is the response shape of the full profile query.
type CustomerQueryData struct {
	Customer *CustomerDetail `json:"customer"`
}

// CustomerDetail mirrors the full profile selection, connections included.
type CustomerDetail struct {
	FirstName        string            `json:"firstName"`
	LastName         string            `json:"lastName"`
	AcceptsMarketing bool              `json:"acceptsMarketing"`
	Phone            string            `json:"phone"`
	Email            string            `json:"email"`
	Tags             []string          `json:"tags"`
	DefaultAddress   *domain.Address   `json:"defaultAddress"`
	Addresses        addressConnection `json:"addresses"`
	Orders           orderConnection   `json:"orders"`
	ProductWarranty  *domain.Metafield `json:"productwarranty"`
}

type addressConnection struct {
	Edges []struct {
		Node domain.Address `json:"node"`
	} `json:"edges"`
}

type orderConnection struct {
	Edges []struct {
		Node orderNode `json:"node"`
	} `json:"edges"`
}

type orderNode struct {
	OrderNumber            int                  `json:"orderNumber"`
	TotalPrice             domain.Money         `json:"totalPrice"`
	ProcessedAt            time.Time            `json:"processedAt"`
	StatusURL              string               `json:"statusUrl"`
	SuccessfulFulfillments []domain.Fulfillment `json:"successfulFulfillments"`
	LineItems              lineItemConnection   `json:"lineItems"`
}

type lineItemConnection struct {
	Edges []struct {
		Node lineItemNode `json:"node"`
	} `json:"edges"`
}

type lineItemNode struct {
	CustomAttributes []domain.Attribute `json:"customAttributes"`
	Quantity         int                `json:"quantity"`
	Title            string             `json:"title"`
	Variant          *variantNode       `json:"variant"`
}

type variantNode struct {
	Title string       `json:"title"`
	Price domain.Money `json:"price"`
	Image *struct {
		OriginalSrc string `json:"originalSrc"`
	} `json:"image"`
}

// AddressList flattens the addresses connection.
func (d *CustomerDetail) AddressList() []domain.Address {
	if len(d.Addresses.Edges) == 0 {
		return nil
	}
	out := make([]domain.Address, 0, len(d.Addresses.Edges))
	for _, e := range d.Addresses.Edges {
		out = append(out, e.Node)
	}
	return out
}

// OrderList flattens the orders connection, line items included.
func (d *CustomerDetail) OrderList() []domain.Order {
	if len(d.Orders.Edges) == 0 {
		return nil
	}
	out := make([]domain.Order, 0, len(d.Orders.Edges))
	for _, e := range d.Orders.Edges {
		n := e.Node
		order := domain.Order{
			OrderNumber:  n.OrderNumber,
			TotalPrice:   n.TotalPrice,
			ProcessedAt:  n.ProcessedAt,
			StatusURL:    n.StatusURL,
			Fulfillments: n.SuccessfulFulfillments,
		}
		for _, le := range n.LineItems.Edges {
			item := domain.LineItem{
				Title:            le.Node.Title,
				Quantity:         le.Node.Quantity,
				CustomAttributes: le.Node.CustomAttributes,
			}
			if v := le.Node.Variant; v != nil {
				variant := domain.Variant{Title: v.Title, Price: v.Price}
				if v.Image != nil {
					variant.ImageSrc = v.Image.OriginalSrc
				}
				item.Variant = &variant
			}
			order.LineItems = append(order.LineItems, item)
		}
		out = append(out, order)
	}
	return out
}
