package account

import (
	"context"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/storefront"
)

// AddressFields is the mailing address input accepted by the create and
// update actions.
type AddressFields struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address1  string `json:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Province  string `json:"province,omitempty"`
	Zip       string `json:"zip,omitempty"`
}

// UpdateAddressInput carries one address action. Action selects the mutation;
// ID and Address are required or forbidden depending on it.
type UpdateAddressInput struct {
	Action              domain.AddressAction `json:"action" validate:"required"`
	ID                  string               `json:"id,omitempty"`
	Address             *AddressFields       `json:"address,omitempty"`
	CustomerAccessToken domain.AccessToken   `json:"customerAccessToken"`
	Store               domain.Tenant        `json:"store"`
}

// UpdateAddress runs one of the four address mutations, then refetches the
// full profile so the session's address and order data stay consistent with
// upstream. When the mutation reports neither a result nor a user error the
// whole operation is a no-op: nothing is refetched or persisted and a nil
// record is returned.
func (s *Service) UpdateAddress(ctx context.Context, sessionID string, in UpdateAddressInput) (*domain.CustomerRecord, error) {
	if err := in.Store.Validate(); err != nil {
		return nil, err
	}
	if in.CustomerAccessToken.AccessToken == "" {
		return nil, &domain.ValidationError{Message: "customer access token required"}
	}

	applied, created, err := s.runAddressAction(ctx, in)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, nil
	}

	detail, err := s.fetchCustomer(ctx, in.Store, in.CustomerAccessToken.AccessToken)
	if err != nil {
		return nil, err
	}

	token := in.CustomerAccessToken
	record := recordFromDetail(detail, &token)
	record.Address = created
	if err := s.sessions.Set(ctx, sessionID, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// runAddressAction dispatches exactly one mutation for the action. It reports
// whether the mutation produced its expected result, and for CREATE also the
// address object the storefront returned.
func (s *Service) runAddressAction(ctx context.Context, in UpdateAddressInput) (applied bool, created *domain.Address, err error) {
	token := in.CustomerAccessToken.AccessToken

	switch in.Action {
	case domain.AddressCreate:
		if in.Address == nil {
			return false, nil, &domain.ValidationError{Message: "address required for create"}
		}
		payload := storefront.NewPayload(storefront.CustomerAddressCreateDocument, map[string]any{
			"customerAccessToken": token,
			"address":             in.Address,
		})
		var data storefront.AddressCreateData
		if err := s.upstream.Post(ctx, in.Store, payload, &data); err != nil {
			return false, nil, err
		}
		res := data.CustomerAddressCreate
		if len(res.CustomerUserErrors) > 0 {
			return false, nil, &domain.DomainError{Op: "customerAddressCreate", Errors: res.CustomerUserErrors}
		}
		if res.CustomerAddress == nil {
			return false, nil, nil
		}
		return true, res.CustomerAddress, nil

	case domain.AddressUpdate:
		if in.ID == "" || in.Address == nil {
			return false, nil, &domain.ValidationError{Message: "id and address required for update"}
		}
		payload := storefront.NewPayload(storefront.CustomerAddressUpdateDocument, map[string]any{
			"customerAccessToken": token,
			"id":                  in.ID,
			"address":             in.Address,
		})
		var data storefront.AddressUpdateData
		if err := s.upstream.Post(ctx, in.Store, payload, &data); err != nil {
			return false, nil, err
		}
		res := data.CustomerAddressUpdate
		if len(res.CustomerUserErrors) > 0 {
			return false, nil, &domain.DomainError{Op: "customerAddressUpdate", Errors: res.CustomerUserErrors}
		}
		return res.CustomerAddress != nil, nil, nil

	case domain.AddressDefaultUpdate:
		if in.ID == "" {
			return false, nil, &domain.ValidationError{Message: "id required for default update"}
		}
		payload := storefront.NewPayload(storefront.CustomerDefaultAddressUpdateDocument, map[string]any{
			"customerAccessToken": token,
			"addressId":           in.ID,
		})
		var data storefront.DefaultAddressUpdateData
		if err := s.upstream.Post(ctx, in.Store, payload, &data); err != nil {
			return false, nil, err
		}
		res := data.CustomerDefaultAddressUpdate
		if len(res.CustomerUserErrors) > 0 {
			return false, nil, &domain.DomainError{Op: "customerDefaultAddressUpdate", Errors: res.CustomerUserErrors}
		}
		return res.Customer != nil, nil, nil

	case domain.AddressDelete:
		if in.ID == "" {
			return false, nil, &domain.ValidationError{Message: "id required for delete"}
		}
		payload := storefront.NewPayload(storefront.CustomerAddressDeleteDocument, map[string]any{
			"customerAccessToken": token,
			"id":                  in.ID,
		})
		var data storefront.AddressDeleteData
		if err := s.upstream.Post(ctx, in.Store, payload, &data); err != nil {
			return false, nil, err
		}
		res := data.CustomerAddressDelete
		if len(res.CustomerUserErrors) > 0 {
			return false, nil, &domain.DomainError{Op: "customerAddressDelete", Errors: res.CustomerUserErrors}
		}
		return res.DeletedCustomerAddressID != nil, nil, nil

	default:
		return false, nil, &domain.ValidationError{Message: "unknown address action"}
	}
}

// recordFromDetail shapes the refetched profile into a session record.
func recordFromDetail(detail *storefront.CustomerDetail, token *domain.AccessToken) domain.CustomerRecord {
	return domain.CustomerRecord{
		IsLoggedIn:          true,
		CustomerAccessToken: token,
		FirstName:           detail.FirstName,
		LastName:            detail.LastName,
		Email:               detail.Email,
		AcceptsMarketing:    detail.AcceptsMarketing,
		Phone:               detail.Phone,
		Tags:                detail.Tags,
		DefaultAddress:      detail.DefaultAddress,
		Addresses:           detail.AddressList(),
		Orders:              detail.OrderList(),
		ProductWarranty:     detail.ProductWarranty,
	}
}
