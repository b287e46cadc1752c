// Package account orchestrates storefront account operations: each operation
// is a short sequential pipeline of upstream GraphQL calls with an explicit
// failure exit at every stage, ending in a session write.
package account

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"storefront-gateway/internal/domain"
	sessionrepo "storefront-gateway/internal/repository/session"
	"storefront-gateway/internal/storefront"
)

// Upstream executes one storefront GraphQL call for a tenant.
type Upstream interface {
	Post(ctx context.Context, tenant domain.Tenant, payload storefront.Payload, out any) error
}

// Service sequences upstream calls per account action and keeps the session
// record consistent with upstream state. Session writes happen only after
// every validation and upstream call for the request has succeeded.
type Service struct {
	upstream Upstream
	sessions sessionrepo.Store
	logger   *log.Logger
	now      func() time.Time
}

// New creates a Service.
func New(upstream Upstream, sessions sessionrepo.Store, logger *log.Logger) *Service {
	return &Service{
		upstream: upstream,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// ActivationParams is the customerActivate input pair from the invite email.
type ActivationParams struct {
	ActivationToken string `json:"activationToken" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// ActivateInput carries an account activation request.
type ActivateInput struct {
	ID    string           `json:"id" validate:"required"`
	Input ActivationParams `json:"input"`
	Store domain.Tenant    `json:"store"`
}

// Activate turns an invited customer into an active one and logs them in.
func (s *Service) Activate(ctx context.Context, sessionID string, in ActivateInput) (*domain.CustomerRecord, error) {
	const op = "customerActivate"

	if err := in.Store.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, &domain.ValidationError{Message: "customer id required"}
	}
	if in.Input.ActivationToken == "" || in.Input.Password == "" {
		return nil, &domain.ValidationError{Message: "activation token and password required"}
	}

	payload := storefront.NewPayload(storefront.CustomerActivateDocument, map[string]any{
		"id":    in.ID,
		"input": in.Input,
	})
	var data storefront.ActivateData
	if err := s.upstream.Post(ctx, in.Store, payload, &data); err != nil {
		return nil, err
	}

	res := data.CustomerActivate
	if len(res.CustomerUserErrors) > 0 {
		return nil, &domain.DomainError{Op: op, Errors: res.CustomerUserErrors}
	}
	if res.Customer == nil || res.CustomerAccessToken == nil {
		return nil, &domain.ConsistencyError{Op: op, Message: "customer not found when trying to activate customer"}
	}

	record := domain.CustomerRecord{
		IsLoggedIn:          true,
		CustomerAccessToken: res.CustomerAccessToken,
		ID:                  res.Customer.ID,
		FirstName:           res.Customer.FirstName,
		LastName:            res.Customer.LastName,
		Email:               res.Customer.Email,
		AcceptsMarketing:    res.Customer.AcceptsMarketing,
	}
	if err := s.sessions.Set(ctx, sessionID, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// RegisterInput carries a self-service registration request.
type RegisterInput struct {
	Email     string        `json:"email" validate:"required,email"`
	Password  string        `json:"password" validate:"required"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Store     domain.Tenant `json:"store"`
}

// Register creates the customer upstream and immediately logs them in. The
// two calls form one logical transaction from the caller's point of view: if
// the create fails the login never runs. A login failure after a successful
// create is surfaced as-is; the created account is not rolled back.
func (s *Service) Register(ctx context.Context, sessionID string, in RegisterInput) (*domain.CustomerRecord, error) {
	const op = "customerCreate"

	if err := in.Store.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, &domain.ValidationError{Message: "email and password required"}
	}

	payload := storefront.NewPayload(storefront.CustomerCreateDocument, map[string]any{
		"input": map[string]any{
			"email":     in.Email,
			"password":  in.Password,
			"firstName": in.FirstName,
			"lastName":  in.LastName,
		},
	})
	var data storefront.CreateData
	if err := s.upstream.Post(ctx, in.Store, payload, &data); err != nil {
		return nil, err
	}
	if data.CustomerCreate == nil {
		return nil, &domain.ConsistencyError{Op: op, Message: "customer not created"}
	}
	if len(data.CustomerCreate.CustomerUserErrors) > 0 {
		return nil, &domain.DomainError{Op: op, Errors: data.CustomerCreate.CustomerUserErrors}
	}

	token, err := s.createAccessToken(ctx, in.Store, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	record := domain.CustomerRecord{
		IsLoggedIn:          true,
		CustomerAccessToken: token,
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
	}
	if err := s.sessions.Set(ctx, sessionID, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Session reads the caller's session record. A missing record or an expired
// token yields a logged-out record; the expired case also destroys the
// stored session, and exactly one of the two paths runs per request.
func (s *Service) Session(ctx context.Context, sessionID string) (*domain.CustomerRecord, error) {
	loggedOut := &domain.CustomerRecord{IsLoggedIn: false}

	if sessionID == "" {
		return loggedOut, nil
	}
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return loggedOut, nil
		}
		return nil, err
	}

	if record.TokenExpired(s.now()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("destroy expired session %s: %v", sessionID, err)
		}
		return loggedOut, nil
	}

	record.IsLoggedIn = true
	return record, nil
}

// ProfileChanges holds the updatable profile fields; only set fields are sent
// upstream. A password change requires the email to re-authenticate with.
type ProfileChanges struct {
	FirstName        *string `json:"firstName,omitempty"`
	LastName         *string `json:"lastName,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	AcceptsMarketing *bool   `json:"acceptsMarketing,omitempty"`
	Password         *string `json:"password,omitempty"`
}

// UpdateProfileInput carries a profile update request.
type UpdateProfileInput struct {
	CustomerAccessToken domain.AccessToken `json:"customerAccessToken"`
	Customer            ProfileChanges     `json:"customer"`
	Store               domain.Tenant      `json:"store"`
}

// UpdateProfile applies the change upstream, rotates the access token when a
// password was part of it (the storefront invalidates the old token on
// password change), refetches the profile with whichever token is current,
// and persists the fresh record. The session is written only after the final
// fetch succeeds.
func (s *Service) UpdateProfile(ctx context.Context, sessionID string, in UpdateProfileInput) (*domain.CustomerRecord, error) {
	const op = "customerUpdate"

	if err := in.Store.Validate(); err != nil {
		return nil, err
	}
	if in.CustomerAccessToken.AccessToken == "" {
		return nil, &domain.ValidationError{Message: "customer access token required"}
	}
	if in.Customer.Password != nil && (in.Customer.Email == nil || *in.Customer.Email == "") {
		return nil, &domain.ValidationError{Message: "email required when changing password"}
	}

	payload := storefront.NewPayload(storefront.CustomerUpdateDocument, map[string]any{
		"customerAccessToken": in.CustomerAccessToken.AccessToken,
		"customer":            in.Customer,
	})
	var data storefront.UpdateData
	if err := s.upstream.Post(ctx, in.Store, payload, &data); err != nil {
		return nil, err
	}
	if len(data.CustomerUpdate.CustomerUserErrors) > 0 {
		return nil, &domain.DomainError{Op: op, Errors: data.CustomerUpdate.CustomerUserErrors}
	}
	if data.CustomerUpdate.Customer == nil {
		return nil, &domain.ConsistencyError{Op: op, Message: "customer not found when trying to update account information"}
	}

	current := in.CustomerAccessToken
	if in.Customer.Password != nil {
		rotated, err := s.createAccessToken(ctx, in.Store, *in.Customer.Email, *in.Customer.Password)
		if err != nil {
			return nil, err
		}
		current = *rotated
	}

	detail, err := s.fetchCustomer(ctx, in.Store, current.AccessToken)
	if err != nil {
		return nil, err
	}

	record := domain.CustomerRecord{
		IsLoggedIn:          true,
		CustomerAccessToken: &current,
		FirstName:           detail.FirstName,
		LastName:            detail.LastName,
		Email:               detail.Email,
	}
	if err := s.sessions.Set(ctx, sessionID, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// createAccessToken exchanges credentials for a fresh access token.
func (s *Service) createAccessToken(ctx context.Context, tenant domain.Tenant, email, password string) (*domain.AccessToken, error) {
	const op = "customerAccessTokenCreate"

	payload := storefront.NewPayload(storefront.CustomerAccessTokenCreateDocument, map[string]any{
		"input": map[string]any{
			"email":    email,
			"password": password,
		},
	})
	var data storefront.TokenCreateData
	if err := s.upstream.Post(ctx, tenant, payload, &data); err != nil {
		return nil, err
	}
	res := data.CustomerAccessTokenCreate
	if res == nil {
		return nil, &domain.ConsistencyError{Op: op, Message: "access token not issued"}
	}
	if len(res.CustomerUserErrors) > 0 {
		return nil, &domain.DomainError{Op: op, Errors: res.CustomerUserErrors}
	}
	if res.CustomerAccessToken == nil {
		return nil, &domain.ConsistencyError{Op: op, Message: "access token not issued"}
	}
	return res.CustomerAccessToken, nil
}

// fetchCustomer re-reads the full profile with the given token.
func (s *Service) fetchCustomer(ctx context.Context, tenant domain.Tenant, accessToken string) (*storefront.CustomerDetail, error) {
	const op = "customerQuery"

	payload := storefront.NewPayload(storefront.CustomerQueryDocument, map[string]any{
		"customerAccessToken": accessToken,
	})
	var data storefront.CustomerQueryData
	if err := s.upstream.Post(ctx, tenant, payload, &data); err != nil {
		return nil, err
	}
	if data.Customer == nil {
		return nil, &domain.ConsistencyError{Op: op, Message: "customer not found"}
	}
	return data.Customer, nil
}
