package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/service/account"
)

type stubAccountService struct {
	record *domain.CustomerRecord
	err    error
	calls  int
}

func (s *stubAccountService) Activate(_ context.Context, _ string, _ account.ActivateInput) (*domain.CustomerRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubAccountService) Register(_ context.Context, _ string, _ account.RegisterInput) (*domain.CustomerRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubAccountService) Session(_ context.Context, _ string) (*domain.CustomerRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubAccountService) UpdateProfile(_ context.Context, _ string, _ account.UpdateProfileInput) (*domain.CustomerRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubAccountService) UpdateAddress(_ context.Context, _ string, _ account.UpdateAddressInput) (*domain.CustomerRecord, error) {
	s.calls++
	return s.record, s.err
}

type stubSessionStore struct {
	pingErr error
}

func (s *stubSessionStore) Get(context.Context, string) (*domain.CustomerRecord, error) {
	return nil, domain.ErrNotFound
}
func (s *stubSessionStore) Set(context.Context, string, domain.CustomerRecord) error { return nil }
func (s *stubSessionStore) Delete(context.Context, string) error                     { return nil }
func (s *stubSessionStore) Ping(context.Context) error                               { return s.pingErr }

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(svc AccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return buildRouter(logDiscard(), Deps{Accounts: svc, Sessions: &stubSessionStore{}}, nil)
}

const activateBody = `{
  "id": "gid://customer/1",
  "input": {"activationToken": "act-tok", "password": "hunter22"},
  "store": {"customStoreDomain": "shop.example.com", "storefrontConfig": {"X-Shopify-Storefront-Access-Token": "tok"}}
}`

func TestActivateHandler_Success(t *testing.T) {
	svc := &stubAccountService{
		record: &domain.CustomerRecord{IsLoggedIn: true, Email: "ada@example.com"},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/account/activate", strings.NewReader(activateBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"ada@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "sfgw_session=") {
		t.Fatalf("session cookie not set: %q", rec.Header().Get("Set-Cookie"))
	}
}

func TestWriteHandlers_MalformedJSON(t *testing.T) {
	routes := []struct {
		name string
		path string
	}{
		{"activate", "/account/activate"},
		{"register", "/account/register"},
		{"update", "/account/update"},
		{"address", "/account/address"},
	}

	for _, tc := range routes {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAccountService{}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(`{"id": `))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if svc.calls != 0 {
				t.Fatalf("service must not be reached on malformed JSON")
			}
		})
	}
}

func TestActivateHandler_DomainError(t *testing.T) {
	svc := &stubAccountService{
		err: &domain.DomainError{
			Op: "customerActivate",
			Errors: []domain.UserError{
				{Code: "TOKEN_INVALID", Message: "Activation token is invalid"},
			},
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/account/activate", strings.NewReader(activateBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"error":"Activation token is invalid"`) || !strings.Contains(body, `"errorCode":"TOKEN_INVALID"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestActivateHandler_ConsistencyError(t *testing.T) {
	svc := &stubAccountService{
		err: &domain.ConsistencyError{Op: "customerActivate", Message: "customer not found when trying to activate customer"},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/account/activate", strings.NewReader(activateBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRegisterHandler_MissingEmail(t *testing.T) {
	svc := &stubAccountService{}
	router := newTestRouter(svc)

	body := `{"password": "hunter22", "store": {"customStoreDomain": "shop.example.com", "storefrontConfig": {"a": "b"}}}`
	req := httptest.NewRequest(http.MethodPost, "/account/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.calls != 0 {
		t.Fatalf("service must not be reached on validation failure")
	}
}

func TestSessionHandler_LoggedOut(t *testing.T) {
	svc := &stubAccountService{
		record: &domain.CustomerRecord{IsLoggedIn: false},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/account/session", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"isLoggedIn":false}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestUpdateAddressHandler_NoopRespondsNoContent(t *testing.T) {
	svc := &stubAccountService{}
	router := newTestRouter(svc)

	body := `{
	  "action": "DELETE",
	  "id": "addr-404",
	  "customerAccessToken": {"accessToken": "tok", "expiresAt": "2030-01-01T00:00:00Z"},
	  "store": {"customStoreDomain": "shop.example.com", "storefrontConfig": {"a": "b"}}
	}`
	req := httptest.NewRequest(http.MethodPost, "/account/address", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestReadyz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), Deps{Accounts: &stubAccountService{}, Sessions: &stubSessionStore{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
