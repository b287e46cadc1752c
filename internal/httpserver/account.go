package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/service/account"
)

// AccountService is the orchestrator surface the handlers depend on.
type AccountService interface {
	Activate(ctx context.Context, sessionID string, in account.ActivateInput) (*domain.CustomerRecord, error)
	Register(ctx context.Context, sessionID string, in account.RegisterInput) (*domain.CustomerRecord, error)
	Session(ctx context.Context, sessionID string) (*domain.CustomerRecord, error)
	UpdateProfile(ctx context.Context, sessionID string, in account.UpdateProfileInput) (*domain.CustomerRecord, error)
	UpdateAddress(ctx context.Context, sessionID string, in account.UpdateAddressInput) (*domain.CustomerRecord, error)
}

type accountHandlers struct {
	svc      AccountService
	validate *validator.Validate
	logger   *log.Logger
}

func newAccountHandlers(svc AccountService, logger *log.Logger) *accountHandlers {
	return &accountHandlers{
		svc:      svc,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *accountHandlers) activate(c *gin.Context) {
	var in account.ActivateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request body"})
		return
	}
	if err := h.validate.Struct(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.svc.Activate(c.Request.Context(), ensureSessionID(c), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *accountHandlers) register(c *gin.Context) {
	var in account.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request body"})
		return
	}
	if err := h.validate.Struct(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.svc.Register(c.Request.Context(), ensureSessionID(c), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *accountHandlers) session(c *gin.Context) {
	record, err := h.svc.Session(c.Request.Context(), currentSessionID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *accountHandlers) updateProfile(c *gin.Context) {
	var in account.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request body"})
		return
	}
	if err := h.validate.Struct(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.svc.UpdateProfile(c.Request.Context(), ensureSessionID(c), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *accountHandlers) updateAddress(c *gin.Context) {
	var in account.UpdateAddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request body"})
		return
	}
	if err := h.validate.Struct(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.svc.UpdateAddress(c.Request.Context(), ensureSessionID(c), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	// The mutation applied nothing and reported nothing: respond without a
	// record rather than inventing one.
	if record == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, record)
}

// respondError maps the orchestrator's error taxonomy onto HTTP statuses:
// client faults and silently rejected input are 400, upstream domain and
// transport failures are 500.
func (h *accountHandlers) respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	var cerr *domain.ConsistencyError
	var derr *domain.DomainError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.As(err, &cerr):
		c.JSON(http.StatusBadRequest, gin.H{"error": cerr.Message})
	case errors.As(err, &derr):
		body := gin.H{"error": derr.Error()}
		if code := derr.Code(); code != "" {
			body["errorCode"] = code
		}
		c.JSON(http.StatusInternalServerError, body)
	default:
		h.logger.Printf("account handler error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
