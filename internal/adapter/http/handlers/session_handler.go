package handlers

import (
	"errors"
	"net/http"

	request "checkout_gateway/internal/adapter/http/dto/request"
	response "checkout_gateway/internal/adapter/http/dto/response"
	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"
	"checkout_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler serves hosted-checkout session verification.
type SessionHandler struct {
	usecase usecase.ISessionVerificationUseCase
	logger  *zap.Logger
}

func NewSessionHandler(uc usecase.ISessionVerificationUseCase, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{usecase: uc, logger: logger}
}

// GetSessionResult godoc
// @Summary      Verify a checkout session
// @Description  Confirms with the processor that a hosted-checkout session completed.
// @Tags         session
// @Produce      json
// @Param        X-Tenant-ID    header  string  true  "Tenant id"
// @Param        kbAccountId    query   string  true  "Account id"
// @Param        sessionId      query   string  true  "Checkout session id"
// @Param        sessionResult  query   string  true  "Opaque session result token"
// @Success      200  {object}  response.SessionResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /session [get]
func (h *SessionHandler) GetSessionResult(c *gin.Context) {
	var q request.SessionResultQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeAppError(c, pkg.NewDomainErrorSimple("INVALID_PARAMETER", "Invalid query parameters", http.StatusBadRequest))
		return
	}
	q.Normalize()
	tenant := tenantID(c)
	if err := q.Validate(tenant); err != nil {
		writeAppError(c, pkg.NewDomainError("INVALID_PARAMETER", err.Error(), err, http.StatusBadRequest))
		return
	}
	h.logger.Info("[session][handler] check start", zap.String("session_id", q.SessionID), zap.String("tenant_id", tenant))

	result, err := h.usecase.CheckSessionResult(c.Request.Context(), q.KbAccountID, tenant, q.SessionID, q.SessionResult)
	if err != nil {
		h.logger.Warn("[session][handler] check failed", zap.String("session_id", q.SessionID), zap.Error(err))
		writeAppError(c, mapSessionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSessionResult(result))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionInput), entities.KindOf(err) == entities.KindPreconditionNotMet:
		return pkg.NewDomainError("INVALID_PARAMETER", "sessionId and sessionResult cannot be empty", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotCompleted):
		var gwErr *entities.GatewayError
		msg := "Payment session not completed"
		if errors.As(err, &gwErr) && gwErr.Message != "" {
			msg = gwErr.Message
		}
		return pkg.NewDomainError("SESSION_NOT_COMPLETED", msg, err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
