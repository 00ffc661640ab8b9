package handlers

import (
	"errors"
	"net/http"

	request "checkout_gateway/internal/adapter/http/dto/request"
	response "checkout_gateway/internal/adapter/http/dto/response"
	"checkout_gateway/internal/usecase"
	"checkout_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TransactionHandler exposes recorded notifications of a checkout session.
type TransactionHandler struct {
	usecase usecase.INotificationQueryUseCase
	logger  *zap.Logger
}

func NewTransactionHandler(uc usecase.INotificationQueryUseCase, logger *zap.Logger) *TransactionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionHandler{usecase: uc, logger: logger}
}

// ListTransactions godoc
// @Summary      List session transactions
// @Tags         data
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant id"
// @Param        kbAccountId  query   string  true  "Account id"
// @Param        sessionId    query   string  true  "Checkout session id"
// @Success      200  {array}   object
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /data [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q request.TransactionsQuery
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

	records, err := h.usecase.ListTransactionsForSession(c.Request.Context(), q.KbAccountID, q.SessionID, tenant)
	if err != nil {
		h.logger.Error("[data][handler] list failed", zap.String("session_id", q.SessionID), zap.Error(err))
		writeAppError(c, mapTransactionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionRecords(records))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccountID), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainError("INVALID_PARAMETER", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionQueryFailed):
		return pkg.NewDomainError("TRANSACTION_QUERY_FAILED", "Error retrieving transaction data", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
