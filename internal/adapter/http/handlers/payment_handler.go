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

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler exposes the payment mutations of the tenant's processor.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, logger: logger}
}

// Checkout godoc
// @Summary      Create a hosted-checkout session
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                  true  "Tenant id"
// @Param        payload      body    request.PaymentRequest  true  "Payment"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) { h.execute(c, usecase.OperationCheckout) }

// Purchase godoc
// @Summary      Charge a stored payment method
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                  true  "Tenant id"
// @Param        payload      body    request.PaymentRequest  true  "Payment"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/purchase [post]
func (h *PaymentHandler) Purchase(c *gin.Context) { h.execute(c, usecase.OperationPurchase) }

// Refund godoc
// @Summary      Refund a captured payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                  true  "Tenant id"
// @Param        payload      body    request.PaymentRequest  true  "Payment"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) { h.execute(c, usecase.OperationRefund) }

// Void godoc
// @Summary      Cancel an authorization
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                  true  "Tenant id"
// @Param        payload      body    request.PaymentRequest  true  "Payment"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/void [post]
func (h *PaymentHandler) Void(c *gin.Context) { h.execute(c, usecase.OperationVoid) }

func (h *PaymentHandler) execute(c *gin.Context, op usecase.PaymentOperation) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPaymentPayload)
		return
	}
	tenant := tenantID(c)
	if err := request.ValidateTenantID(tenant); err != nil {
		writeAppError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}
	cmd, err := payload.ToCommand(tenant)
	if err != nil {
		writeAppError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}
	h.logger.Info("[payment][handler] start", zap.String("operation", string(op)), zap.String("kb_transaction_id", cmd.KbTransactionID))

	out, err := h.usecase.Execute(c.Request.Context(), op, cmd)
	if err != nil {
		h.logger.Error("[payment][handler] failed",
			zap.String("operation", string(op)),
			zap.String("kb_transaction_id", cmd.KbTransactionID),
			zap.String("kind", string(entities.KindOf(err))),
			zap.Error(err),
		)
		writeAppError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProcessorOutput(out))
}

func mapPaymentError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrConfigUnresolved) {
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured for this tenant", err, http.StatusUnprocessableEntity)
	}

	var gwErr *entities.GatewayError
	errors.As(err, &gwErr)
	switch entities.KindOf(err) {
	case entities.KindPreconditionNotMet:
		msg := "Invalid request"
		if gwErr != nil && gwErr.Message != "" {
			msg = gwErr.Message
		}
		return pkg.NewDomainError("INVALID_REQUEST", msg, err, http.StatusBadRequest)
	case entities.KindProcessorRejection:
		code := "PAYMENT_REJECTED"
		if gwErr != nil && gwErr.Code != "" {
			code = "PAYMENT_REJECTED_" + gwErr.Code
		}
		return pkg.NewDomainError(code, "Payment rejected by the processor", err, http.StatusPaymentRequired)
	case entities.KindTransientTransport:
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable, retry later", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
