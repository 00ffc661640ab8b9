package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout_gateway/internal/adapter/http/handlers/mocks"
	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func servePayment(h *PaymentHandler, path, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/v1/payments/checkout", h.Checkout)
	r.POST("/v1/payments/purchase", h.Purchase)
	r.POST("/v1/payments/refund", h.Refund)
	r.POST("/v1/payments/void", h.Void)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderTenantID, testTenant)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"kb_account_id":"` + testAccount + `","kb_transaction_id":"txn-1","currency":"EUR","amount":"10.50","payment_method":"RECURRING"}`

	t.Run("checkout success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().Execute(gomock.Any(), usecase.OperationCheckout, gomock.Any()).
			DoAndReturn(func(_ any, _ usecase.PaymentOperation, cmd usecase.PaymentCommand) (entities.ProcessorOutput, error) {
				if cmd.TenantID != testTenant || cmd.Amount.StringFixed(2) != "10.50" || cmd.PaymentMethod != entities.PaymentMethodRecurring {
					t.Errorf("unexpected command: %+v", cmd)
				}
				return entities.ProcessorOutput{FirstPaymentReferenceID: "CS1", AdditionalData: map[string]string{"sessionData": "blob"}}, nil
			})

		w := servePayment(NewPaymentHandler(uc, nil), "/v1/payments/checkout", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["first_payment_reference_id"] != "CS1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := servePayment(NewPaymentHandler(uc, nil), "/v1/payments/purchase", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := servePayment(NewPaymentHandler(uc, nil), "/v1/payments/refund",
			`{"kb_account_id":"`+testAccount+`","kb_transaction_id":"txn-1","amount":"ten"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "unresolved config", err: usecase.ErrConfigUnresolved, status: http.StatusUnprocessableEntity, code: "GATEWAY_NOT_CONFIGURED"},
		{name: "precondition", err: usecase.ErrMissingPspReference, status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "rejection", err: entities.NewProcessorRejection("14_012", "declined"), status: http.StatusPaymentRequired, code: "PAYMENT_REJECTED_14_012"},
		{name: "transient", err: entities.NewGatewayError(entities.KindTransientTransport, "timeout", nil), status: http.StatusServiceUnavailable, code: "PAYMENT_PROVIDER_UNAVAILABLE"},
		{name: "internal", err: entities.NewGatewayError(entities.KindInternal, "boom", nil), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			uc.EXPECT().Execute(gomock.Any(), usecase.OperationVoid, gomock.Any()).Return(entities.ProcessorOutput{}, tc.err)

			w := servePayment(NewPaymentHandler(uc, nil), "/v1/payments/void", body)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var resp map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp["code"] != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, resp["code"])
			}
		})
	}
}
