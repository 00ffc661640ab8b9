package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout_gateway/internal/adapter/http/handlers/mocks"
	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func serveTransactions(h *TransactionHandler, target string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/v1/data", h.ListTransactions)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(HeaderTenantID, testTenant)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	target := "/v1/data?kbAccountId=" + testAccount + "&sessionId=S1"

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationQueryUseCase(ctrl)
		uc.EXPECT().ListTransactionsForSession(gomock.Any(), testAccount, "S1", testTenant).
			Return([]entities.TransactionRecord{{"kbPaymentId": "p1", "pspReference": "PSP1"}}, nil)

		w := serveTransactions(NewTransactionHandler(uc, nil), target)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body[0]["pspReference"] != "PSP1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationQueryUseCase(ctrl)
		uc.EXPECT().ListTransactionsForSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.TransactionRecord{}, nil)

		w := serveTransactions(NewTransactionHandler(uc, nil), target)
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationQueryUseCase(ctrl)

		w := serveTransactions(NewTransactionHandler(uc, nil), "/v1/data?kbAccountId="+testAccount)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationQueryUseCase(ctrl)
		uc.EXPECT().ListTransactionsForSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: %w", usecase.ErrTransactionQueryFailed, errors.New("ddb")))

		w := serveTransactions(NewTransactionHandler(uc, nil), target)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "TRANSACTION_QUERY_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
