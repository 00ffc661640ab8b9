package handlers

import (
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

const (
	testAccount = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	testTenant  = "11111111-2222-3333-4444-555555555555"
)

func serveSession(h *SessionHandler, target, tenant string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/v1/session", h.GetSessionResult)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if tenant != "" {
		req.Header.Set(HeaderTenantID, tenant)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionHandler_GetSessionResult(t *testing.T) {
	gin.SetMode(gin.TestMode)
	target := "/v1/session?kbAccountId=" + testAccount + "&sessionId=S1&sessionResult=R1"

	t.Run("completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionVerificationUseCase(ctrl)
		uc.EXPECT().CheckSessionResult(gomock.Any(), testAccount, testTenant, "S1", "R1").
			Return(map[string]string{"sessionId": "S1", "sessionStatus": "completed"}, nil)

		w := serveSession(NewSessionHandler(uc, nil), target, testTenant)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sessionId"] != "S1" || body["sessionStatus"] != "completed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionVerificationUseCase(ctrl)

		w := serveSession(NewSessionHandler(uc, nil), "/v1/session?kbAccountId=x&sessionId=S1&sessionResult=R1", testTenant)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionVerificationUseCase(ctrl)

		w := serveSession(NewSessionHandler(uc, nil), target, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionVerificationUseCase(ctrl)
		uc.EXPECT().CheckSessionResult(gomock.Any(), testAccount, testTenant, "", "R1").Return(nil, usecase.ErrInvalidSessionInput)

		w := serveSession(NewSessionHandler(uc, nil), "/v1/session?kbAccountId="+testAccount+"&sessionId=%20&sessionResult=R1", testTenant)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionVerificationUseCase(ctrl)
		notCompleted := &entities.GatewayError{Kind: entities.KindInternal, Message: "payment for session: S1, status: pending", Err: usecase.ErrSessionNotCompleted}
		uc.EXPECT().CheckSessionResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notCompleted)

		w := serveSession(NewSessionHandler(uc, nil), target, testTenant)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SESSION_NOT_COMPLETED" || body["message"] != "payment for session: S1, status: pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionVerificationUseCase(ctrl)
		uc.EXPECT().CheckSessionResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &entities.GatewayError{Kind: entities.KindInternal, Err: usecase.ErrHostAuthenticationFailed})

		w := serveSession(NewSessionHandler(uc, nil), target, testTenant)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
