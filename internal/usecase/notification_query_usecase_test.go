package usecase

import (
	"context"
	"errors"
	"testing"

	"checkout_gateway/internal/domain/entities"
	mock_interfaces "checkout_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNotificationQueryUseCase_ListTransactionsForSession(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewNotificationQueryUseCase(nil, zap.NewNop())

		if _, err := uc.ListTransactionsForSession(context.Background(), " ", "S1", testTenantID); !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("expected ErrInvalidAccountID, got %v", err)
		}
		if _, err := uc.ListTransactionsForSession(context.Background(), "acc-1", "", testTenantID); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("maps records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationQueryUseCase(repo, zap.NewNop())

		repo.EXPECT().ListByCheckoutSessionID(gomock.Any(), "acc-1", "S1", testTenantID).Return([]entities.Notification{
			{
				KbPaymentID:            "pay-1",
				KbPaymentTransactionID: "txn-1",
				TransactionType:        "PURCHASE",
				Amount:                 "10.50",
				Currency:               "EUR",
				TransactionStatus:      "SUCCESS",
				PspReference:           "PSP1",
				CreatedDate:            "2024-03-07T12:00:00Z",
				AdditionalData:         `{"authCode":"123"}`,
			},
		}, nil)

		records, err := uc.ListTransactionsForSession(context.Background(), "acc-1", "S1", testTenantID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		r := records[0]
		if r["kbPaymentId"] != "pay-1" || r["kbPaymentTransactionId"] != "txn-1" || r["pspReference"] != "PSP1" {
			t.Fatalf("unexpected record: %+v", r)
		}
		if r["amount"] != "10.50" || r["currency"] != "EUR" || r["additionalData"] != `{"authCode":"123"}` {
			t.Fatalf("unexpected record: %+v", r)
		}
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationQueryUseCase(repo, zap.NewNop())

		repo.EXPECT().ListByCheckoutSessionID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		records, err := uc.ListTransactionsForSession(context.Background(), "acc-1", "S1", testTenantID)
		if err != nil || records == nil || len(records) != 0 {
			t.Fatalf("expected empty slice, got %+v err=%v", records, err)
		}
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationQueryUseCase(repo, zap.NewNop())

		dbErr := errors.New("ddb")
		repo.EXPECT().ListByCheckoutSessionID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

		_, err := uc.ListTransactionsForSession(context.Background(), "acc-1", "S1", testTenantID)
		if !errors.Is(err, ErrTransactionQueryFailed) || !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped query failure, got %v", err)
		}
	})
}

func TestNormalizeAdditionalData(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "blank", raw: "  ", want: ""},
		{name: "empty object", raw: "{}", want: ""},
		{name: "sorted and compact", raw: "{ \"zeta\": \"1\",\n \"authCode\": \"123\", \"amount\": 1050 }", want: `{"amount":1050,"authCode":"123","zeta":"1"}`},
		{name: "not json", raw: "authCode=123", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeAdditionalData(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNotificationQueryUseCase_UnreadableAdditionalData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationQueryUseCase(repo, zap.NewNop())

	repo.EXPECT().ListByCheckoutSessionID(gomock.Any(), "acc-1", "S1", testTenantID).Return([]entities.Notification{
		{ID: "n1", KbPaymentID: "pay-1", AdditionalData: "not-json"},
	}, nil)

	records, err := uc.ListTransactionsForSession(context.Background(), "acc-1", "S1", testTenantID)
	if err != nil || len(records) != 1 {
		t.Fatalf("unexpected result: %+v err=%v", records, err)
	}
	if records[0]["kbPaymentId"] != "pay-1" || records[0]["additionalData"] != "" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}
