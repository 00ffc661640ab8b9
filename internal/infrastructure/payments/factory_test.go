package payments

import (
	"context"
	"errors"
	"testing"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestFactory_NewTransport(t *testing.T) {
	f := &Factory{Logger: zap.NewNop()}

	t.Run("adyen by default", func(t *testing.T) {
		tr, err := f.NewTransport(adyenConfig)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := tr.(*AdyenTransport); !ok {
			t.Fatalf("expected adyen transport, got %T", tr)
		}
	})

	t.Run("mercadopago", func(t *testing.T) {
		cfg := adyenConfig
		cfg.Processor = entities.ProcessorMercadoPago
		tr, err := f.NewTransport(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := tr.(*MercadoPagoTransport); !ok {
			t.Fatalf("expected mercadopago transport, got %T", tr)
		}
	})

	t.Run("unknown processor", func(t *testing.T) {
		cfg := adyenConfig
		cfg.Processor = "stripe"
		if _, err := f.NewTransport(cfg); !errors.Is(err, usecase.ErrUnsupportedProcessor) {
			t.Fatalf("expected ErrUnsupportedProcessor, got %v", err)
		}
	})

	t.Run("live without prefix", func(t *testing.T) {
		cfg := adyenConfig
		cfg.Environment = entities.EnvironmentLive
		tr, err := f.NewTransport(cfg)
		if tr != nil || !errors.Is(err, ErrMissingLiveURLPrefix) {
			t.Fatalf("expected ErrMissingLiveURLPrefix, got %v", err)
		}
	})

	t.Run("mock mode", func(t *testing.T) {
		mock := &Factory{MockMode: true}
		tr, err := mock.NewTransport(entities.TenantGatewayConfig{Processor: "anything"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp, err := tr.Purchase(context.Background(), "EUR", decimal.RequireFromString("1.00"), "txn", "acc", "stored")
		if err != nil || resp.PspReference == "" {
			t.Fatalf("unexpected mock purchase: %+v err=%v", resp, err)
		}
		status, err := tr.LookupSessionResult(context.Background(), "CS1", "R1")
		if err != nil || status.Status != entities.SessionStatusCompleted {
			t.Fatalf("unexpected mock session: %+v err=%v", status, err)
		}
	})
}

func TestMapMercadoPagoStatus(t *testing.T) {
	cases := map[string]string{
		"approved":   entities.SessionStatusCompleted,
		"in_process": "pending",
		"authorized": "pending",
		"rejected":   "failed",
		"":           "failed",
	}
	for in, want := range cases {
		if got := mapMercadoPagoStatus(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestMercadoPagoTransport_Validation(t *testing.T) {
	if _, err := NewMercadoPagoTransport(entities.TenantGatewayConfig{}, 0, nil); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}

	tr, err := NewMercadoPagoTransport(entities.TenantGatewayConfig{APIKey: "TEST-token"}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tr.Reverse(context.Background(), "txn", "not-a-number"); !errors.Is(err, ErrInvalidPaymentReference) {
		t.Fatalf("expected ErrInvalidPaymentReference, got %v", err)
	}
	if _, err := tr.LookupSessionResult(context.Background(), "pref-1", "abc"); !errors.Is(err, ErrInvalidPaymentReference) {
		t.Fatalf("expected ErrInvalidPaymentReference, got %v", err)
	}
}
