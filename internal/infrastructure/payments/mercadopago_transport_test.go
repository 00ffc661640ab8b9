package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout_gateway/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakePayments struct {
	payment.Client
	byID map[int]*payment.Response
}

func (f *fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	resp, ok := f.byID[id]
	if !ok {
		return nil, errors.New("payment not found")
	}
	return resp, nil
}

type fakePreferences struct {
	preference.Client
	byID    map[string]*preference.Response
	created []preference.Request
}

func (f *fakePreferences) Get(_ context.Context, id string) (*preference.Response, error) {
	resp, ok := f.byID[id]
	if !ok {
		return nil, errors.New("preference not found")
	}
	return resp, nil
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.created = append(f.created, req)
	return &preference.Response{ID: "pref-new", ExternalReference: req.ExternalReference, SandboxInitPoint: "https://sandbox/init"}, nil
}

func newMercadoPagoFake(payments *fakePayments, prefs *fakePreferences) *MercadoPagoTransport {
	return &MercadoPagoTransport{
		payments:    payments,
		preferences: prefs,
		cfg:         entities.TenantGatewayConfig{TenantID: "t1", APIKey: "TEST-token"},
		timeout:     time.Second,
		logger:      zap.NewNop(),
	}
}

func TestMercadoPagoTransport_LookupSessionResult(t *testing.T) {
	prefs := &fakePreferences{byID: map[string]*preference.Response{
		"pref-1": {ID: "pref-1", ExternalReference: "txn-1"},
	}}
	payments := &fakePayments{byID: map[int]*payment.Response{
		100: {ID: 100, Status: "approved", ExternalReference: "txn-1"},
		200: {ID: 200, Status: "approved", ExternalReference: "OTHER-TXN"},
	}}
	tr := newMercadoPagoFake(payments, prefs)

	t.Run("payment of the session", func(t *testing.T) {
		resp, err := tr.LookupSessionResult(context.Background(), "pref-1", "100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ID != "pref-1" || resp.Status != entities.SessionStatusCompleted {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("approved payment of another order is rejected", func(t *testing.T) {
		resp, err := tr.LookupSessionResult(context.Background(), "pref-1", "200")
		if !errors.Is(err, ErrSessionPaymentMismatch) {
			t.Fatalf("expected ErrSessionPaymentMismatch, got %+v err=%v", resp, err)
		}
		if entities.KindOf(err) != entities.KindProcessorRejection {
			t.Fatalf("expected processor rejection, got %s", entities.KindOf(err))
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := tr.LookupSessionResult(context.Background(), "pref-missing", "100")
		if err == nil {
			t.Fatal("expected error for unknown preference")
		}
	})
}

func TestMercadoPagoTransport_CreateCheckoutSession(t *testing.T) {
	t.Run("one time", func(t *testing.T) {
		prefs := &fakePreferences{}
		tr := newMercadoPagoFake(&fakePayments{}, prefs)

		resp, err := tr.CreateCheckoutSession(context.Background(), "BRL", decimal.RequireFromString("10.00"), "txn-1", "acc1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ID != "pref-new" || resp.SessionData != "https://sandbox/init" || resp.MerchantOrderReference != "txn-1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if len(prefs.created) != 1 || prefs.created[0].ExternalReference != "txn-1" {
			t.Fatalf("unexpected preference request: %+v", prefs.created)
		}
	})

	t.Run("recurring is refused", func(t *testing.T) {
		prefs := &fakePreferences{}
		tr := newMercadoPagoFake(&fakePayments{}, prefs)

		_, err := tr.CreateCheckoutSession(context.Background(), "BRL", decimal.RequireFromString("10.00"), "txn-2", "acc1", true)
		if !errors.Is(err, ErrRecurringUnsupported) {
			t.Fatalf("expected ErrRecurringUnsupported, got %v", err)
		}
		if entities.KindOf(err) != entities.KindPreconditionNotMet {
			t.Fatalf("expected precondition error, got %s", entities.KindOf(err))
		}
		if len(prefs.created) != 0 {
			t.Fatalf("no preference must be created, got %+v", prefs.created)
		}
	})
}
