package payments

import (
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"
	"checkout_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Factory builds the transport matching a tenant's configured processor.
type Factory struct {
	Timeout  time.Duration
	BaseURL  string
	MockMode bool
	Logger   *zap.Logger
}

var _ usecase.TransportFactory = (&Factory{}).NewTransport

// NewTransport selects the transport by cfg.Processor (Adyen when unset).
func (f *Factory) NewTransport(cfg entities.TenantGatewayConfig) (interfaces.IGatewayTransport, error) {
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if f.MockMode {
		return NewMockTransport(logger), nil
	}

	switch cfg.ProcessorOrDefault() {
	case entities.ProcessorAdyen:
		t, err := NewAdyenTransport(cfg, logger, WithBaseURL(f.BaseURL), WithTimeout(f.Timeout))
		if err != nil {
			return nil, err
		}
		return t, nil
	case entities.ProcessorMercadoPago:
		t, err := NewMercadoPagoTransport(cfg, f.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		logger.Error("[payment][gateway] unsupported processor", zap.String("processor", string(cfg.Processor)))
		return nil, usecase.ErrUnsupportedProcessor
	}
}
