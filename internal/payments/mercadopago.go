package payments

import (
	"context"
	"errors"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/Dmast1/bookingart-api/internal/config"
	"github.com/Dmast1/bookingart-api/internal/models"
)

var ErrNotConfigured = errors.New("payments: no access token configured")

// Gateway wraps the Mercado Pago checkout-preference flow used for ticket
// orders. A nil *Gateway means payments are disabled (local/dev).
type Gateway struct {
	prefClient    preference.Client
	paymentClient payment.Client
}

func New(cfg *config.Config) *Gateway {
	if cfg.MercadoPagoToken == "" {
		return nil
	}

	mpCfg, err := mpconfig.New(cfg.MercadoPagoToken)
	if err != nil {
		return nil
	}

	return &Gateway{
		prefClient:    preference.NewClient(mpCfg),
		paymentClient: payment.NewClient(mpCfg),
	}
}

type CheckoutPreference struct {
	PreferenceID string
	InitPoint    string
}

// CreatePreference registers a checkout preference for a ticket order.
// The order code travels as the external reference so the webhook can find
// the order back.
func (g *Gateway) CreatePreference(ctx context.Context, order *models.TicketOrder, ev *models.Event) (*CheckoutPreference, error) {
	if g == nil {
		return nil, ErrNotConfigured
	}

	resp, err := g.prefClient.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      ev.Title,
				Quantity:   order.Quantity,
				UnitPrice:  ev.TicketPrice,
				CurrencyID: "RON",
			},
		},
		ExternalReference: order.Code,
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutPreference{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}

// PaymentResult is what the webhook handler needs from a payment lookup.
type PaymentResult struct {
	Status    string
	OrderCode string
}

func (g *Gateway) LookupPayment(ctx context.Context, paymentID int) (*PaymentResult, error) {
	if g == nil {
		return nil, ErrNotConfigured
	}

	resp, err := g.paymentClient.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	return &PaymentResult{
		Status:    resp.Status,
		OrderCode: resp.ExternalReference,
	}, nil
}
