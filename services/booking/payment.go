package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"apexdrive/models"
)

// PaymentHandler processes the concierge deposit charge.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if !req.Card.Complete() {
		return errors.New("incomplete card details")
	}
	if req.Idempotency == "" {
		return errors.New("missing idempotency key")
	}
	return nil
}

// SimulatedPaymentHandler approves every well-formed charge after a short
// delay, standing in for the gateway in development and tests.
type SimulatedPaymentHandler struct {
	Logger *zap.Logger
	Delay  time.Duration
}

func NewSimulatedPaymentHandler(logger *zap.Logger) *SimulatedPaymentHandler {
	return &SimulatedPaymentHandler{Logger: logger, Delay: 500 * time.Millisecond}
}

func (h *SimulatedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	if h.Delay > 0 {
		select {
		case <-time.After(h.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "paid",
		PaymentID: "pi_" + uuid.New().String(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if h.Logger != nil {
		h.Logger.Info("simulated payment approved",
			zap.String("invoice", inv.InvoiceID),
			zap.Float64("amount", inv.Amount))
	}
	return inv, nil
}

// StripePaymentHandler charges the deposit through a Stripe PaymentIntent.
// Card capture happens client-side against the intent; this only creates it.
type StripePaymentHandler struct {
	Logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{Logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(req.Amount * 100)),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.Idempotency)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    string(pi.Status),
		PaymentID: pi.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if h.Logger != nil {
		h.Logger.Info("stripe payment intent created",
			zap.String("invoice", inv.InvoiceID),
			zap.String("paymentIntent", pi.ID))
	}
	return inv, nil
}
