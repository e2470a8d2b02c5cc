package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"apexdrive/models"
)

// BookingSubmitter is the external collaborator that accepts a finalized
// booking snapshot. It may be slow; the Flow wraps calls with a timeout.
type BookingSubmitter interface {
	Submit(ctx context.Context, state models.BookingState) (*models.BookingConfirmation, error)
}

// DefaultSubmitter charges the concierge deposit (center visits are free)
// and mints the confirmation record.
type DefaultSubmitter struct {
	Payments PaymentHandler
	Logger   *zap.Logger

	Deposit    float64
	ServiceFee float64
	Currency   string
}

func (s *DefaultSubmitter) Submit(ctx context.Context, state models.BookingState) (*models.BookingConfirmation, error) {
	if state.SelectedVehicle == nil {
		return nil, fmt.Errorf("snapshot has no selected vehicle")
	}

	conf := &models.BookingConfirmation{
		BookingID:      uuid.New().String(),
		VehicleID:      state.SelectedVehicle.ID,
		VehicleName:    state.SelectedVehicle.Name,
		Fulfillment:    state.Fulfillment,
		Date:           state.Schedule.Date,
		Time:           state.Schedule.Time,
		ContactEmail:   state.Contact.Email,
		IdempotencyKey: state.IdempotencyKey,
		CreatedAt:      time.Now(),
	}

	switch state.Fulfillment {
	case models.FulfillmentCenter:
		if state.Center == nil {
			return nil, fmt.Errorf("snapshot has no center")
		}
		conf.Location = state.Center.Name
		conf.Confirmation = fmt.Sprintf("Your %s test drive is booked at %s.", conf.VehicleName, state.Center.Name)

	case models.FulfillmentConcierge:
		conf.Location = state.DeliveryAddress
		amount := s.Deposit + s.ServiceFee
		invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
			Amount:      amount,
			Currency:    s.Currency,
			Card:        state.Payment,
			Idempotency: state.IdempotencyKey,
			Description: fmt.Sprintf("Concierge test-drive deposit: %s", conf.VehicleName),
			Metadata: map[string]string{
				"vehicleId": conf.VehicleID,
				"date":      conf.Date,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("deposit payment failed: %w", err)
		}
		conf.InvoiceID = invoice.InvoiceID
		conf.DepositAmount = invoice.Amount
		conf.InvoiceStatus = invoice.Status
		conf.Confirmation = fmt.Sprintf("Your %s will be delivered to %s.", conf.VehicleName, state.DeliveryAddress)

	default:
		return nil, fmt.Errorf("snapshot has no fulfillment type")
	}

	if s.Logger != nil {
		s.Logger.Info("booking submitted",
			zap.String("bookingId", conf.BookingID),
			zap.String("vehicleId", conf.VehicleID),
			zap.String("fulfillment", string(conf.Fulfillment)))
	}
	return conf, nil
}
