package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"apexdrive/catalog"
	"apexdrive/models"
)

// Flow owns one booking session's state and gates progress through the fixed
// step sequence. It is designed for a single logical thread of control; the
// only concurrency guard is the single-pending-submit discipline.
type Flow struct {
	Submitter     BookingSubmitter
	SubmitTimeout time.Duration

	// Clock is injectable so the concierge date window can be pinned in tests.
	Clock func() time.Time

	state models.BookingState

	mu         sync.Mutex
	submitting bool
}

// NewFlow returns a Flow at the vehicle-selection step with empty state.
func NewFlow(submitter BookingSubmitter, submitTimeout time.Duration) *Flow {
	return &Flow{
		Submitter:     submitter,
		SubmitTimeout: submitTimeout,
		Clock:         time.Now,
	}
}

// RestoreFlow rebuilds a Flow around previously persisted state.
func RestoreFlow(state models.BookingState, submitter BookingSubmitter, submitTimeout time.Duration) *Flow {
	f := NewFlow(submitter, submitTimeout)
	f.state = state
	return f
}

// Snapshot returns a copy of the current state for persistence.
func (f *Flow) Snapshot() models.BookingState {
	return f.state
}

// CurrentStep returns the flow position.
func (f *Flow) CurrentStep() models.Step {
	return f.state.CurrentStep
}

// PaymentRequired reports whether the contact step also collects card
// details. Evaluated live off the fulfillment type, never cached.
func (f *Flow) PaymentRequired() bool {
	return f.state.Fulfillment == models.FulfillmentConcierge
}

// Summary builds the consolidated read model for the presentation layer.
func (f *Flow) Summary() models.BookingSummary {
	s := f.state
	return models.BookingSummary{
		Step:            s.CurrentStep,
		StepName:        s.CurrentStep.String(),
		Vehicle:         s.SelectedVehicle,
		Fulfillment:     s.Fulfillment,
		Center:          s.Center,
		DeliveryAddress: s.DeliveryAddress,
		Schedule:        s.Schedule,
		Contact:         s.Contact,
		PaymentRequired: f.PaymentRequired(),
		AgreedToTerms:   s.AgreedToTerms,
		IdempotencyKey:  s.IdempotencyKey,
	}
}

// confirmedGuard blocks every mutation after confirmation except Reset.
func (f *Flow) confirmedGuard() error {
	if f.state.CurrentStep == models.StepConfirmed {
		return ErrFlowConfirmed
	}
	return nil
}

// SelectVehicle records the chosen vehicle, whether accepted from the
// recommendation or picked directly from the catalog.
func (f *Flow) SelectVehicle(v models.Vehicle) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	f.state.SelectedVehicle = &v
	return nil
}

// SetQuizAnswers stores the interview answers for later display.
func (f *Flow) SetQuizAnswers(answers []models.QuizOption) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	f.state.QuizAnswers = answers
	return nil
}

// SetFulfillmentType switches between a center visit and concierge delivery.
// The previous fulfillment detail is dropped so it can never disagree with
// the type, and leaving the concierge path clears any entered card details
// so stale payment info cannot ride along on a center booking.
func (f *Flow) SetFulfillmentType(t models.FulfillmentType) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	if t != models.FulfillmentCenter && t != models.FulfillmentConcierge {
		return newValidationError("fulfillmentType", "must be center or concierge")
	}
	if f.state.Fulfillment == t {
		return nil
	}
	f.state.Fulfillment = t
	f.state.Center = nil
	f.state.DeliveryAddress = ""
	if t == models.FulfillmentCenter {
		f.state.Payment = models.PaymentInfo{}
	}
	return nil
}

// SetCenter records the chosen center. Only valid on the center path.
func (f *Flow) SetCenter(c models.Center) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	if f.state.Fulfillment != models.FulfillmentCenter {
		return newValidationError("fulfillmentType", "center selection requires the center fulfillment type")
	}
	f.state.Center = &c
	return nil
}

// SetDeliveryAddress records the concierge drop-off address.
func (f *Flow) SetDeliveryAddress(addr string) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	if f.state.Fulfillment != models.FulfillmentConcierge {
		return newValidationError("fulfillmentType", "a delivery address requires the concierge fulfillment type")
	}
	f.state.DeliveryAddress = addr
	return nil
}

// SetSchedule records the requested date and time slot. Whether they fall
// inside the availability window is checked at advance time, so in-step edits
// are never blocked.
func (f *Flow) SetSchedule(date, timeSlot string) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	f.state.Schedule = models.Schedule{Date: date, Time: timeSlot}
	return nil
}

// SetContact records the booking holder's details.
func (f *Flow) SetContact(c models.Contact) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	f.state.Contact = c
	return nil
}

// SetPayment records card details for the concierge deposit.
func (f *Flow) SetPayment(p models.PaymentInfo) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	if f.state.Fulfillment != models.FulfillmentConcierge {
		return newValidationError("fulfillmentType", "center visits do not collect payment")
	}
	f.state.Payment = p
	return nil
}

// SetAgreedToTerms records the terms checkbox.
func (f *Flow) SetAgreedToTerms(agreed bool) error {
	if err := f.confirmedGuard(); err != nil {
		return err
	}
	f.state.AgreedToTerms = agreed
	return nil
}

// Advance moves to the next step once the current step's exit predicate
// holds. The confirmed state is never entered this way; Submit owns that
// transition.
func (f *Flow) Advance() error {
	switch f.state.CurrentStep {
	case models.StepVehicleSelection, models.StepFulfillmentSchedule:
		if err := f.stepExitError(f.state.CurrentStep); err != nil {
			return err
		}
		f.state.CurrentStep++
		return nil
	case models.StepContactPayment:
		return ErrSubmitRequired
	default:
		return ErrFlowConfirmed
	}
}

// Back moves one step backward. At the first step it is a clamped no-op;
// the confirmed state is only left through Reset.
func (f *Flow) Back() error {
	switch f.state.CurrentStep {
	case models.StepVehicleSelection:
		return nil
	case models.StepConfirmed:
		return ErrFlowConfirmed
	default:
		f.state.CurrentStep--
		return nil
	}
}

// Reset discards the whole booking and returns to the first step. A fresh
// idempotency key will be minted for the next submission.
func (f *Flow) Reset() {
	f.state = models.BookingState{}
}

// stepExitError checks the given step's exit predicate and names the first
// unmet field, in field-table order.
func (f *Flow) stepExitError(step models.Step) error {
	s := &f.state
	switch step {
	case models.StepVehicleSelection:
		if s.SelectedVehicle == nil {
			return newValidationError("selectedVehicle", "a vehicle must be selected")
		}
		return nil

	case models.StepFulfillmentSchedule:
		switch s.Fulfillment {
		case models.FulfillmentCenter:
			if s.Center == nil {
				return newValidationError("center", "a center must be selected")
			}
			if s.Schedule.Date == "" {
				return newValidationError("schedule.date", "a date must be selected")
			}
			if !s.Center.HasDate(s.Schedule.Date) {
				return newValidationError("schedule.date", "date is not available at "+s.Center.Name)
			}
			if s.Schedule.Time == "" {
				return newValidationError("schedule.time", "a time must be selected")
			}
			if !s.Center.HasTime(s.Schedule.Time) {
				return newValidationError("schedule.time", "time is not available at "+s.Center.Name)
			}
		case models.FulfillmentConcierge:
			if s.DeliveryAddress == "" {
				return newValidationError("deliveryAddress", "a delivery address is required")
			}
			if s.Schedule.Date == "" {
				return newValidationError("schedule.date", "a date must be selected")
			}
			if !catalog.ConciergeDateInWindow(s.Schedule.Date, f.Clock()) {
				return newValidationError("schedule.date", "date is outside the concierge delivery window")
			}
			if s.Schedule.Time == "" {
				return newValidationError("schedule.time", "a time must be selected")
			}
			if !catalog.ConciergeHasTime(s.Schedule.Time) {
				return newValidationError("schedule.time", "time is not a concierge delivery slot")
			}
		default:
			return newValidationError("fulfillmentType", "a fulfillment type must be selected")
		}
		return nil

	case models.StepContactPayment:
		if s.Contact.Name == "" {
			return newValidationError("contact.name", "name is required")
		}
		if s.Contact.Email == "" {
			return newValidationError("contact.email", "email is required")
		}
		if s.Contact.Phone == "" {
			return newValidationError("contact.phone", "phone is required")
		}
		if f.PaymentRequired() {
			if s.Payment.CardNumber == "" {
				return newValidationError("payment.cardNumber", "card number is required")
			}
			if s.Payment.Expiry == "" {
				return newValidationError("payment.expiry", "card expiry is required")
			}
			if s.Payment.CVC == "" {
				return newValidationError("payment.cvc", "card CVC is required")
			}
		}
		return nil
	}
	return nil
}

// beginSubmit enforces the single-pending-call discipline.
func (f *Flow) beginSubmit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return ErrSubmitInFlight
	}
	f.submitting = true
	return nil
}

func (f *Flow) endSubmit() {
	f.mu.Lock()
	f.submitting = false
	f.mu.Unlock()
}

// Submit finalizes the booking through the submission collaborator. It may
// only run from a fully populated contact/payment step with terms agreed.
// On success the flow reaches the confirmed state; on failure or timeout it
// stays put so the caller can correct and retry. The idempotency key is
// minted once and reused across retries, so a timed-out submission that
// actually landed downstream is not double-processed.
func (f *Flow) Submit(ctx context.Context) (*models.BookingConfirmation, error) {
	if f.state.CurrentStep == models.StepConfirmed {
		return nil, ErrFlowConfirmed
	}
	if f.state.CurrentStep != models.StepContactPayment {
		return nil, newValidationError("currentStep", "submission happens from the contact step")
	}
	if err := f.stepExitError(models.StepContactPayment); err != nil {
		return nil, err
	}
	if !f.state.AgreedToTerms {
		return nil, ErrTermsNotAgreed
	}

	if err := f.beginSubmit(); err != nil {
		return nil, err
	}
	defer f.endSubmit()

	if f.state.IdempotencyKey == "" {
		f.state.IdempotencyKey = uuid.New().String()
	}

	if f.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.SubmitTimeout)
		defer cancel()
	}

	conf, err := f.Submitter.Submit(ctx, f.Snapshot())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrSubmissionTimeout
		}
		return nil, &SubmissionError{Cause: err}
	}

	f.state.CurrentStep = models.StepConfirmed
	return conf, nil
}
