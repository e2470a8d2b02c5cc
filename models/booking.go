package models

import "time"

// Step identifies the booking flow position.
type Step int

const (
	StepVehicleSelection Step = iota
	StepFulfillmentSchedule
	StepContactPayment
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepVehicleSelection:
		return "vehicle_selection"
	case StepFulfillmentSchedule:
		return "fulfillment_schedule"
	case StepContactPayment:
		return "contact_payment"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// FulfillmentType is whether the test drive happens at a center or is
// delivered by the concierge service.
type FulfillmentType string

const (
	FulfillmentUnset     FulfillmentType = ""
	FulfillmentCenter    FulfillmentType = "center"
	FulfillmentConcierge FulfillmentType = "concierge"
)

// Schedule holds the chosen date and time slot.
type Schedule struct {
	Date string `json:"date,omitempty"` // "2006-01-02"
	Time string `json:"time,omitempty"` // slot label, e.g. "10:00 AM"
}

// Contact holds the booking holder's details.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PaymentInfo carries card details for the concierge deposit. Center visits
// never collect payment.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVC        string `json:"cvc,omitempty"`
}

// Empty reports whether no payment field has been filled.
func (p PaymentInfo) Empty() bool {
	return p.CardNumber == "" && p.Expiry == "" && p.CVC == ""
}

// Complete reports whether all payment fields are filled.
func (p PaymentInfo) Complete() bool {
	return p.CardNumber != "" && p.Expiry != "" && p.CVC != ""
}

// BookingState is the mutable record for one booking session. It is created
// fresh per session, exclusively owned by that session, and reset on restart.
type BookingState struct {
	CurrentStep     Step            `json:"currentStep"`
	SelectedVehicle *Vehicle        `json:"selectedVehicle,omitempty"`
	QuizAnswers     []QuizOption    `json:"quizAnswers,omitempty"`
	Fulfillment     FulfillmentType `json:"fulfillmentType,omitempty"`
	Center          *Center         `json:"center,omitempty"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Schedule        Schedule        `json:"schedule"`
	Contact         Contact         `json:"contact"`
	Payment         PaymentInfo     `json:"payment"`
	AgreedToTerms   bool            `json:"agreedToTerms"`

	// IdempotencyKey is minted once per booking attempt so a retried submit
	// cannot be double-processed downstream.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// BookingSummary is the consolidated read model handed to the presentation
// layer and, once finalized, to the submission collaborator.
type BookingSummary struct {
	Step            Step            `json:"step"`
	StepName        string          `json:"stepName"`
	Vehicle         *Vehicle        `json:"vehicle,omitempty"`
	Fulfillment     FulfillmentType `json:"fulfillmentType,omitempty"`
	Center          *Center         `json:"center,omitempty"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Schedule        Schedule        `json:"schedule"`
	Contact         Contact         `json:"contact"`
	PaymentRequired bool            `json:"paymentRequired"`
	AgreedToTerms   bool            `json:"agreedToTerms"`
	IdempotencyKey  string          `json:"idempotencyKey,omitempty"`
}

// BookingConfirmation is returned after the submission collaborator accepts a
// finalized booking.
type BookingConfirmation struct {
	BookingID      string          `json:"bookingId"`
	VehicleID      string          `json:"vehicleId"`
	VehicleName    string          `json:"vehicleName"`
	Fulfillment    FulfillmentType `json:"fulfillmentType"`
	Location       string          `json:"location"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	ContactEmail   string          `json:"contactEmail"`
	InvoiceID      string          `json:"invoiceId,omitempty"`
	DepositAmount  float64         `json:"depositAmount,omitempty"`
	InvoiceStatus  string          `json:"invoiceStatus,omitempty"`
	Confirmation   string          `json:"confirmation"`
	IdempotencyKey string          `json:"idempotencyKey"`
	CreatedAt      time.Time       `json:"createdAt"`
}
