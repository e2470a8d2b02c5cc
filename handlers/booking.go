package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"apexdrive/catalog"
	"apexdrive/models"
	"apexdrive/services/auth"
	"apexdrive/services/booking"
	"apexdrive/utils"
)

// BookingHandler exposes the booking flow over HTTP. Each session ID names
// one exclusively owned flow persisted by the session service.
type BookingHandler struct {
	Sessions *booking.SessionService
	Auth     auth.Service
	Logger   *zap.Logger
}

func NewBookingHandler(sessions *booking.SessionService, authSvc auth.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Auth: authSvc, Logger: logger}
}

// BookingUpdateInput carries the partial-update body for a session. Pointer
// fields distinguish "absent" from "set to zero value".
type BookingUpdateInput struct {
	VehicleID       *string             `json:"vehicleId,omitempty"`
	Answers         []QuizAnswerInput   `json:"answers,omitempty"`
	FulfillmentType *string             `json:"fulfillmentType,omitempty"`
	CenterID        *string             `json:"centerId,omitempty"`
	DeliveryAddress *string             `json:"deliveryAddress,omitempty"`
	Schedule        *models.Schedule    `json:"schedule,omitempty"`
	Contact         *models.Contact     `json:"contact,omitempty"`
	Payment         *models.PaymentInfo `json:"payment,omitempty"`
	AgreedToTerms   *bool               `json:"agreedToTerms,omitempty"`
}

// CreateSession starts a fresh booking session.
func (h *BookingHandler) CreateSession(c *gin.Context) {
	sessionID, summary, err := h.Sessions.CreateSession(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "booking": summary})
}

// GetSession returns the session's read model.
func (h *BookingHandler) GetSession(c *gin.Context) {
	summary, err := h.Sessions.GetSummary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": c.Param("sessionID"), "booking": summary})
}

// UpdateSession applies a partial update to the session's booking state.
// Selecting the concierge fulfillment type logs the guest in as a side
// effect; the issued token is returned alongside the summary.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var input BookingUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var authToken string
	summary, err := h.Sessions.Mutate(c.Request.Context(), sessionID, func(f *booking.Flow) error {
		return applyUpdate(f, input)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	if input.FulfillmentType != nil && summary.Fulfillment == models.FulfillmentConcierge {
		token, lerr := h.Auth.Login(c.Request.Context(), sessionID)
		if lerr != nil {
			h.Logger.Error("guest login failed", zap.Error(lerr))
		} else {
			authToken = token
		}
	}

	resp := gin.H{"sessionID": sessionID, "booking": summary}
	if authToken != "" {
		resp["authToken"] = authToken
	}
	c.JSON(http.StatusOK, resp)
}

func applyUpdate(f *booking.Flow, input BookingUpdateInput) error {
	// Fulfillment type first: it decides which detail fields are legal.
	if input.FulfillmentType != nil {
		if err := f.SetFulfillmentType(models.FulfillmentType(*input.FulfillmentType)); err != nil {
			return err
		}
	}
	if input.VehicleID != nil {
		v := catalog.VehicleByID(*input.VehicleID)
		if v == nil {
			return &booking.ValidationError{Field: "vehicleId", Message: "unknown vehicle"}
		}
		if err := f.SelectVehicle(*v); err != nil {
			return err
		}
	}
	if input.Answers != nil {
		answers, err := resolveAnswers(input.Answers)
		if err != nil {
			return &booking.ValidationError{Field: "answers", Message: err.Error()}
		}
		if err := f.SetQuizAnswers(answers); err != nil {
			return err
		}
	}
	if input.CenterID != nil {
		center := catalog.CenterByID(*input.CenterID)
		if center == nil {
			return &booking.ValidationError{Field: "centerId", Message: "unknown center"}
		}
		if err := f.SetCenter(*center); err != nil {
			return err
		}
	}
	if input.DeliveryAddress != nil {
		if err := f.SetDeliveryAddress(*input.DeliveryAddress); err != nil {
			return err
		}
	}
	if input.Schedule != nil {
		if err := f.SetSchedule(input.Schedule.Date, input.Schedule.Time); err != nil {
			return err
		}
	}
	if input.Contact != nil {
		if err := f.SetContact(*input.Contact); err != nil {
			return err
		}
	}
	if input.Payment != nil {
		if err := f.SetPayment(*input.Payment); err != nil {
			return err
		}
	}
	if input.AgreedToTerms != nil {
		if err := f.SetAgreedToTerms(*input.AgreedToTerms); err != nil {
			return err
		}
	}
	return nil
}

// Advance moves the session to the next step. The concierge path requires a
// valid guest token before entering the contact/payment step.
func (h *BookingHandler) Advance(c *gin.Context) {
	sessionID := c.Param("sessionID")

	summary, err := h.Sessions.GetSummary(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if summary.Step == models.StepFulfillmentSchedule &&
		summary.Fulfillment == models.FulfillmentConcierge &&
		!h.authenticated(c, sessionID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	summary, err = h.Sessions.Mutate(c.Request.Context(), sessionID, func(f *booking.Flow) error {
		return f.Advance()
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "booking": summary})
}

// Back moves the session one step backward.
func (h *BookingHandler) Back(c *gin.Context) {
	summary, err := h.Sessions.Mutate(c.Request.Context(), c.Param("sessionID"), func(f *booking.Flow) error {
		return f.Back()
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": c.Param("sessionID"), "booking": summary})
}

// Reset discards the session's booking state.
func (h *BookingHandler) Reset(c *gin.Context) {
	summary, err := h.Sessions.Mutate(c.Request.Context(), c.Param("sessionID"), func(f *booking.Flow) error {
		f.Reset()
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": c.Param("sessionID"), "booking": summary})
}

// Submit finalizes the booking through the submission collaborator.
func (h *BookingHandler) Submit(c *gin.Context) {
	sessionID := c.Param("sessionID")

	summary, err := h.Sessions.GetSummary(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if summary.Fulfillment == models.FulfillmentConcierge && !h.authenticated(c, sessionID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	conf, err := h.Sessions.Submit(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "confirmation": conf})
}

// CancelSession drops the session and revokes its guest token if one was
// presented.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
			h.Logger.Warn("guest token revocation failed", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BookingHandler) authenticated(c *gin.Context, sessionID string) bool {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token != "" && h.Auth.IsAuthenticated(c.Request.Context(), token, sessionID)
}

// respondError maps core errors onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var sErr *booking.SubmissionError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, utils.ErrorResponse{
			Message: "validation failed",
			Field:   vErr.Field,
			Details: vErr.Message,
		})
	case errors.Is(err, booking.ErrSessionExpired):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSubmissionTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrTermsNotAgreed),
		errors.Is(err, booking.ErrSubmitRequired),
		errors.Is(err, booking.ErrFlowConfirmed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &sErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
