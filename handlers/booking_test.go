package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"apexdrive/models"
	"apexdrive/services/auth"
	"apexdrive/services/booking"
)

func newTestRouter(t *testing.T) (*gin.Engine, auth.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	submitter := &booking.DefaultSubmitter{
		Payments: &booking.SimulatedPaymentHandler{Logger: zap.NewNop()},
		Logger:   zap.NewNop(),
		Deposit:  500,
		Currency: "AUD",
	}
	sessions := booking.NewSessionService(cache, submitter, zap.NewNop())
	authSvc := auth.NewJWTService("test-secret", time.Hour, cache)
	h := NewBookingHandler(sessions, authSvc, zap.NewNop())

	r := gin.New()
	r.POST("/api/booking/session", h.CreateSession)
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.PATCH("/api/booking/session/:sessionID", h.UpdateSession)
	r.POST("/api/booking/session/:sessionID/advance", h.Advance)
	r.POST("/api/booking/session/:sessionID/submit", h.Submit)
	r.DELETE("/api/booking/session/:sessionID", h.CancelSession)
	return r, authSvc
}

type sessionResponse struct {
	SessionID    string                      `json:"sessionID"`
	AuthToken    string                      `json:"authToken"`
	Booking      models.BookingSummary       `json:"booking"`
	Confirmation *models.BookingConfirmation `json:"confirmation"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) (*httptest.ResponseRecorder, sessionResponse) {
	t.Helper()
	buf := &bytes.Buffer{}
	if body != nil {
		require.NoError(t, json.NewEncoder(buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp sessionResponse
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/booking/session", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

// conciergeSessionAtSchedule drives a session onto the concierge path with a
// valid schedule and returns its ID plus the guest token issued on the way.
func conciergeSessionAtSchedule(t *testing.T, r *gin.Engine) (string, string) {
	t.Helper()
	id := createSession(t, r)

	w, _ := doJSON(t, r, http.MethodPatch, "/api/booking/session/"+id,
		gin.H{"vehicleId": "taycan"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/booking/session/"+id+"/advance", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodPatch, "/api/booking/session/"+id, gin.H{
		"fulfillmentType": "concierge",
		"deliveryAddress": "12 Harbour St, Sydney",
		"schedule": gin.H{
			"date": time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
			"time": "09:00 AM",
		},
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, resp.AuthToken)
	return id, resp.AuthToken
}

func TestBookingHandler_AuthTokenIssuedOnConciergeSelection(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createSession(t, r)

	// The center path never issues a token.
	w, resp := doJSON(t, r, http.MethodPatch, "/api/booking/session/"+id,
		gin.H{"fulfillmentType": "center"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.AuthToken)

	w, resp = doJSON(t, r, http.MethodPatch, "/api/booking/session/"+id,
		gin.H{"fulfillmentType": "concierge"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp.AuthToken)
}

func TestBookingHandler_ConciergeAdvanceRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)
	id, token := conciergeSessionAtSchedule(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/booking/session/"+id+"/advance", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/booking/session/"+id+"/advance", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StepContactPayment, resp.Booking.Step)
}

func TestBookingHandler_ConciergeSubmitRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)
	id, token := conciergeSessionAtSchedule(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/booking/session/"+id+"/advance", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPatch, "/api/booking/session/"+id, gin.H{
		"contact": gin.H{"name": "Alex Chen", "email": "alex@example.com", "phone": "0400 000 000"},
		"payment": gin.H{"cardNumber": "4242424242424242", "expiry": "12/27", "cvc": "123"},
		"agreedToTerms": true,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/booking/session/"+id+"/submit", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/booking/session/"+id+"/submit", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Confirmation)
	assert.Equal(t, "taycan", resp.Confirmation.VehicleID)
	assert.NotEmpty(t, resp.Confirmation.InvoiceID)
}

func TestBookingHandler_TokenBoundToOwnSession(t *testing.T) {
	r, _ := newTestRouter(t)
	id, _ := conciergeSessionAtSchedule(t, r)
	_, foreignToken := conciergeSessionAtSchedule(t, r)

	// Another session's token does not open this session's gate.
	w, _ := doJSON(t, r, http.MethodPost, "/api/booking/session/"+id+"/advance", nil, foreignToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingHandler_CancelRevokesToken(t *testing.T) {
	r, authSvc := newTestRouter(t)
	id, token := conciergeSessionAtSchedule(t, r)
	require.True(t, authSvc.IsAuthenticated(context.Background(), token, id))

	w, _ := doJSON(t, r, http.MethodDelete, "/api/booking/session/"+id, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	assert.False(t, authSvc.IsAuthenticated(context.Background(), token, id))
	w, _ = doJSON(t, r, http.MethodGet, "/api/booking/session/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
