package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"washlane/models"
	"washlane/services/booking"
)

// fakeCheckoutService backs the handler tests with canned sessions.
type fakeCheckoutService struct {
	sessions  map[string]*models.CheckoutSession
	submitErr error
}

func (f *fakeCheckoutService) InitiateSession(ctx context.Context, userID string) (*models.CheckoutSession, error) {
	s := &models.CheckoutSession{SessionID: "test-session", UserID: userID}
	f.sessions[s.SessionID] = s
	return s, nil
}

func (f *fakeCheckoutService) GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, booking.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeCheckoutService) UpdateSession(ctx context.Context, sessionID string, input booking.UpdateSessionInput) (*models.CheckoutSession, error) {
	s, err := f.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if input.Address != nil {
		s.Address = *input.Address
	}
	if input.PickupDate != nil {
		s.PickupDate = *input.PickupDate
	}
	if input.PickupTime != nil {
		s.PickupTime = *input.PickupTime
	}
	if input.Service != nil {
		s.Service = input.Service
	}
	return s, nil
}

func (f *fakeCheckoutService) AddExtraItem(ctx context.Context, sessionID, itemName string) (*models.CheckoutSession, error) {
	return f.GetSession(ctx, sessionID)
}

func (f *fakeCheckoutService) RemoveExtraItem(ctx context.Context, sessionID, itemName string) (*models.CheckoutSession, error) {
	return f.GetSession(ctx, sessionID)
}

func (f *fakeCheckoutService) Quote(ctx context.Context, sessionID string) (*models.PricedTotal, error) {
	s, err := f.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	total := booking.Quote(s.Service, s.ExtraItemSlice(), s.PromotionDiscount)
	return &total, nil
}

func (f *fakeCheckoutService) Submit(ctx context.Context, sessionID string) (*booking.SubmitResult, error) {
	s, err := f.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !s.CanSubmit() {
		return nil, &booking.ValidationError{Missing: s.MissingFields()}
	}
	if f.submitErr != nil {
		return nil, &booking.SubmissionError{Err: f.submitErr}
	}
	return &booking.SubmitResult{OrderID: "order-1", Request: booking.AssembleRequest(s)}, nil
}

func (f *fakeCheckoutService) CancelSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func newBookingRouter(fake *fakeCheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(fake, zap.NewNop())
	api := r.Group("/api/booking")
	api.POST("/session", h.InitiateSession)
	api.GET("/session/:sessionID", h.GetSession)
	api.PUT("/session/:sessionID", h.UpdateSession)
	api.GET("/session/:sessionID/quote", h.GetQuote)
	api.POST("/session/:sessionID/submit", h.Submit)
	return r
}

func TestBookingHandlerSubmitGating(t *testing.T) {
	t.Run("submit is blocked while required fields are missing", func(t *testing.T) {
		fake := &fakeCheckoutService{sessions: map[string]*models.CheckoutSession{
			"s1": {
				SessionID:  "s1",
				Service:    &models.ServiceSelection{ServiceID: "wash-fold", BasePricePerUnit: 14.99, QuantityUnits: 1},
				PickupDate: "2026-09-02",
				PickupTime: "09:00 - 11:00",
				// Address intentionally empty.
			},
		}}
		r := newBookingRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/booking/session/s1/submit", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Outcome       string   `json:"outcome"`
			CanSubmit     bool     `json:"canSubmit"`
			MissingFields []string `json:"missingFields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Outcome != "validation-blocked" || resp.CanSubmit {
			t.Fatalf("unexpected outcome: %+v", resp)
		}
		if len(resp.MissingFields) != 1 || resp.MissingFields[0] != "address" {
			t.Fatalf("expected missing address, got %v", resp.MissingFields)
		}
	})

	t.Run("submit succeeds once the session is ready", func(t *testing.T) {
		fake := &fakeCheckoutService{sessions: map[string]*models.CheckoutSession{
			"s1": {
				SessionID:  "s1",
				Service:    &models.ServiceSelection{ServiceID: "wash-fold", BasePricePerUnit: 14.99, QuantityUnits: 1},
				PickupDate: "2026-09-02",
				PickupTime: "09:00 - 11:00",
				Address:    "12 Main St",
			},
		}}
		r := newBookingRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/booking/session/s1/submit", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Outcome string `json:"outcome"`
			OrderID string `json:"orderId"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Outcome != "success" || resp.OrderID != "order-1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("collaborator failure surfaces as a typed submission failure", func(t *testing.T) {
		fake := &fakeCheckoutService{
			sessions: map[string]*models.CheckoutSession{
				"s1": {
					SessionID:  "s1",
					Service:    &models.ServiceSelection{ServiceID: "wash-fold", BasePricePerUnit: 14.99, QuantityUnits: 1},
					PickupDate: "2026-09-02",
					PickupTime: "09:00 - 11:00",
					Address:    "12 Main St",
				},
			},
			submitErr: errors.New("gateway unreachable"),
		}
		r := newBookingRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/booking/session/s1/submit", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "submission-failed") {
			t.Fatalf("expected submission-failed outcome, got %s", w.Body.String())
		}
	})

	t.Run("unknown session yields 404", func(t *testing.T) {
		fake := &fakeCheckoutService{sessions: map[string]*models.CheckoutSession{}}
		r := newBookingRouter(fake)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/booking/session/nope", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBookingHandlerQuote(t *testing.T) {
	fake := &fakeCheckoutService{sessions: map[string]*models.CheckoutSession{
		"s1": {
			SessionID: "s1",
			Service:   &models.ServiceSelection{ServiceID: "wash-fold", BasePricePerUnit: 14.99, QuantityUnits: 1},
			ExtraItems: map[string]models.CartLine{
				"Towel": {ItemName: "Towel", Quantity: 3},
			},
		},
	}}
	r := newBookingRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/session/s1/quote", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var total models.PricedTotal
	if err := json.Unmarshal(w.Body.Bytes(), &total); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if total.FinalAmount != 41.47 {
		t.Fatalf("expected final 41.47, got %v", total.FinalAmount)
	}
}
