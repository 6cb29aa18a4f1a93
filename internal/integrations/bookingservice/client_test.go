package bookingservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, NewDefaultHTTPClient(2*time.Second), 100, 100, nopLogger{})
}

func TestGetAvailability_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/resources/workspace/availability", r.URL.Path)
		assert.Equal(t, "2026-03-03", r.URL.Query().Get("date"))
		assert.Equal(t, "kitchen-1", r.URL.Query().Get("resourceId"))
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"date": "2026-03-03",
			"windows": [
				{"startAt": "2026-03-03T03:00:00Z", "endAt": "2026-03-03T05:00:00Z", "ownerSummary": "Kamar 101"}
			]
		}`))
	}))
	defer srv.Close()

	windows, err := newTestClient(srv.URL).GetAvailability(
		context.Background(), "token-1", domain.KindWorkspace, "kitchen-1", "2026-03-03")

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "Kamar 101", windows[0].OwnerSummary)
}

func TestGetAvailability_NoCredential(t *testing.T) {
	// Без токена запрос не выполняется вовсе
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not reach the server without a credential")
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetAvailability(
		context.Background(), "", domain.KindWorkspace, "kitchen-1", "2026-03-03")

	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestGetAvailability_ServerErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetAvailability(
		context.Background(), "token-1", domain.KindWorkspace, "", "2026-03-03")

	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestGetAvailability_UnreachableDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер уже остановлен

	_, err := newTestClient(srv.URL).GetAvailability(
		context.Background(), "token-1", domain.KindWorkspace, "", "2026-03-03")

	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestGetAvailability_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetAvailability(
		context.Background(), "expired-token", domain.KindWorkspace, "", "2026-03-03")

	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestCreateBooking_RejectionKeepsServerMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code": 409, "message": "slot sudah dibooking oleh penghuni lain"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateBooking(context.Background(), "token-1", &CreateBookingRequest{
		Kind:    domain.KindMeetingRoom,
		StartAt: time.Date(2026, 3, 3, 3, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 3, 4, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrRejected)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "slot sudah dibooking oleh penghuni lain", rejection.Message)
}

func TestCreateBooking_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": "b-42",
			"kind": "meeting_room",
			"resourceId": "meeting-1",
			"startAt": "2026-03-03T03:00:00Z",
			"endAt": "2026-03-03T04:00:00Z",
			"status": "confirmed",
			"createdAt": "2026-03-01T10:00:00Z"
		}`))
	}))
	defer srv.Close()

	created, err := newTestClient(srv.URL).CreateBooking(context.Background(), "token-1", &CreateBookingRequest{
		Kind:       domain.KindMeetingRoom,
		ResourceID: "meeting-1",
		StartAt:    time.Date(2026, 3, 3, 3, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 3, 3, 4, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "b-42", created.ID)
	assert.Equal(t, "confirmed", created.Status)
}

func TestGetCatalog_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/resources/washing_machine/catalog", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resources": [{"id": "machine-1", "displayName": "Mesin Cuci 1"}]}`))
	}))
	defer srv.Close()

	resources, err := newTestClient(srv.URL).GetCatalog(context.Background(), "token-1", domain.KindWashingMachine)

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Mesin Cuci 1", resources[0].DisplayName)
}
