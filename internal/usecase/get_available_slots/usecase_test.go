package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	bookingClient "github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
	"github.com/kittyofheaven/kaizen-booking/pkg/civiltime"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type stubClient struct {
	windows []domain.OccupiedWindow
	err     error
}

func (s stubClient) GetAvailability(context.Context, string, domain.ResourceKind, string, string) ([]domain.OccupiedWindow, error) {
	return s.windows, s.err
}

type stubCredentials struct{ token string }

func (s stubCredentials) Token() string { return s.token }

type countingMetrics struct{ failOpen map[string]int }

func (m *countingMetrics) IncFailOpen(reason string) {
	if m.failOpen == nil {
		m.failOpen = map[string]int{}
	}
	m.failOpen[reason]++
}

var testNow = time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC) // 09:00 гражданского 2026-03-01

func newUseCase(client BookingServiceClient, token string, m Metrics) *UseCase {
	uc := NewUseCase(client, stubCredentials{token}, m, testLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func TestExecute_MarksBookedHour(t *testing.T) {
	date := "2026-03-03"
	client := stubClient{windows: []domain.OccupiedWindow{
		{StartAt: civiltime.ToInstant(date, 10, testNow), OwnerSummary: "Kamar 101"},
	}}
	uc := newUseCase(client, "token-1", &countingMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		Kind: domain.KindWorkspace, ResourceID: "kitchen-1", Date: date,
	})

	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	assert.False(t, resp.Closed)
	require.Len(t, resp.Slots, 8)
	for _, s := range resp.Slots {
		if s.CivilHour == 10 {
			assert.False(t, s.Available)
			assert.Equal(t, domain.ReasonBooked, s.Reason)
		} else {
			assert.True(t, s.Available)
		}
	}
}

func TestExecute_FailOpenOnDegradedService(t *testing.T) {
	m := &countingMetrics{}
	uc := newUseCase(stubClient{err: bookingClient.ErrServiceDegraded}, "token-1", m)

	resp, err := uc.Execute(context.Background(), &Request{
		Kind: domain.KindMeetingRoom, Date: "2026-03-03",
	})

	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	require.Len(t, resp.Slots, 16)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
	assert.Equal(t, 1, m.failOpen["degraded"])
}

func TestExecute_FailOpenWithoutCredential(t *testing.T) {
	m := &countingMetrics{}
	uc := newUseCase(stubClient{err: bookingClient.ErrAuthRequired}, "", m)

	resp, err := uc.Execute(context.Background(), &Request{
		Kind: domain.KindMeetingRoom, Date: "2026-03-03",
	})

	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Equal(t, 1, m.failOpen["no_credential"])
}

func TestExecute_ClosedDayOverridesWindows(t *testing.T) {
	date := "2026-03-05" // четверг
	client := stubClient{windows: []domain.OccupiedWindow{
		{StartAt: civiltime.ToInstant(date, 10, testNow), OwnerSummary: "Kamar 101"},
	}}
	uc := newUseCase(client, "token-1", &countingMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		Kind: domain.KindWorkspace, ResourceID: "kitchen-1", Date: date,
	})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	require.Len(t, resp.Slots, 8)
	for _, s := range resp.Slots {
		assert.False(t, s.Available)
		assert.Equal(t, domain.ReasonClosed, s.Reason)
	}
}

func TestExecute_MalformedDateFallsBackToToday(t *testing.T) {
	uc := newUseCase(stubClient{}, "token-1", &countingMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		Kind: domain.KindMeetingRoom, Date: "not-a-date",
	})

	require.NoError(t, err)
	assert.Equal(t, civiltime.DateOf(testNow), resp.Date)
}

func TestExecute_UnknownKindRejected(t *testing.T) {
	uc := newUseCase(stubClient{}, "token-1", &countingMetrics{})

	_, err := uc.Execute(context.Background(), &Request{Kind: "sauna", Date: "2026-03-03"})

	assert.ErrorIs(t, err, ErrInvalidKind)
}
