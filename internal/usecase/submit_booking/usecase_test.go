package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	bookingClient "github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
	"github.com/kittyofheaven/kaizen-booking/internal/slots"
	"github.com/kittyofheaven/kaizen-booking/pkg/civiltime"
	"github.com/kittyofheaven/kaizen-booking/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type stubClient struct {
	created  *bookingClient.CreatedBooking
	err      error
	lastReq  *bookingClient.CreateBookingRequest
	lastTok  string
	numCalls int
}

func (s *stubClient) CreateBooking(_ context.Context, token string, req *bookingClient.CreateBookingRequest) (*bookingClient.CreatedBooking, error) {
	s.numCalls++
	s.lastTok = token
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

type stubCredentials struct{ token string }

func (s stubCredentials) Token() string { return s.token }

var testNow = time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC) // 09:00 гражданского, понедельник 2026-03-02

func futureSlot(date string, hour int) *domain.Slot {
	return &domain.Slot{
		StartAt:   civiltime.ToInstant(date, hour, testNow),
		EndAt:     civiltime.ToInstant(date, hour+1, testNow),
		CivilHour: hour,
		Label:     fmt.Sprintf("%02d:00 - %02d:00", hour, hour+1),
		Available: true,
	}
}

func meetingRoomRequest() Request {
	date := "2026-03-02"
	return Request{
		Kind: domain.KindMeetingRoom,
		Selection: domain.Selection{
			Date:       date,
			ResourceID: "meeting-room-1",
			Slot:       futureSlot(date, 14),
		},
		Draft: domain.BookingDraft{
			Participants: ptr.Ptr(4),
			Purpose:      ptr.Ptr("rapat mingguan"),
		},
	}
}

func newUseCase(client BookingServiceClient, token string) *UseCase {
	uc := NewUseCase(client, stubCredentials{token}, testLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	req := meetingRoomRequest()
	client := &stubClient{created: &bookingClient.CreatedBooking{
		ID:         "bk-42",
		Kind:       "meeting_room",
		ResourceID: "meeting-room-1",
		StartAt:    req.Selection.Slot.StartAt,
		EndAt:      req.Selection.Slot.EndAt,
		Status:     "confirmed",
	}}
	uc := newUseCase(client, "token-1")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "bk-42", resp.BookingID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "token-1", client.lastTok)
	require.NotNil(t, client.lastReq)
	assert.Equal(t, "meeting-room-1", client.lastReq.ResourceID)
	assert.True(t, client.lastReq.StartAt.Equal(req.Selection.Slot.StartAt))
}

func TestExecute_PastSlotNeverReachesNetwork(t *testing.T) {
	req := meetingRoomRequest()
	req.Selection.Slot = futureSlot("2026-03-02", 7) // 07:00 гражданского уже прошло
	client := &stubClient{}
	uc := newUseCase(client, "token-1")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrSlotInPast)
	assert.Zero(t, client.numCalls)
}

func TestExecute_ClosedDayRejected(t *testing.T) {
	date := "2026-03-05" // четверг, прачечная-кухня закрыта
	req := Request{
		Kind: domain.KindWorkspace,
		Selection: domain.Selection{
			Date:       date,
			ResourceID: "kitchen-1",
			Slot:       futureSlot(date, 14),
		},
	}
	client := &stubClient{}
	uc := newUseCase(client, "token-1")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrClosedDay)
	assert.Zero(t, client.numCalls)
}

func TestExecute_DraftValidationFailsFast(t *testing.T) {
	req := meetingRoomRequest()
	req.Draft.Participants = nil
	client := &stubClient{}
	uc := newUseCase(client, "token-1")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, client.numCalls)
}

func TestExecute_NoSlotSelected(t *testing.T) {
	req := meetingRoomRequest()
	req.Selection.Slot = nil
	uc := newUseCase(&stubClient{}, "token-1")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidation)
}

func TestExecute_MissingCredential(t *testing.T) {
	client := &stubClient{}
	uc := newUseCase(client, "")

	_, err := uc.Execute(context.Background(), meetingRoomRequest())

	require.ErrorIs(t, err, ErrAuthRequired)
	assert.Zero(t, client.numCalls)
}

func TestExecute_RejectionKeepsServerMessage(t *testing.T) {
	client := &stubClient{err: &bookingClient.RejectionError{
		Message: "slot sudah dibooking oleh penghuni lain",
	}}
	uc := newUseCase(client, "token-1")

	_, err := uc.Execute(context.Background(), meetingRoomRequest())

	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "slot sudah dibooking oleh penghuni lain")
}

func TestExecute_UpstreamDown(t *testing.T) {
	client := &stubClient{err: bookingClient.ErrServiceDegraded}
	uc := newUseCase(client, "token-1")

	_, err := uc.Execute(context.Background(), meetingRoomRequest())

	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_UpstreamRejectsToken(t *testing.T) {
	client := &stubClient{err: bookingClient.ErrAuthRequired}
	uc := newUseCase(client, "token-1")

	_, err := uc.Execute(context.Background(), meetingRoomRequest())

	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestExecute_UnexpectedClientError(t *testing.T) {
	client := &stubClient{err: errors.New("connection reset")}
	uc := newUseCase(client, "token-1")

	_, err := uc.Execute(context.Background(), meetingRoomRequest())

	require.ErrorIs(t, err, ErrInternal)
}

func theaterRequest() Request {
	date := "2026-03-02"
	return Request{
		Kind: domain.KindTheater,
		Selection: domain.Selection{
			Date: date,
			Slot: futureSlot(date, 14),
		},
		Draft: domain.BookingDraft{
			Participants: ptr.Ptr(20),
			Purpose:      ptr.Ptr("latihan teater"),
		},
	}
}

func TestExecute_NoResourceSelectorKindSubmitsWithoutResource(t *testing.T) {
	client := &stubClient{created: &bookingClient.CreatedBooking{
		ID:     "bk-9",
		Kind:   "theater",
		Status: "confirmed",
	}}
	uc := newUseCase(client, "token-1")

	resp, err := uc.Execute(context.Background(), theaterRequest())

	require.NoError(t, err)
	assert.Equal(t, "bk-9", resp.BookingID)
	require.NotNil(t, client.lastReq)
	assert.Empty(t, client.lastReq.ResourceID)
}

func TestExecute_SelectorKindRequiresResource(t *testing.T) {
	date := "2026-03-02"
	req := Request{
		Kind: domain.KindWorkspace,
		Selection: domain.Selection{
			Date: date,
			Slot: futureSlot(date, 14),
		},
		Draft: domain.BookingDraft{Participants: ptr.Ptr(2)},
	}
	client := &stubClient{}
	uc := newUseCase(client, "token-1")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, client.numCalls)
}

func TestSubmit_AdapterMapsResult(t *testing.T) {
	req := meetingRoomRequest()
	client := &stubClient{created: &bookingClient.CreatedBooking{
		ID:     "bk-7",
		Status: "confirmed",
	}}
	uc := newUseCase(client, "token-1")

	res, err := uc.Submit(context.Background(), req.Kind, req.Selection, req.Draft)

	require.NoError(t, err)
	assert.Equal(t, "bk-7", res.BookingID)
	assert.Equal(t, "confirmed", res.Status)
}

// scheduleFetcher отдаёт реальное сгенерированное расписание без серверных
// данных о занятости, как при деградации доступности
type scheduleFetcher struct{}

func (scheduleFetcher) FetchSlots(_ context.Context, kind domain.ResourceKind, _, date string) ([]domain.Slot, bool, error) {
	cfg, err := domain.ConfigFor(kind)
	if err != nil {
		return nil, false, err
	}
	now := time.Now()
	return slots.Merge(date, cfg, slots.Generate(date, cfg, now), slots.MergeInput{}, now), false, nil
}

func waitForState(t *testing.T, ctrl *selection.Controller, want selection.State) selection.View {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if view := ctrl.Snapshot(); view.State == want {
			return view
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("controller never reached state %q", want)
	return selection.View{}
}

func TestSubmit_ControllerFlowWithoutResourceSelector(t *testing.T) {
	client := &stubClient{created: &bookingClient.CreatedBooking{
		ID:     "bk-77",
		Kind:   "theater",
		Status: "confirmed",
	}}
	uc := NewUseCase(client, stubCredentials{"token-1"}, testLogger{})

	ctrl, err := selection.NewController(domain.KindTheater, scheduleFetcher{}, uc, testLogger{})
	require.NoError(t, err)

	// Завтрашний день: первый слот заведомо в будущем
	tomorrow := civiltime.DateOf(time.Now().AddDate(0, 0, 1))
	require.NoError(t, ctrl.SetDate(tomorrow))
	view := waitForState(t, ctrl, selection.StateReady)
	require.NotEmpty(t, view.Slots)

	require.NoError(t, ctrl.SelectSlot(view.Slots[0].StartAt))

	result, err := ctrl.Submit(context.Background(), domain.BookingDraft{
		Participants: ptr.Ptr(20),
		Purpose:      ptr.Ptr("latihan teater"),
	})

	require.NoError(t, err)
	assert.Equal(t, "bk-77", result.BookingID)
	require.NotNil(t, client.lastReq)
	assert.Empty(t, client.lastReq.ResourceID)
	assert.Equal(t, domain.KindTheater, client.lastReq.Kind)
}
