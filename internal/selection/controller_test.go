package selection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/internal/slots"
	"github.com/kittyofheaven/kaizen-booking/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// 14:30 по гражданскому времени 2026-03-03 (вторник)
var testNow = time.Date(2026, 3, 3, 7, 30, 0, 0, time.UTC)

// instantFetcher сразу отдаёт сгенерированные слоты без серверной занятости
type instantFetcher struct{}

func (instantFetcher) FetchSlots(_ context.Context, kind domain.ResourceKind, _ string, date string) ([]domain.Slot, bool, error) {
	cfg, err := domain.ConfigFor(kind)
	if err != nil {
		return nil, false, err
	}
	generated := slots.Generate(date, cfg, testNow)
	return slots.Merge(date, cfg, generated, slots.MergeInput{}, testNow), false, nil
}

type fetchResult struct {
	slots    []domain.Slot
	degraded bool
	err      error
}

type gatedCall struct {
	date       string
	resourceID string
	release    chan fetchResult
}

// gatedFetcher копит вызовы и отдаёт результат только по команде теста
type gatedFetcher struct {
	mu    sync.Mutex
	calls []*gatedCall
}

func (f *gatedFetcher) FetchSlots(_ context.Context, _ domain.ResourceKind, resourceID, date string) ([]domain.Slot, bool, error) {
	call := &gatedCall{date: date, resourceID: resourceID, release: make(chan fetchResult, 1)}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	r := <-call.release
	return r.slots, r.degraded, r.err
}

func (f *gatedFetcher) call(i int) *gatedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i >= len(f.calls) {
		return nil
	}
	return f.calls[i]
}

func (f *gatedFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type stubSubmitter struct {
	err    error
	result *SubmitResult
}

func (s stubSubmitter) Submit(context.Context, domain.ResourceKind, domain.Selection, domain.BookingDraft) (*SubmitResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func waitState(t *testing.T, c *Controller, st State) {
	t.Helper()
	waitFor(t, func() bool { return c.Snapshot().State == st })
}

func newReadyMeetingRoom(t *testing.T, sub Submitter) *Controller {
	t.Helper()
	if sub == nil {
		sub = stubSubmitter{result: &SubmitResult{BookingID: "b-1", Status: "confirmed"}}
	}
	c, err := NewController(domain.KindMeetingRoom, instantFetcher{}, sub, testLogger{})
	require.NoError(t, err)
	c.mu.Lock()
	c.timeProvider = fixedTime{testNow}
	c.mu.Unlock()
	// Первая загрузка стартовала с настоящим временем; перезагружаем с
	// фиксированным, чтобы дата была детерминированной
	require.NoError(t, c.SetDate("2026-03-03"))
	waitState(t, c, StateReady)
	return c
}

func slotAt(t *testing.T, v View, civilHour int) domain.Slot {
	t.Helper()
	for _, s := range v.Slots {
		if s.CivilHour == civilHour {
			return s
		}
	}
	t.Fatalf("no slot at civil hour %d", civilHour)
	return domain.Slot{}
}

func TestController_InitialStateIdleForSecondarySelectorKinds(t *testing.T) {
	c, err := NewController(domain.KindWorkspace, instantFetcher{}, stubSubmitter{}, testLogger{})
	require.NoError(t, err)

	v := c.Snapshot()
	assert.Equal(t, StateIdle, v.State)
	assert.Empty(t, v.Slots)

	// Выбор ресурса запускает загрузку
	require.NoError(t, c.SetResource("kitchen-1"))
	waitState(t, c, StateReady)
	assert.Len(t, c.Snapshot().Slots, 8)
}

func TestSelectSlot_PastRejectedEvenIfAvailable(t *testing.T) {
	c := newReadyMeetingRoom(t, nil)

	past := slotAt(t, c.Snapshot(), 10) // 10:00 < 14:30
	require.True(t, past.Available)

	err := c.SelectSlot(past.StartAt)
	assert.ErrorIs(t, err, ErrSlotInPast)
	assert.Nil(t, c.Snapshot().Selected)
}

func TestSelectSlot_FutureSlotCommits(t *testing.T) {
	c := newReadyMeetingRoom(t, nil)

	future := slotAt(t, c.Snapshot(), 20)
	require.NoError(t, c.SelectSlot(future.StartAt))

	v := c.Snapshot()
	assert.Equal(t, StateSelected, v.State)
	require.NotNil(t, v.Selected)
	assert.True(t, v.Selected.SameSlot(future.StartAt))
}

func TestSelectSlot_ToggleDeselects(t *testing.T) {
	c := newReadyMeetingRoom(t, nil)
	future := slotAt(t, c.Snapshot(), 20)

	require.NoError(t, c.SelectSlot(future.StartAt))
	require.NoError(t, c.SelectSlot(future.StartAt))

	v := c.Snapshot()
	assert.Equal(t, StateReady, v.State)
	assert.Nil(t, v.Selected)
}

func TestSelectSlot_UnavailableRejected(t *testing.T) {
	c := newReadyMeetingRoom(t, nil)

	// Помечаем слот занятым напрямую в наборе контроллера
	c.mu.Lock()
	target := &c.slots[14] // 20:00
	target.Available = false
	target.Reason = domain.ReasonBooked
	startAt := target.StartAt
	c.mu.Unlock()

	err := c.SelectSlot(startAt)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestSelectSlot_ClosedDayRejectedDespiteAvailableFlag(t *testing.T) {
	c, err := NewController(domain.KindWorkspace, instantFetcher{}, stubSubmitter{}, testLogger{})
	require.NoError(t, err)
	c.mu.Lock()
	c.timeProvider = fixedTime{testNow}
	c.mu.Unlock()

	require.NoError(t, c.SetResource("kitchen-1"))
	waitState(t, c, StateReady)
	require.NoError(t, c.SetDate("2026-03-05")) // четверг
	waitState(t, c, StateReady)

	// Из-за гонки слот мог остаться available=true; закрытый день сильнее
	c.mu.Lock()
	c.slots[7].Available = true
	c.slots[7].Reason = ""
	startAt := c.slots[7].StartAt
	c.mu.Unlock()

	assert.ErrorIs(t, c.SelectSlot(startAt), ErrClosedDay)
}

func TestSetDate_ClearsSelectionBeforeFetchResolves(t *testing.T) {
	fetcher := &gatedFetcher{}
	c, err := NewController(domain.KindMeetingRoom, fetcher, stubSubmitter{}, testLogger{})
	require.NoError(t, err)
	c.mu.Lock()
	c.timeProvider = fixedTime{testNow}
	c.mu.Unlock()

	waitFor(t, func() bool { return fetcher.callCount() == 1 })
	cfg, _ := domain.ConfigFor(domain.KindMeetingRoom)
	fetcher.call(0).release <- fetchResult{
		slots: slots.Generate("2026-03-03", cfg, testNow),
	}
	waitState(t, c, StateReady)

	future := slotAt(t, c.Snapshot(), 20)
	require.NoError(t, c.SelectSlot(future.StartAt))
	require.NotNil(t, c.Snapshot().Selected)

	// Смена даты: выбор сброшен немедленно, до разрешения нового запроса
	require.NoError(t, c.SetDate("2026-03-10"))

	v := c.Snapshot()
	assert.Nil(t, v.Selected)
	assert.Equal(t, StateLoading, v.State)
	assert.Equal(t, "2026-03-10", v.Date)
}

func TestStaleFetchDiscarded(t *testing.T) {
	fetcher := &gatedFetcher{}
	c, err := NewController(domain.KindMeetingRoom, fetcher, stubSubmitter{}, testLogger{})
	require.NoError(t, err)
	c.mu.Lock()
	c.timeProvider = fixedTime{testNow}
	c.mu.Unlock()

	waitFor(t, func() bool { return fetcher.callCount() == 1 })

	// Пользователь уходит на другую дату, пока первый запрос в полёте
	require.NoError(t, c.SetDate("2026-03-10"))
	waitFor(t, func() bool { return fetcher.callCount() == 2 })

	cfg, _ := domain.ConfigFor(domain.KindMeetingRoom)

	// Второй (актуальный) ответ применён
	fetcher.call(1).release <- fetchResult{slots: slots.Generate("2026-03-10", cfg, testNow)}
	waitState(t, c, StateReady)

	// Первый (устаревший) ответ разрешается позже и должен быть отброшен
	fetcher.call(0).release <- fetchResult{slots: slots.Generate(fetcher.call(0).date, cfg, testNow)}

	time.Sleep(20 * time.Millisecond)
	v := c.Snapshot()
	assert.Equal(t, "2026-03-10", v.Date)
	require.NotEmpty(t, v.Slots)
	assert.Equal(t, "2026-03-10", v.Slots[0].StartAt.In(time.FixedZone("UTC+7", 7*3600)).Format("2006-01-02"))
}

func TestSelectSlot_WhileLoadingRejected(t *testing.T) {
	fetcher := &gatedFetcher{}
	c, err := NewController(domain.KindMeetingRoom, fetcher, stubSubmitter{}, testLogger{})
	require.NoError(t, err)

	waitFor(t, func() bool { return fetcher.callCount() == 1 })

	err = c.SelectSlot(testNow.Add(time.Hour))
	assert.ErrorIs(t, err, ErrLoading)
}

func TestSubmit_WithoutSelectionRejected(t *testing.T) {
	c := newReadyMeetingRoom(t, nil)

	_, err := c.Submit(context.Background(), domain.BookingDraft{})
	assert.ErrorIs(t, err, ErrNoSlotSelected)
}

func TestSubmit_FailureKeepsSelectionForRetry(t *testing.T) {
	serverErr := errors.New("slot sudah dibooking")
	c := newReadyMeetingRoom(t, stubSubmitter{err: serverErr})

	future := slotAt(t, c.Snapshot(), 20)
	require.NoError(t, c.SelectSlot(future.StartAt))

	_, err := c.Submit(context.Background(), domain.BookingDraft{Participants: ptr.Ptr(5)})
	require.ErrorIs(t, err, serverErr)

	v := c.Snapshot()
	assert.Equal(t, StateSelected, v.State)
	require.NotNil(t, v.Selected)
	assert.True(t, v.Selected.SameSlot(future.StartAt))
	assert.NotEmpty(t, v.LastError)
}

func TestSubmit_SuccessClearsSelectionAndRefetches(t *testing.T) {
	c := newReadyMeetingRoom(t, stubSubmitter{result: &SubmitResult{BookingID: "b-7", Status: "confirmed"}})

	future := slotAt(t, c.Snapshot(), 20)
	require.NoError(t, c.SelectSlot(future.StartAt))

	result, err := c.Submit(context.Background(), domain.BookingDraft{Participants: ptr.Ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, "b-7", result.BookingID)

	waitState(t, c, StateReady)
	assert.Nil(t, c.Snapshot().Selected)
}

func TestSetResource_RejectedForKindsWithoutSecondarySelector(t *testing.T) {
	c := newReadyMeetingRoom(t, nil)

	assert.ErrorIs(t, c.SetResource("meeting-2"), ErrNoSecondarySelector)
}
