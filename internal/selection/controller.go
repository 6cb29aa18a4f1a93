package selection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/pkg/civiltime"
)

// State состояние picker-а
type State string

const (
	// StateIdle ресурс ещё не выбран (для типов со вторичным селектором)
	StateIdle State = "idle"
	// StateLoading запрос слотов в полёте
	StateLoading State = "loading"
	// StateReady слиты слоты, выбор не сделан
	StateReady State = "ready"
	// StateSelected один слот подтверждён
	StateSelected State = "selected"
	// StateSubmitting отправка бронирования в полёте
	StateSubmitting State = "submitting"
)

const defaultFetchTimeout = 10 * time.Second

// Controller владеет реактивным состоянием одной формы бронирования:
// выбранная дата, ресурс и подтверждённый слот.
//
// Инварианты:
//   - смена даты или ресурса всегда сбрасывает выбранный слот;
//   - слот нельзя выбрать, если он недоступен, в прошлом или в закрытый день;
//   - одновременно выбран максимум один слот;
//   - результат запроса применяется только если его generation-токен
//     (date, resource, seq) всё ещё совпадает с текущим — устаревшие ответы
//     отбрасываются ("последний запрос побеждает").
//
// Единственный писатель на экземпляр: все мутации идут под mu, состояние
// между picker-ами не разделяется.
type Controller struct {
	mu sync.Mutex

	kind domain.ResourceKind
	cfg  domain.ScheduleConfig

	state      State
	date       string
	resourceID string
	slots      []domain.Slot
	degraded   bool
	selected   *domain.Slot
	lastError  string

	// generation-токен: инкрементируется на каждую смену контекста
	gen uint64

	fetcher      SlotFetcher
	submitter    Submitter
	timeProvider TimeProvider
	fetchTimeout time.Duration
	log          Logger
}

// NewController создает контроллер и запускает первую загрузку слотов.
// Дата инициализируется сегодняшним гражданским днём. Для типов со вторичным
// селектором контроллер остаётся в Idle до выбора ресурса.
func NewController(kind domain.ResourceKind, fetcher SlotFetcher, submitter Submitter, log Logger) (*Controller, error) {
	cfg, err := domain.ConfigFor(kind)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		kind:         kind,
		cfg:          cfg,
		fetcher:      fetcher,
		submitter:    submitter,
		timeProvider: &RealTimeProvider{},
		fetchTimeout: defaultFetchTimeout,
		log:          log,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.date = civiltime.DateOf(c.timeProvider.Now())
	if kind.HasSecondarySelector() {
		c.state = StateIdle
		return c, nil
	}

	c.beginFetchLocked()
	return c, nil
}

// View снимок состояния контроллера для отображения
type View struct {
	Kind       domain.ResourceKind
	State      State
	Date       string
	ResourceID string
	Slots      []domain.Slot
	Degraded   bool
	Selected   *domain.Slot
	LastError  string
}

// Snapshot возвращает копию текущего состояния
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	slots := make([]domain.Slot, len(c.slots))
	copy(slots, c.slots)

	var selected *domain.Slot
	if c.selected != nil {
		s := *c.selected
		selected = &s
	}

	return View{
		Kind:       c.kind,
		State:      c.state,
		Date:       c.date,
		ResourceID: c.resourceID,
		Slots:      slots,
		Degraded:   c.degraded,
		Selected:   selected,
		LastError:  c.lastError,
	}
}

// SetDate меняет дату формы. Выбранный слот всегда сбрасывается сразу,
// до разрешения какого-либо запроса. Некорректная строка даты деградирует
// к сегодняшнему дню (через civiltime).
func (c *Controller) SetDate(date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmitInFlight
	}

	now := c.timeProvider.Now()
	c.date = civiltime.DateOf(civiltime.ToInstant(date, 0, now))
	c.selected = nil
	c.lastError = ""

	if c.state == StateIdle {
		// Ресурс ещё не выбран: дату запомнили, загрузку не запускаем
		return nil
	}

	c.beginFetchLocked()
	return nil
}

// SetResource меняет выбранный ресурс (кухню, площадку, машину).
// Выбранный слот всегда сбрасывается сразу.
func (c *Controller) SetResource(resourceID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.kind.HasSecondarySelector() {
		return ErrNoSecondarySelector
	}
	if c.state == StateSubmitting {
		return ErrSubmitInFlight
	}

	c.resourceID = resourceID
	c.selected = nil
	c.lastError = ""

	c.beginFetchLocked()
	return nil
}

// SelectSlot подтверждает слот по его началу (идентичность слота).
// Повторный выбор уже подтверждённого слота снимает выбор (toggle).
//
// Отклоняется без смены состояния, если слот недоступен, его начало в
// прошлом, день закрыт или контроллер в Loading. Правило "в прошлом"
// строже серверной доступности и применяется даже при available=true.
func (c *Controller) SelectSlot(startAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateLoading, StateIdle:
		return ErrLoading
	case StateSubmitting:
		return ErrSubmitInFlight
	}

	// Toggle: повторный тап по выбранному слоту снимает выбор
	if c.selected != nil && c.selected.SameSlot(startAt) {
		c.selected = nil
		c.state = StateReady
		return nil
	}

	slot := c.findSlotLocked(startAt)
	if slot == nil {
		return ErrUnknownSlot
	}

	now := c.timeProvider.Now()

	// Закрытый день непреодолим, даже если available из-за гонки оказался true
	if c.cfg.IsClosedOn(civiltime.Weekday(c.date, now)) {
		return ErrClosedDay
	}
	if !slot.Available {
		return ErrSlotUnavailable
	}
	if slot.IsPast(now) {
		return ErrSlotInPast
	}

	chosen := *slot
	c.selected = &chosen
	c.state = StateSelected
	return nil
}

// Submit отправляет подтверждённый выбор с полями формы.
// Повторная отправка блокируется, пока первая в полёте. При ошибке выбор и
// черновик сохраняются (состояние возвращается в Selected), чтобы пользователь
// ничего не потерял при повторе; при успехе всё очищается и запускается
// перезагрузка слотов.
func (c *Controller) Submit(ctx context.Context, draft domain.BookingDraft) (*SubmitResult, error) {
	c.mu.Lock()

	if c.state == StateSubmitting {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if c.state != StateSelected || c.selected == nil {
		c.mu.Unlock()
		return nil, ErrNoSlotSelected
	}

	sel := domain.Selection{
		Date:       c.date,
		ResourceID: c.resourceID,
		Slot:       c.selected,
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	// Сетевой вызов вне блокировки: Submitting защищает от конкурентных
	// мутаций, applyFetch игнорирует не-Loading состояния
	result, err := c.submitter.Submit(ctx, c.kind, sel, draft)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// Выбор и данные формы остаются нетронутыми для повтора
		c.state = StateSelected
		c.lastError = err.Error()
		return nil, err
	}

	c.log.Info("Picker submit succeeded: kind=%s, booking_id=%s", c.kind, result.BookingID)
	c.selected = nil
	c.lastError = ""
	c.beginFetchLocked()
	return result, nil
}

// beginFetchLocked запускает асинхронную загрузку слотов для текущего
// контекста. Вызывается только под mu.
func (c *Controller) beginFetchLocked() {
	c.gen++
	gen := c.gen
	date := c.date
	resourceID := c.resourceID

	c.state = StateLoading
	c.slots = nil
	c.degraded = false

	go c.runFetch(gen, date, resourceID)
}

// runFetch выполняет запрос слотов и применяет результат, если его
// generation-токен всё ещё актуален.
//
// Используется фоновый контекст: загрузка переживает HTTP запрос,
// инициировавший смену контекста, — picker опрашивается отдельно.
func (c *Controller) runFetch(gen uint64, date, resourceID string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	slots, degraded, err := c.fetcher.FetchSlots(ctx, c.kind, resourceID, date)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Дисциплина устаревших ответов: пользователь уже перешёл к другому
	// контексту — результат отбрасывается, состояние не перезаписывается
	if gen != c.gen {
		c.log.Info("Discarding stale slot fetch: kind=%s, date=%s, resource=%s", c.kind, date, resourceID)
		return
	}
	if c.state != StateLoading {
		return
	}

	if err != nil {
		c.log.Error("Slot fetch failed: kind=%s, date=%s, resource=%s: %v", c.kind, date, resourceID, err)
		c.state = StateReady
		c.slots = nil
		c.degraded = true
		c.lastError = fmt.Sprintf("failed to load slots: %v", err)
		return
	}

	c.state = StateReady
	c.slots = slots
	c.degraded = degraded
}

// findSlotLocked ищет слот текущего набора по началу
func (c *Controller) findSlotLocked(startAt time.Time) *domain.Slot {
	for i := range c.slots {
		if c.slots[i].SameSlot(startAt) {
			return &c.slots[i]
		}
	}
	return nil
}
