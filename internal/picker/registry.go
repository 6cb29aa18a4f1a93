package picker

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
)

var (
	// ErrPickerNotFound возвращается для неизвестного или истёкшего picker-а
	ErrPickerNotFound = errors.New("picker session not found")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для gauge живых сессий
type Metrics interface {
	SetActivePickers(n int)
}

type entry struct {
	ctrl     *selection.Controller
	lastSeen time.Time
}

// Registry реестр живых picker-сессий.
//
// Каждая сессия владеет одним контроллером выбора; сессии независимы,
// состояние между ними не разделяется. Простаивающие сессии вычищаются
// по TTL, чтобы ограничить память.
type Registry struct {
	mu      sync.RWMutex
	pickers map[string]*entry

	fetcher   selection.SlotFetcher
	submitter selection.Submitter
	ttl       time.Duration
	log       Logger
	metrics   Metrics
}

// NewRegistry создает новый реестр picker-сессий
func NewRegistry(fetcher selection.SlotFetcher, submitter selection.Submitter, ttl time.Duration, metrics Metrics, log Logger) *Registry {
	return &Registry{
		pickers:   make(map[string]*entry),
		fetcher:   fetcher,
		submitter: submitter,
		ttl:       ttl,
		log:       log,
		metrics:   metrics,
	}
}

// Create создает новую сессию для типа объекта и возвращает её ID
func (r *Registry) Create(kind domain.ResourceKind) (string, *selection.Controller, error) {
	ctrl, err := selection.NewController(kind, r.fetcher, r.submitter, r.log)
	if err != nil {
		return "", nil, err
	}

	id := uuid.NewString()

	r.mu.Lock()
	r.pickers[id] = &entry{ctrl: ctrl, lastSeen: time.Now()}
	count := len(r.pickers)
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.SetActivePickers(count)
	}

	r.log.Info("Picker session created: id=%s, kind=%s", id, kind)
	return id, ctrl, nil
}

// Get возвращает контроллер сессии и продлевает её жизнь
func (r *Registry) Get(id string) (*selection.Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.pickers[id]
	if !ok {
		return nil, ErrPickerNotFound
	}

	// Ленивая проверка TTL на доступе
	if time.Since(e.lastSeen) > r.ttl {
		delete(r.pickers, id)
		return nil, ErrPickerNotFound
	}

	e.lastSeen = time.Now()
	return e.ctrl, nil
}

// Delete удаляет сессию (закрытие формы)
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.pickers, id)
	count := len(r.pickers)
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.SetActivePickers(count)
	}
}

// RunJanitor периодически вычищает простаивающие сессии до закрытия stopCh
func (r *Registry) RunJanitor(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictIdle()
		case <-stopCh:
			return
		}
	}
}

func (r *Registry) evictIdle() {
	r.mu.Lock()
	evicted := 0
	for id, e := range r.pickers {
		if time.Since(e.lastSeen) > r.ttl {
			delete(r.pickers, id)
			evicted++
		}
	}
	count := len(r.pickers)
	r.mu.Unlock()

	if evicted > 0 {
		r.log.Info("Picker janitor evicted %d idle sessions, %d alive", evicted, count)
	}
	if r.metrics != nil {
		r.metrics.SetActivePickers(count)
	}
}
