package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	getAvailableSlots "github.com/kittyofheaven/kaizen-booking/internal/usecase/get_available_slots"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(h *Handler, kind, query string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/resources/{kind}/slots", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/"+kind+"/slots"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandle_NoResourceSelectorKindWithoutResourceID(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Kind: domain.KindTheater,
		Date: "2026-03-02",
	}}
	h := NewHandler(uc, testLogger{})

	w := doRequest(h, "theater", "?date=2026-03-02")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.lastReq)
	assert.Empty(t, uc.lastReq.ResourceID)
	assert.Equal(t, "2026-03-02", uc.lastReq.Date)
}

func TestHandle_SelectorKindRequiresResourceID(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, testLogger{})

	w := doRequest(h, "workspace", "?date=2026-03-02")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_MissingDate(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, testLogger{})

	w := doRequest(h, "theater", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.lastReq)
}
