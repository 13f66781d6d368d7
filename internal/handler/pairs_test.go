package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/letter-pairs/internal/model"
	"github.com/iliyamo/letter-pairs/internal/pairs"
	"github.com/iliyamo/letter-pairs/internal/queue"
)

type recordingPublisher struct {
	events []queue.PairsServedEvent
	err    error
}

func (p *recordingPublisher) PublishPairsServed(_ context.Context, ev queue.PairsServedEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

type failingResolver struct{}

func (failingResolver) Resolve(string) ([]model.Pair, error) { return nil, errors.New("boom") }

func newPairsHandler(t *testing.T, pub EventPublisher) *PairsHandler {
	t.Helper()
	r, err := pairs.Load()
	require.NoError(t, err)
	return NewPairsHandler(r, r.Index(), pub, nil)
}

func getPairs(h *PairsHandler, mode string) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/get_pairs/"+mode, nil), rec)
	c.SetPath("/get_pairs/:mode")
	c.SetParamNames("mode")
	c.SetParamValues(mode)
	_ = h.GetPairs(c)
	return rec
}

func TestGetPairs_StartA(t *testing.T) {
	rec := getPairs(newPairsHandler(t, nil), "start_a")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw [][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Len(t, raw, 23)
	got := map[string]string{}
	for _, kv := range raw {
		require.Len(t, kv, 2)
		got[kv[0]] = kv[1]
	}
	assert.Equal(t, "盘", got["ab"])
	assert.Equal(t, "典", got["az"])
}

func TestGetPairs_Full(t *testing.T) {
	rec := getPairs(newPairsHandler(t, nil), "full")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []model.Pair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 567)
}

func TestGetPairs_UnknownModeIsEmptyArray(t *testing.T) {
	rec := getPairs(newPairsHandler(t, nil), "bogus_mode")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPairs_MissingBucketIs404(t *testing.T) {
	for _, mode := range []string{"start_x", "end_y", "start_ab"} {
		rec := getPairs(newPairsHandler(t, nil), mode)
		assert.Equal(t, http.StatusNotFound, rec.Code, mode)
		assert.JSONEq(t, `{"error":"bucket not found"}`, rec.Body.String(), mode)
	}
}

func TestGetPairs_ResolverFailureIs500(t *testing.T) {
	h := NewPairsHandler(failingResolver{}, &pairs.Index{}, nil, nil)
	rec := getPairs(h, "full")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetPairs_PublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	h := newPairsHandler(t, pub)

	getPairs(h, "end_z")
	getPairs(h, "start_y")

	require.Len(t, pub.events, 2)
	seen := map[string]queue.PairsServedEvent{}
	for _, ev := range pub.events {
		seen[ev.Mode] = ev
	}
	assert.Equal(t, 22, seen["end_z"].Count)
	assert.True(t, seen["end_z"].Found)
	assert.False(t, seen["start_y"].Found)
	assert.False(t, seen["end_z"].ServedAt.IsZero())
}

func TestGetPairs_PublishFailureKeepsResponse(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("publish queue full")}
	h := newPairsHandler(t, pub)

	start := time.Now()
	for i := 0; i < 200; i++ {
		rec := getPairs(h, "end_a")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Len(t, pub.events, 200)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestListModes(t *testing.T) {
	h := newPairsHandler(t, nil)
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListModes(e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/modes", nil), rec)))

	var body struct {
		Items []string `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "full", body.Items[0])
	assert.Contains(t, body.Items, "end_z")
}

func TestIndex(t *testing.T) {
	h := newPairsHandler(t, nil)
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Index(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "/get_pairs/")
}

func TestNewPairsHandler_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewPairsHandler(nil, nil, nil, nil) })
}

func TestHealth(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), rec)))
	assert.Equal(t, "ok", rec.Body.String())
}
