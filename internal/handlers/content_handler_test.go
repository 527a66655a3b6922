package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kabarettimpro/theater-api/internal/domain/content"
	"github.com/kabarettimpro/theater-api/internal/storage/mongodb"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeInfoRepo implements mongodb.InfoRepository for handler tests.
type fakeInfoRepo struct {
	docs []*content.Info
	err  error
}

func (r *fakeInfoRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.docs)), r.err
}

func (r *fakeInfoRepo) Insert(ctx context.Context, info *content.Info) error {
	r.docs = append(r.docs, info)
	return r.err
}

func (r *fakeInfoRepo) Latest(ctx context.Context) (*content.Info, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.docs) == 0 {
		return nil, mongodb.ErrNotFound
	}
	latest := r.docs[0]
	for _, doc := range r.docs[1:] {
		if doc.CreatedAt.After(latest.CreatedAt) {
			latest = doc
		}
	}
	return latest, nil
}

// fakeOwnerRepo implements mongodb.OwnerRepository for handler tests.
type fakeOwnerRepo struct {
	docs []*content.Owner
	err  error
}

func (r *fakeOwnerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.docs)), r.err
}

func (r *fakeOwnerRepo) Insert(ctx context.Context, owner *content.Owner) error {
	r.docs = append(r.docs, owner)
	return r.err
}

func (r *fakeOwnerRepo) All(ctx context.Context) ([]*content.Owner, error) {
	return r.docs, r.err
}

// fakeEventRepo implements mongodb.EventRepository for handler tests.
type fakeEventRepo struct {
	docs []*content.Event
	err  error
}

func (r *fakeEventRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.docs)), r.err
}

func (r *fakeEventRepo) Insert(ctx context.Context, event *content.Event) error {
	r.docs = append(r.docs, event)
	return r.err
}

func (r *fakeEventRepo) AllByDate(ctx context.Context) ([]*content.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	sorted := make([]*content.Event, len(r.docs))
	copy(sorted, r.docs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted, nil
}

func newContentRouter(h *ContentHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api")
	api.GET("/info", h.GetInfo)
	api.GET("/owners", h.GetOwners)
	api.GET("/events", h.GetEvents)
	return router
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetInfoReturnsLatestProjection(t *testing.T) {
	infos := &fakeInfoRepo{docs: []*content.Info{
		{
			ID:        primitive.NewObjectID(),
			Name:      "Altes Haus",
			Address:   "Gasse 1",
			City:      "Wien",
			Country:   "Österreich",
			CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        primitive.NewObjectID(),
			Name:      "Kabarett & Impro Wien",
			Address:   "Kreativgasse 12",
			City:      "Wien",
			Country:   "Österreich",
			CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}}

	h := NewContentHandler(infos, &fakeOwnerRepo{}, &fakeEventRepo{})
	w := performRequest(newContentRouter(h), http.MethodGet, "/api/info")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Kabarett & Impro Wien", body["name"])
	assert.NotContains(t, body, "id")
	assert.NotContains(t, body, "_id")
	assert.NotContains(t, body, "created_at")

	// Unset optional fields serialize as explicit nulls.
	assert.Contains(t, body, "phone")
	assert.Nil(t, body["phone"])
}

func TestGetInfoNotFound(t *testing.T) {
	h := NewContentHandler(&fakeInfoRepo{}, &fakeOwnerRepo{}, &fakeEventRepo{})
	w := performRequest(newContentRouter(h), http.MethodGet, "/api/info")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Info not found"}`, w.Body.String())
}

func TestGetInfoRepoError(t *testing.T) {
	h := NewContentHandler(&fakeInfoRepo{err: errors.New("boom")}, &fakeOwnerRepo{}, &fakeEventRepo{})
	w := performRequest(newContentRouter(h), http.MethodGet, "/api/info")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail": "Failed to retrieve info"}`, w.Body.String())
}

func TestContentEndpointsWithoutStore(t *testing.T) {
	h := NewContentHandler(nil, nil, nil)
	router := newContentRouter(h)

	for _, path := range []string{"/api/info", "/api/owners", "/api/events"} {
		w := performRequest(router, http.MethodGet, path)

		require.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.JSONEq(t, `{"detail": "Database not available"}`, w.Body.String(), path)
	}
}

func TestGetOwnersKeepsInsertionOrder(t *testing.T) {
	owners := &fakeOwnerRepo{docs: []*content.Owner{
		{ID: primitive.NewObjectID(), Name: "Lena Leitner", Role: "Künstlerische Leitung", BioDE: "a", BioEN: "b"},
		{ID: primitive.NewObjectID(), Name: "Max Maurer", Role: "Geschäftsführung", BioDE: "c", BioEN: "d"},
	}}

	h := NewContentHandler(&fakeInfoRepo{}, owners, &fakeEventRepo{})
	w := performRequest(newContentRouter(h), http.MethodGet, "/api/owners")

	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)

	assert.Equal(t, "Lena Leitner", body[0]["name"])
	assert.Equal(t, "Max Maurer", body[1]["name"])
	assert.NotContains(t, body[0], "id")
	assert.NotContains(t, body[0], "_id")
}

func TestGetOwnersEmptyList(t *testing.T) {
	h := NewContentHandler(&fakeInfoRepo{}, &fakeOwnerRepo{}, &fakeEventRepo{})
	w := performRequest(newContentRouter(h), http.MethodGet, "/api/owners")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetEventsSortedByDate(t *testing.T) {
	base := time.Date(2026, time.August, 25, 19, 30, 0, 0, time.UTC)

	// Inserted out of order on purpose.
	events := &fakeEventRepo{docs: []*content.Event{
		{ID: primitive.NewObjectID(), Title: "Stand-up: Late Night Laughs", Date: base.AddDate(0, 0, 32), Language: "en", Category: "Stand-up"},
		{ID: primitive.NewObjectID(), Title: "Kabarett: Wiener Schmäh", Date: base.AddDate(0, 0, 7), Language: "de", Category: "Kabarett"},
		{ID: primitive.NewObjectID(), Title: "Improv: Alles kann, nix muss", Date: base.AddDate(0, 0, 18), Language: "de", Category: "Impro"},
	}}

	h := NewContentHandler(&fakeInfoRepo{}, &fakeOwnerRepo{}, events)
	w := performRequest(newContentRouter(h), http.MethodGet, "/api/events")

	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 3)

	assert.Equal(t, "Kabarett: Wiener Schmäh", body[0]["title"])
	assert.Equal(t, "Improv: Alles kann, nix muss", body[1]["title"])
	assert.Equal(t, "Stand-up: Late Night Laughs", body[2]["title"])

	for _, item := range body {
		assert.NotContains(t, item, "id")
		assert.NotContains(t, item, "_id")
		assert.NotContains(t, item, "created_at")
	}
}

func TestGetEventsRepoError(t *testing.T) {
	h := NewContentHandler(&fakeInfoRepo{}, &fakeOwnerRepo{}, &fakeEventRepo{err: errors.New("cursor timeout")})
	w := performRequest(newContentRouter(h), http.MethodGet, "/api/events")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail": "Failed to retrieve events"}`, w.Body.String())
}
