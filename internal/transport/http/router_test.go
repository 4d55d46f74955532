package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracehill/ministry/internal/domain"
	"github.com/gracehill/ministry/internal/repository/memory"
	"github.com/gracehill/ministry/internal/service"
	transporthttp "github.com/gracehill/ministry/internal/transport/http"
	"github.com/gracehill/ministry/internal/transport/http/handlers"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	prayerService := service.NewPrayerRequestService(memory.NewPrayerRequestRepo())
	contactService := service.NewContactMessageService(memory.NewContactMessageRepo())

	return transporthttp.NewRouter(
		handlers.NewPrayerRequestHandler(prayerService),
		handlers.NewContactMessageHandler(contactService),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestSubmitPrayerRequest_ServerOwnsStatusAndTimestamp(t *testing.T) {
	router := newTestRouter(t)

	// id, status and createdAt in the payload must be ignored, and unknown
	// fields silently dropped.
	body := `{
		"id": 99,
		"name": "Sarah",
		"content": "pray for my family",
		"isPublic": true,
		"status": "approved",
		"createdAt": "2000-01-01T00:00:00Z",
		"favoriteColor": "blue"
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/prayer-requests", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.PrayerRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "pray for my family", created.Content)
	assert.True(t, created.IsPublic)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NotEqual(t, 2000, created.CreatedAt.Year())
}

func TestSubmitPrayerRequest_MissingContent(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/prayer-requests", `{"name": "Sarah"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "content")
}

func TestSubmitPrayerRequest_MalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/prayer-requests", `{"content": 17}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPrayerRequests_EmptyStoreIsEmptyArray(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/prayer-requests", "/api/prayer-requests/public", "/api/contact"} {
		rec := doJSON(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}
}

func TestModerationRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/prayer-requests",
		`{"name": "Sarah", "content": "pray for my family", "isPublic": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.PrayerRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Not approved yet, so the public wall must not show it.
	rec = doJSON(t, router, http.MethodGet, "/api/prayer-requests/public", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doJSON(t, router, http.MethodPatch, "/api/prayer-requests/1/status", `{"status": "approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.PrayerRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.Equal(t, created.ID, updated.ID)

	rec = doJSON(t, router, http.MethodGet, "/api/prayer-requests/public", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []domain.PrayerRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	require.NotNil(t, listed[0].Name)
	assert.Equal(t, "Sarah", *listed[0].Name)
	assert.Equal(t, "pray for my family", listed[0].Content)
	assert.Equal(t, domain.StatusApproved, listed[0].Status)
}

func TestUpdateStatus_Errors(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/prayer-requests/1/status", `{"status": "archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/prayer-requests/1/status", `{"status": "Approved"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/prayer-requests/42/status", `{"status": "approved"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/prayer-requests/abc/status", `{"status": "approved"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactMessages(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/contact",
		`{"name": "Ana", "email": "ana@example.com", "message": "service times?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.ContactMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	rec = doJSON(t, router, http.MethodGet, "/api/contact", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []domain.ContactMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "service times?", listed[0].Message)
}

func TestContactMessage_EmptyMessageStoresNothing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/contact",
		`{"name": "Ana", "email": "ana@example.com", "message": ""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/contact", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
