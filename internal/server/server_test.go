package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/adytum/internal/content"
	"github.com/example/adytum/internal/mentor"
	"github.com/example/adytum/internal/progress"
	"github.com/example/adytum/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	data map[string]string
}

func (m *memoryStorage) Get(key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryStorage) Set(key, value string) error {
	m.data[key] = value
	return nil
}

// mentorStub answers every question with a fixed reply or error
type mentorStub struct {
	reply mentor.Reply
	err   error
}

func (s *mentorStub) Respond(ctx context.Context, day int, history []models.MentorChatMessage, message string) (mentor.Reply, error) {
	return s.reply, s.err
}

func newTestServer(svc mentor.Service) *Server {
	gin.SetMode(gin.TestMode)
	store := progress.NewStore(&memoryStorage{data: make(map[string]string)})
	return New(store, content.NewCatalog(), svc, DefaultConfig())
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStateEndpoint(t *testing.T) {
	router := newTestServer(nil).Router()

	w := doRequest(t, router, http.MethodGet, "/api/state", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Progress  models.UserProgress `json:"progress"`
		UserName  string              `json:"userName"`
		Onboarded bool                `json:"onboarded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Progress.CurrentDay)
	assert.Equal(t, progress.DefaultUserName, resp.UserName)
	assert.False(t, resp.Onboarded)
}

func TestOnboardingStoresName(t *testing.T) {
	srv := newTestServer(nil)
	router := srv.Router()

	w := doRequest(t, router, http.MethodPost, "/api/onboarding", gin.H{"name": "Hermes"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, srv.store.Onboarded())
	assert.Equal(t, "Hermes", srv.store.UserName())
}

func TestLessonFlowCompletesDay(t *testing.T) {
	srv := newTestServer(nil)
	router := srv.Router()

	w := doRequest(t, router, http.MethodPost, "/api/lesson/start", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// intro → theory → wisdom → meditation → ritual → journal
	for i := 0; i < 5; i++ {
		w = doRequest(t, router, http.MethodPost, "/api/lesson/advance", gin.H{})
		require.Equal(t, http.StatusOK, w.Code)
	}

	// The journal gate refuses a blank reflection and the day stays open
	w = doRequest(t, router, http.MethodPost, "/api/lesson/advance", gin.H{"reflection": "   "})
	require.Equal(t, http.StatusOK, w.Code)
	var gated struct {
		Advanced bool   `json:"advanced"`
		Step     string `json:"step"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gated))
	assert.False(t, gated.Advanced)
	assert.Equal(t, "journal", gated.Step)
	assert.Equal(t, 1, srv.store.Load().CurrentDay)

	w = doRequest(t, router, http.MethodPost, "/api/lesson/advance", gin.H{"reflection": "hoy fui el observador"})
	require.Equal(t, http.StatusOK, w.Code)
	var sealed struct {
		Advanced bool   `json:"advanced"`
		Step     string `json:"step"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sealed))
	assert.True(t, sealed.Advanced)
	assert.Equal(t, "success", sealed.Step)

	record := srv.store.Load()
	assert.Equal(t, 2, record.CurrentDay)
	assert.Equal(t, []int{1}, record.CompletedDays)
	assert.Equal(t, "hoy fui el observador", record.Reflections[1])
}

func TestLessonAdvanceWithoutStart(t *testing.T) {
	router := newTestServer(nil).Router()

	w := doRequest(t, router, http.MethodPost, "/api/lesson/advance", gin.H{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMentorMessageWithoutService(t *testing.T) {
	router := newTestServer(nil).Router()

	w := doRequest(t, router, http.MethodPost, "/api/mentor/message", gin.H{"message": "¿hola?"})

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mentor_not_configured", resp.Error.Code)
}

func TestMentorMessageAppendsReply(t *testing.T) {
	srv := newTestServer(&mentorStub{reply: mentor.Reply{Text: "la respuesta del éter"}})
	router := srv.Router()

	w := doRequest(t, router, http.MethodPost, "/api/mentor/message", gin.H{"message": "¿qué es el adytum?"})

	require.Equal(t, http.StatusOK, w.Code)
	msgs := srv.conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "la respuesta del éter", msgs[2].Text)
	assert.False(t, srv.conv.Busy())
}

func TestMentorFailureBecomesModelTurn(t *testing.T) {
	srv := newTestServer(&mentorStub{err: errors.New("ether down")})
	router := srv.Router()

	w := doRequest(t, router, http.MethodPost, "/api/mentor/message", gin.H{"message": "¿me escuchas?"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		ErrorCode string `json:"errorCode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mentor_unavailable", resp.ErrorCode)

	// The question keeps its paired model turn even on failure
	msgs := srv.conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.RoleModel, msgs[2].Role)
	assert.False(t, srv.conv.Busy())
	// El registro de progreso no se toca
	assert.Empty(t, srv.store.Load().MentorChats)
}

func TestMentorSaveGuard(t *testing.T) {
	srv := newTestServer(&mentorStub{reply: mentor.Reply{Text: "respuesta"}})
	router := srv.Router()

	w := doRequest(t, router, http.MethodPost, "/api/mentor/save", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	doRequest(t, router, http.MethodPost, "/api/mentor/message", gin.H{"message": "una duda"})
	w = doRequest(t, router, http.MethodPost, "/api/mentor/save", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, srv.store.Load().MentorChats, 1)
}

func TestToggleReadSection(t *testing.T) {
	srv := newTestServer(nil)
	router := srv.Router()

	w := doRequest(t, router, http.MethodPost, "/api/library/read/1.1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"1.1"}, srv.store.ReadSections())
}
