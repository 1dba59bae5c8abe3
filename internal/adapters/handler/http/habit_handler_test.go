package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/coherence-app/coherence-engine/internal/adapters/handler/http"
	"github.com/coherence-app/coherence-engine/internal/adapters/handler/http/middleware"
	"github.com/coherence-app/coherence-engine/internal/adapters/repository"
	"github.com/coherence-app/coherence-engine/internal/core/domain"
	"github.com/coherence-app/coherence-engine/internal/core/services"
)

// fakeAuth injects the user ID the way the auth middleware would, so
// handler tests do not need to mint tokens.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func setupHabitRouter(userID string) (*gin.Engine, *repository.InMemoryHabitRepository, *repository.InMemoryHabitLogRepository) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewInMemoryHabitRepository()
	logRepo := repository.NewInMemoryHabitLogRepository()
	svc := services.NewHabitService(repo, logRepo)
	handler := adapterHTTP.NewHabitHandler(svc)

	r := gin.New()
	group := r.Group("/api/v1")
	group.Use(fakeAuth(userID))
	handler.RegisterRoutes(group)
	return r, repo, logRepo
}

func TestCreateHabit(t *testing.T) {
	t.Run("Success: 201 Created", func(t *testing.T) {
		router, _, _ := setupHabitRouter("user-1")

		body := `{"name": "Gym", "color": "#FF8800", "frequency": "daily"}`

		req, _ := http.NewRequest("POST", "/api/v1/habits", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Gym"`)
		assert.Contains(t, w.Body.String(), `"id":`)
	})

	t.Run("Fail: 400 Bad Request (Missing Name)", func(t *testing.T) {
		router, _, _ := setupHabitRouter("user-1")

		body := `{"name": ""}`

		req, _ := http.NewRequest("POST", "/api/v1/habits", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Invalid Color)", func(t *testing.T) {
		router, _, _ := setupHabitRouter("user-1")

		body := `{"name": "Gym", "color": "orange"}`

		req, _ := http.NewRequest("POST", "/api/v1/habits", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "color")
	})
}

func TestListHabits(t *testing.T) {
	t.Run("Success: 200 OK with Status Decoration", func(t *testing.T) {
		router, repo, logRepo := setupHabitRouter("user-1")

		habit, err := domain.NewHabit("user-1", "Run", "", "", "", "", 0, 0)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), habit))

		today := domain.Day(time.Now().UTC())
		require.NoError(t, logRepo.Upsert(context.Background(), domain.NewHabitLog(habit.ID, "user-1", today, true)))
		require.NoError(t, logRepo.Upsert(context.Background(), domain.NewHabitLog(habit.ID, "user-1", today.AddDate(0, 0, -1), true)))

		req, _ := http.NewRequest("GET", "/api/v1/habits", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var list []services.HabitStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.True(t, list[0].CompletedToday)
		assert.Equal(t, 2, list[0].Streak)
	})

	t.Run("Edge Case: Other User's Habits Hidden", func(t *testing.T) {
		router, repo, _ := setupHabitRouter("user-1")

		other, err := domain.NewHabit("user-2", "Read", "", "", "", "", 0, 0)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), other))

		req, _ := http.NewRequest("GET", "/api/v1/habits", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "Read")
	})
}

func TestToggleHabit(t *testing.T) {
	t.Run("Success: Toggle On Then Off", func(t *testing.T) {
		router, repo, _ := setupHabitRouter("user-1")

		habit, err := domain.NewHabit("user-1", "Meditate", "", "", "", "", 0, 0)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), habit))

		req, _ := http.NewRequest("POST", "/api/v1/habits/"+habit.ID+"/toggle", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var first struct {
			Log struct {
				Completed bool `json:"completed"`
			} `json:"log"`
			Streak int `json:"streak"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
		assert.True(t, first.Log.Completed)
		assert.Equal(t, 1, first.Streak)

		req2, _ := http.NewRequest("POST", "/api/v1/habits/"+habit.ID+"/toggle", nil)
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, req2)

		assert.Equal(t, http.StatusOK, w2.Code)

		var second struct {
			Log struct {
				Completed bool `json:"completed"`
			} `json:"log"`
			Streak int `json:"streak"`
		}
		require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &second))
		assert.False(t, second.Log.Completed)
		assert.Equal(t, 0, second.Streak)
	})

	t.Run("Fail: 404 Unknown Habit", func(t *testing.T) {
		router, _, _ := setupHabitRouter("user-1")

		req, _ := http.NewRequest("POST", "/api/v1/habits/nope/toggle", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fail: 404 Toggling Someone Else's Habit", func(t *testing.T) {
		router, repo, _ := setupHabitRouter("user-1")

		other, err := domain.NewHabit("user-2", "Sleep", "", "", "", "", 0, 0)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), other))

		req, _ := http.NewRequest("POST", "/api/v1/habits/"+other.ID+"/toggle", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fail: 400 Bad Date Parameter", func(t *testing.T) {
		router, repo, _ := setupHabitRouter("user-1")

		habit, err := domain.NewHabit("user-1", "Walk", "", "", "", "", 0, 0)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), habit))

		req, _ := http.NewRequest("POST", "/api/v1/habits/"+habit.ID+"/toggle?date=yesterday", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteHabit(t *testing.T) {
	t.Run("Success: 204 No Content", func(t *testing.T) {
		router, repo, _ := setupHabitRouter("user-1")

		habit, err := domain.NewHabit("user-1", "Stretch", "", "", "", "", 0, 0)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), habit))

		req, _ := http.NewRequest("DELETE", "/api/v1/habits/"+habit.ID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)

		_, err = repo.GetByID(context.Background(), habit.ID)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Fail: 404 Not Found", func(t *testing.T) {
		router, _, _ := setupHabitRouter("user-1")

		req, _ := http.NewRequest("DELETE", "/api/v1/habits/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
