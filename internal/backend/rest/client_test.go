package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"vitalmotion/client/internal/backend"
	"vitalmotion/client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutsPathsAndDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/u1/workouts":
			assert.Equal(t, http.MethodGet, r.Method)
			json.NewEncoder(w).Encode([]domain.WorkoutRecord{
				{ID: "w1", Exercises: []string{"3|10|100|e1"}},
			})
		case "/users/u1/workouts/w1":
			json.NewEncoder(w).Encode(domain.WorkoutRecord{ID: "w1", Exercises: []string{"3|10|100|e1"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(server.URL, "", nil)
	ctx := context.Background()

	records, err := c.Workouts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "w1", records[0].ID)

	rec, err := c.Workout(ctx, "u1", "w1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3|10|100|e1"}, rec.Exercises)
}

func TestCreateAndCompleteWorkout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/u1/workouts":
			var payload struct {
				Exercises []string `json:"exercises"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, []string{"3|10|100|e1"}, payload.Exercises)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "w-new"})
		case "/users/u1/workouts/w-new/completed":
			assert.Equal(t, http.MethodPost, r.Method)
			var completed domain.CompletedWorkout
			require.NoError(t, json.NewDecoder(r.Body).Decode(&completed))
			// The template id travels in the path, not the body.
			assert.Empty(t, completed.TemplateID)
			assert.Equal(t, "2024-01-05", completed.DateCompleted)
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL, "", nil)
	ctx := context.Background()

	id, err := c.CreateWorkout(ctx, "u1", []string{"3|10|100|e1"})
	require.NoError(t, err)
	assert.Equal(t, "w-new", id)

	err = c.CompleteWorkout(ctx, "u1", domain.CompletedWorkout{
		TemplateID:    "w-new",
		Exercises:     []string{"3|10|100|e1"},
		Difficulty:    5,
		DateCompleted: "2024-01-05",
	})
	require.NoError(t, err)
}

func TestErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/u1/workouts/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/verify-token":
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid or expired token."})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		}
	}))
	defer server.Close()

	c := New(server.URL, "", nil)
	ctx := context.Background()

	_, err := c.Workout(ctx, "u1", "missing")
	assert.ErrorIs(t, err, backend.ErrNotFound)

	_, err = c.VerifyToken(ctx, "bad-token")
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid or expired token.")

	_, err = c.Workouts(ctx, "u1")
	assert.ErrorIs(t, err, backend.ErrTransport)
	assert.Contains(t, err.Error(), "boom")
}

func TestNetworkFailureIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	c := New(server.URL, "", nil)
	_, err := c.Workouts(context.Background(), "u1")
	assert.ErrorIs(t, err, backend.ErrTransport)
}

func TestExerciseNameCache(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/u1/exercises/e1", r.URL.Path)
		hits.Add(1)
		json.NewEncoder(w).Encode(domain.Exercise{ID: "e1", Name: "Squat"})
	}))
	defer server.Close()

	c := New(server.URL, "", nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ex, err := c.Exercise(ctx, "u1", "e1")
		require.NoError(t, err)
		assert.Equal(t, "Squat", ex.Name)
	}
	// Only the first lookup goes over the wire.
	assert.EqualValues(t, 1, hits.Load())
}

func TestExerciseCacheIsPerUser(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(domain.Exercise{ID: "e1", Name: "Squat"})
	}))
	defer server.Close()

	c := New(server.URL, "", nil)
	ctx := context.Background()

	_, err := c.Exercise(ctx, "u1", "e1")
	require.NoError(t, err)
	_, err = c.Exercise(ctx, "u2", "e1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load())
}

func TestIdentityHostSplit(t *testing.T) {
	identity := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/identity/signin", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"token": "tok", "uid": "u1"})
	}))
	defer identity.Close()
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/verify-token", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"uid": "u1"})
	}))
	defer backendSrv.Close()

	c := New(backendSrv.URL, identity.URL, nil)
	ctx := context.Background()

	token, err := c.SignIn(ctx, "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	uid, err := c.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
}

func TestPainEndpointsCarryUIDInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["uid"])

		switch r.URL.Path {
		case "/get-all-pain":
			json.NewEncoder(w).Encode(map[string][]domain.PainNote{
				"pain": {{HashID: "h1", Date: "2024-01-01", PainLevel: 4, BodyPart: "Back"}},
			})
		case "/add-pain", "/edit-pain", "/remove-pain":
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL, "", nil)
	ctx := context.Background()

	notes, err := c.PainNotes(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "h1", notes[0].HashID)

	require.NoError(t, c.AddPainNote(ctx, "u1", domain.PainNote{Date: "2024-01-01", PainLevel: 4, BodyPart: "Back"}))
	require.NoError(t, c.EditPainNote(ctx, "u1", "h1", 6, "Back"))
	require.NoError(t, c.RemovePainNote(ctx, "u1", "h1"))
}
