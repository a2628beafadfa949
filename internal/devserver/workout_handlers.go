package devserver

import (
	"errors"
	"net/http"

	"vitalmotion/client/internal/domain"

	"github.com/gin-gonic/gin"
)

type workoutRequest struct {
	Exercises []string `json:"exercises"`
}

// listExercises handles GET /users/:uid/exercises.
func (s *Server) listExercises(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Exercises(c.Param("uid")))
}

// getExercise handles GET /users/:uid/exercises/:exerciseId.
func (s *Server) getExercise(c *gin.Context) {
	ex, err := s.store.Exercise(c.Param("uid"), c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Exercise not found.")
		return
	}
	c.JSON(http.StatusOK, ex)
}

// listWorkouts handles GET /users/:uid/workouts.
func (s *Server) listWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Workouts(c.Param("uid")))
}

// getWorkout handles GET /users/:uid/workouts/:workoutId.
func (s *Server) getWorkout(c *gin.Context) {
	w, err := s.store.Workout(c.Param("uid"), c.Param("workoutId"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Workout not found.")
		return
	}
	c.JSON(http.StatusOK, w)
}

// createWorkout handles POST /users/:uid/workouts.
func (s *Server) createWorkout(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	id := s.store.CreateWorkout(c.Param("uid"), req.Exercises)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// updateWorkout handles PUT /users/:uid/workouts/:workoutId.
func (s *Server) updateWorkout(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := s.store.UpdateWorkout(c.Param("uid"), c.Param("workoutId"), req.Exercises); err != nil {
		abortWithError(c, http.StatusNotFound, "Workout not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout updated"})
}

// deleteWorkout handles DELETE /users/:uid/workouts/:workoutId.
func (s *Server) deleteWorkout(c *gin.Context) {
	if err := s.store.DeleteWorkout(c.Param("uid"), c.Param("workoutId")); err != nil {
		abortWithError(c, http.StatusNotFound, "Workout not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

// completeWorkout handles POST /users/:uid/workouts/:workoutId/completed.
func (s *Server) completeWorkout(c *gin.Context) {
	var completed domain.CompletedWorkout
	if err := c.ShouldBindJSON(&completed); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	id, err := s.store.CompleteWorkout(c.Param("uid"), c.Param("workoutId"), completed)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Workout not found.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// listCompletedWorkouts handles GET /users/:uid/workouts/:workoutId/completed.
// The workout id "ALL" selects completed records across every template.
func (s *Server) listCompletedWorkouts(c *gin.Context) {
	completed, err := s.store.CompletedWorkouts(c.Param("uid"), c.Param("workoutId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to list completed workouts.")
		return
	}
	if completed == nil {
		completed = []domain.CompletedWorkout{}
	}
	c.JSON(http.StatusOK, completed)
}
