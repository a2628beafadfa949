package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server wires the in-memory store and the dev identity into a gin engine
// speaking the same wire contract as the production backend, so the client
// can be pointed at it unchanged.
type Server struct {
	store    *Store
	identity *identity
}

// New creates a dev server around an in-memory store.
func New(store *Store, jwtSecret string, tokenExpiration time.Duration) *Server {
	return &Server{
		store:    store,
		identity: newIdentity(store, jwtSecret, tokenExpiration),
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	identityGroup := router.Group("/identity")
	{
		identityGroup.POST("/signup", s.signUp)
		identityGroup.POST("/signin", s.signIn)
	}

	router.POST("/verify-token", s.verifyToken)
	router.POST("/setup-user", s.setupUser)

	users := router.Group("/users/:uid")
	{
		users.GET("/exercises", s.listExercises)
		users.GET("/exercises/:exerciseId", s.getExercise)

		users.GET("/workouts", s.listWorkouts)
		users.POST("/workouts", s.createWorkout)
		users.GET("/workouts/:workoutId", s.getWorkout)
		users.PUT("/workouts/:workoutId", s.updateWorkout)
		users.DELETE("/workouts/:workoutId", s.deleteWorkout)
		users.GET("/workouts/:workoutId/completed", s.listCompletedWorkouts)
		users.POST("/workouts/:workoutId/completed", s.completeWorkout)

		users.GET("/journals", s.listJournals)
		users.POST("/journals", s.addJournal)
		users.DELETE("/journals/:journalId", s.deleteJournal)

		users.GET("/medications", s.listMedications)
		users.POST("/medications", s.addMedication)
		users.DELETE("/medications/:medicationId", s.deleteMedication)
	}

	// The pain endpoints predate the /users/{uid}/... layout and carry the
	// uid in the body. The client depends on these exact paths.
	router.POST("/get-all-pain", s.listPain)
	router.POST("/add-pain", s.addPain)
	router.POST("/edit-pain", s.editPain)
	router.POST("/remove-pain", s.removePain)

	router.POST("/recommend/:uid/exercise", s.recommendExercise)

	return router
}

func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
