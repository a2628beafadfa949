package devserver

import (
	"net/http"
	"time"

	"vitalmotion/client/internal/domain"

	"github.com/gin-gonic/gin"
)

// listJournals handles GET /users/:uid/journals.
func (s *Server) listJournals(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Journals(c.Param("uid")))
}

// addJournal handles POST /users/:uid/journals.
func (s *Server) addJournal(c *gin.Context) {
	var entry domain.Journal
	if err := c.ShouldBindJSON(&entry); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, s.store.AddJournal(c.Param("uid"), entry))
}

// deleteJournal handles DELETE /users/:uid/journals/:journalId.
func (s *Server) deleteJournal(c *gin.Context) {
	if err := s.store.DeleteJournal(c.Param("uid"), c.Param("journalId")); err != nil {
		abortWithError(c, http.StatusNotFound, "Journal entry not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "journal entry deleted"})
}

// listMedications handles GET /users/:uid/medications.
func (s *Server) listMedications(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Medications(c.Param("uid")))
}

// addMedication handles POST /users/:uid/medications.
func (s *Server) addMedication(c *gin.Context) {
	var med domain.Medication
	if err := c.ShouldBindJSON(&med); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, s.store.AddMedication(c.Param("uid"), med))
}

// deleteMedication handles DELETE /users/:uid/medications/:medicationId.
func (s *Server) deleteMedication(c *gin.Context) {
	if err := s.store.DeleteMedication(c.Param("uid"), c.Param("medicationId")); err != nil {
		abortWithError(c, http.StatusNotFound, "Medication not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medication deleted"})
}

// recommendExercise handles POST /recommend/:uid/exercise. The body is the
// draft workout's rows; the response suggests a muscle group and intensity.
func (s *Server) recommendExercise(c *gin.Context) {
	var draft []domain.ExerciseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	uid := c.Param("uid")
	muscleOf := make(map[string]string)
	for _, ex := range s.store.Exercises(uid) {
		muscleOf[ex.ID] = ex.Muscle
	}

	rec := recommendNext(draft, muscleOf, s.store.PainNotes(uid), time.Now())
	c.JSON(http.StatusOK, rec)
}
