package devserver

import (
	"net/http"

	"vitalmotion/client/internal/domain"

	"github.com/gin-gonic/gin"
)

type painListRequest struct {
	UID string `json:"uid" binding:"required"`
}

type addPainRequest struct {
	UID       string `json:"uid" binding:"required"`
	Date      string `json:"date" binding:"required"`
	PainLevel int    `json:"pain_level" binding:"required,min=1,max=10"`
	BodyPart  string `json:"body_part" binding:"required"`
}

type editPainRequest struct {
	UID       string `json:"uid" binding:"required"`
	HashID    string `json:"hash_id" binding:"required"`
	PainLevel int    `json:"pain_level" binding:"required,min=1,max=10"`
	BodyPart  string `json:"body_part" binding:"required"`
}

type removePainRequest struct {
	UID    string `json:"uid" binding:"required"`
	HashID string `json:"hash_id" binding:"required"`
}

// listPain handles POST /get-all-pain.
func (s *Server) listPain(c *gin.Context) {
	var req painListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"pain": s.store.PainNotes(req.UID)})
}

// addPain handles POST /add-pain. The server assigns the hash id.
func (s *Server) addPain(c *gin.Context) {
	var req addPainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	note := s.store.AddPainNote(req.UID, domain.PainNote{
		Date:      req.Date,
		PainLevel: req.PainLevel,
		BodyPart:  req.BodyPart,
	})
	c.JSON(http.StatusCreated, note)
}

// editPain handles POST /edit-pain.
func (s *Server) editPain(c *gin.Context) {
	var req editPainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := s.store.EditPainNote(req.UID, req.HashID, req.PainLevel, req.BodyPart); err != nil {
		abortWithError(c, http.StatusNotFound, "Pain note not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pain note updated"})
}

// removePain handles POST /remove-pain.
func (s *Server) removePain(c *gin.Context) {
	var req removePainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := s.store.RemovePainNote(req.UID, req.HashID); err != nil {
		abortWithError(c, http.StatusNotFound, "Pain note not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pain note removed"})
}
