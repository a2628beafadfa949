package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
}

type verifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type setupUserRequest struct {
	UID       string `json:"uid" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// signUp handles POST /identity/signup.
func (s *Server) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	uid, token, err := s.identity.SignUp(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to register user.")
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{Token: token, UID: uid})
}

// signIn handles POST /identity/signin.
func (s *Server) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	uid, token, err := s.identity.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Login failed.")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token, UID: uid})
}

// verifyToken handles POST /verify-token, exchanging an identity token for
// the uid it was issued to.
func (s *Server) verifyToken(c *gin.Context) {
	var req verifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	uid, err := s.identity.Verify(req.Token)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"uid": uid})
}

// setupUser handles POST /setup-user, copying the premade catalogs into a
// freshly registered account.
func (s *Server) setupUser(c *gin.Context) {
	var req setupUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if _, err := s.store.UserByUID(req.UID); err != nil {
		abortWithError(c, http.StatusNotFound, "Unknown user.")
		return
	}

	s.store.SetupUser(req.UID)
	c.JSON(http.StatusOK, gin.H{"message": "user setup complete"})
}
