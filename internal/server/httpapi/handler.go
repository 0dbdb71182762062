package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/pixgate/internal/common"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// loginRequest has no minimum-length rule: length is a registration
// constraint, and rejecting short login passwords early would leak that no
// such password can exist.
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *HTTPServer) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API is up and running"})
}

func (s *HTTPServer) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid input"})
		return
	}

	ctx := c.Request.Context()

	user, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		s.logger.Error(ctx, "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.logger.Info(ctx, "user registered", "id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully, please log in"})
}

func (s *HTTPServer) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid input"})
		return
	}

	ctx := c.Request.Context()

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// Same body for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *HTTPServer) handlePix(c *gin.Context) {
	// The authenticated user gates access only; the payload is static.
	c.JSON(http.StatusOK, s.payment.Get())
}
