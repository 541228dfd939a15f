package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/auth"
)

type SignUpInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func SignUp(identity *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess, err := identity.SignUp(input.Name, input.Email, input.Password)
		if err != nil {
			respondAuthError(c, err)
			return
		}

		token, err := auth.IssueSessionToken(*sess)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": sess, "token": token})
	}
}

// POST /auth/signin
func SignIn(identity *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignInInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess, err := identity.SignIn(input.Email, input.Password)
		if err != nil {
			respondAuthError(c, err)
			return
		}

		token, err := auth.IssueSessionToken(*sess)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess, "token": token})
	}
}

// POST /auth/signout
func SignOut(identity *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity.SignOut()
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// GET /auth/session
func GetSession(identity *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := identity.Session()
		if sess == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess})
	}
}

// GET /admin/auth-events
func GetAuthEvents(identity *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, identity.Events())
	}
}

func respondAuthError(c *gin.Context, err error) {
	var vErr *auth.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, auth.ErrAccountExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrIncorrectPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Auth operation failed"})
	}
}
