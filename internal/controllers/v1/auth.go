package v1

import (
	"net/http"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// contextUser is the gin context key under which the authenticated user is
// stored by the Authenticate middleware.
const contextUser = "fintrack-user"

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsAuth)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsAuth)
	r.POST("/login", Login)
}

// Authenticate resolves the bearer token of the request to a user and
// aborts with 401 when there is none.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: models.ErrNoValidSession.Error(),
			})
			return
		}

		user, err := models.UserForToken(token)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.Set(contextUser, user)
	}
}

// currentUser returns the authenticated user stored by Authenticate.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register user
// @Description	Registers a new user account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	RegisterResponse
// @Failure		400		{object}	RegisterResponse
// @Failure		409		{object}	RegisterResponse
// @Failure		500		{object}	RegisterResponse
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RegisterResponse{Error: &s})
		return
	}

	user, err := models.RegisterUser(request.Username, request.Password, request.FullName, request.PhoneNumber)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RegisterResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Data: &RegisterData{
			Message: "User registered successfully",
			UserID:  user.ID,
		},
	})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	user, err := models.AuthenticateUser(request.Username, request.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	session, err := models.CreateSession(user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Data: &LoginData{
			Message: "Login successful",
			Token:   session.Token,
		},
	})
}
