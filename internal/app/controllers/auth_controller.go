package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/middleware"
)

// CookieSettings controls the session cookie
type CookieSettings struct {
	Name   string
	Secure bool
}

// AuthController handles staff sessions
type AuthController struct {
	authService services.AuthService
	cookie      CookieSettings
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookie CookieSettings, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// Login authenticates a staff member
// @Summary Staff login
// @Description Checks the credentials, sets the httpOnly session cookie and returns the token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, result.Token, int(c.authService.TokenTTL().Seconds()))
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    dto.NewAuthUser(result.Staff),
		Token:   result.Token,
	})
}

// Verify reports the staff member behind the current session
// @Summary Verify session
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.VerifyResponse
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	token, err := middleware.TokenFromRequest(ctx, c.cookie.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	staff, err := c.authService.Verify(ctx.Request.Context(), token)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Session verification failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyResponse{
		Success: true,
		User:    dto.NewAuthUser(staff),
	})
}

// Logout clears the session cookie
// @Summary Staff logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out successfully"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully"))
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, value, maxAge, "/", "", c.cookie.Secure, true)
}
