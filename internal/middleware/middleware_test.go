package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, handlers ...gin.HandlerFunc) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/", handlers...)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"custom not found", fmt.Errorf("error getting student: %w", apperrors.ErrStudentNotFound), http.StatusNotFound, "Student not found"},
		{"conflict", apperrors.ErrNICExists, http.StatusConflict, "A student with this NIC is already registered"},
		{"validation", apperrors.NewValidationError("nic is required"), http.StatusBadRequest, "nic is required"},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, "Session expired"},
		{"missing token", apperrors.ErrTokenNotFound, http.StatusUnauthorized, "Authentication required"},
		{"forbidden", apperrors.NewForbiddenError("Admins only"), http.StatusForbidden, "Admins only"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := serve(t, func(c *gin.Context) { HandleAPIError(c, tt.err) })
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
			require.Len(t, resp.Errors, 1)
		})
	}
}

func TestRecovery(t *testing.T) {
	w, resp := serve(t, func(c *gin.Context) { panic("boom") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Message)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesHeader(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestTokenFromRequest(t *testing.T) {
	newCtx := func(setup func(r *http.Request)) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		setup(c.Request)
		return c
	}

	c := newCtx(func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "auth-token", Value: "from-cookie"})
		r.Header.Set("Authorization", "Bearer from-header")
	})
	token, err := TokenFromRequest(c, "auth-token")
	require.NoError(t, err)
	assert.Equal(t, "from-header", token)

	c = newCtx(func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "auth-token", Value: "from-cookie"})
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})
	token, err = TokenFromRequest(c, "auth-token")
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)

	c = newCtx(func(r *http.Request) { r.Header.Set("Authorization", "Bearer from-header") })
	token, err = TokenFromRequest(c, "auth-token")
	require.NoError(t, err)
	assert.Equal(t, "from-header", token)

	c = newCtx(func(r *http.Request) {})
	_, err = TokenFromRequest(c, "auth-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestRoleRequired(t *testing.T) {
	m := NewAuthMiddleware(nil, "auth-token")
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, dto.NewMessageResponse("ok")) }
	setRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set(RoleKey, role) }
	}

	w, _ := serve(t, setRole("admin"), m.RoleRequired("admin"), ok)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp := serve(t, setRole("staff"), m.RoleRequired("admin"), ok)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You don't have sufficient permissions for this operation", resp.Message)

	w, _ = serve(t, m.RoleRequired("admin"), ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type bindTarget struct {
	Name string `json:"name" binding:"required"`
	Age  int    `json:"age" binding:"gte=0"`
}

func TestBindJSON(t *testing.T) {
	bind := func(body string) (*httptest.ResponseRecorder, bool) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var target bindTarget
		return w, BindJSON(c, &target)
	}

	_, ok := bind(`{"name":"x","age":3}`)
	assert.True(t, ok)

	for _, body := range []string{`{"age":3}`, `{"name":"x","extra":true}`, `{"name":"x","age":"old"}`, `{`} {
		w, ok := bind(body)
		assert.False(t, ok, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}
