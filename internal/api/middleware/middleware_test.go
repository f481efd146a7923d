package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/pkg/response"
	"github.com/linskybing/form-platform/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(auth gin.HandlerFunc, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{auth}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		rc, err := utils.GetRequestContext(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": rc.UserID, "role": rc.Role})
	})
	r.GET("/me", handlers...)
	return r
}

func issue(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	roleID := uint(2)
	tok, err := GenerateToken(7, "mike", role, &roleID, ttl)
	require.NoError(t, err)
	return tok
}

func TestMain(m *testing.M) {
	config.JwtSecret = "test-secret"
	Init()
	m.Run()
}

func TestJWTAuth_Header(t *testing.T) {
	r := newEngine(JWTAuthMiddleware())
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, "manager", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["user_id"])
	assert.Equal(t, "manager", body["role"])
}

func TestJWTAuth_Cookie(t *testing.T) {
	r := newEngine(JWTAuthMiddleware())
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: issue(t, "student", time.Hour)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		ws     bool
		want   int
	}{
		{name: "missing", want: http.StatusUnauthorized},
		{name: "bad scheme", header: "Token abc", want: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-jwt", want: http.StatusUnauthorized},
		{name: "query ignored for api", query: "x", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(JWTAuthMiddleware())
			url := "/me"
			if tt.query != "" {
				url += "?token=" + issue(t, "admin", time.Hour)
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)

			var env response.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestJWTAuth_Expired(t *testing.T) {
	r := newEngine(JWTAuthMiddleware())
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, "admin", -time.Minute))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebSocketAuth_Query(t *testing.T) {
	r := newEngine(WebSocketAuthMiddleware())
	req := httptest.NewRequest(http.MethodGet, "/me?token="+issue(t, "student", time.Hour), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles(t *testing.T) {
	r := newEngine(JWTAuthMiddleware(), RequireRoles("admin", "root"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, "student", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, "root", time.Hour))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAllowOrigin(t *testing.T) {
	allowed := []string{"http://localhost:", "https://forms.example.edu"}
	assert.True(t, AllowOrigin("http://localhost:5173", allowed))
	assert.True(t, AllowOrigin("https://forms.example.edu", allowed))
	assert.False(t, AllowOrigin("https://evil.example.com", allowed))
	assert.True(t, AllowOrigin("anything", []string{"*"}))
}
