package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-cms/internal/api/rest"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func TestLanguage(t *testing.T) {
	r := gin.New()
	r.Use(Language())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, rest.Lang(c)) })

	tests := []struct {
		header string
		want   string
	}{
		{"", "zh-tw"},
		{"en", "en"},
		{"en-US,en;q=0.9", "en"},
		{"zh-TW", "zh-tw"},
		{"fr", "zh-tw"},
		{"EN", "zh-tw"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Body.String())
			assert.Equal(t, tt.want, w.Header().Get("Content-Language"))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(Language(), RequestLogger(logger))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept-Language", "en")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http.request", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "/boom", entry["path"])
	assert.Equal(t, float64(500), entry["status"])
	assert.Equal(t, "en", entry["lang"])
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"
	r := gin.New()
	r.GET("/admin", AuthMiddleware(secret), RequireRole("admin"), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("username"))
	})

	valid := signed(t, secret, jwt.MapClaims{"sub": "curator", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()})
	expired := signed(t, secret, jwt.MapClaims{"sub": "curator", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()})
	visitor := signed(t, secret, jwt.MapClaims{"sub": "guest", "role": "visitor", "exp": time.Now().Add(time.Hour).Unix()})
	foreign := signed(t, "other-secret", jwt.MapClaims{"sub": "curator", "role": "admin"})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Token " + valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"wrong role", "Bearer " + visitor, http.StatusForbidden},
		{"admin", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "curator", w.Body.String())
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInput())
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, body)
	})

	payload := `{"name":"<b>Tom</b> & Jerry's","message":"<script>alert(1)</script>hi","escaped":"&lt;img src=x&gt;ok","count":3}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Tom & Jerry's", got["name"])
	assert.Equal(t, "hi", got["message"])
	assert.Equal(t, "ok", got["escaped"])
	assert.Equal(t, float64(3), got["count"])
}

func TestSanitizeInput_RejectsMalformedJSON(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInput())
	r.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCleanText(t *testing.T) {
	p := bluemonday.StrictPolicy()
	assert.Equal(t, "plain", cleanText(p, "plain"))
	assert.Equal(t, "a < b", cleanText(p, "a < b"))
}
