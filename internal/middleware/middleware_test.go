package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "segredo"}

	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	valid := signed(t, "segredo", jwt.MapClaims{"sub": 7, "role": "barber", "exp": time.Now().Add(time.Hour).Unix()})
	expired := signed(t, "segredo", jwt.MapClaims{"sub": 7, "exp": time.Now().Add(-time.Hour).Unix()})
	otherKey := signed(t, "outro", jwt.MapClaims{"sub": 7, "exp": time.Now().Add(time.Hour).Unix()})
	noSub := signed(t, "segredo", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"Valid", "Bearer " + valid, http.StatusOK},
		{"LowercaseScheme", "bearer " + valid, http.StatusOK},
		{"Missing", "", http.StatusUnauthorized},
		{"NoScheme", valid, http.StatusUnauthorized},
		{"Expired", "Bearer " + expired, http.StatusUnauthorized},
		{"WrongKey", "Bearer " + otherKey, http.StatusUnauthorized},
		{"NoSubject", "Bearer " + noSub, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"id":7}`, w.Body.String())
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://barbearia.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://barbearia.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://barbearia.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://outro.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

type fakeLimiter struct {
	allow bool
	err   error
}

func (f fakeLimiter) Allow(context.Context, string, string) (bool, error) {
	return f.allow, f.err
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		limiter Limiter
		status  int
	}{
		{"Allowed", fakeLimiter{allow: true}, http.StatusOK},
		{"Blocked", fakeLimiter{allow: false}, http.StatusTooManyRequests},
		{"RedisDownFailsOpen", fakeLimiter{err: errors.New("dial tcp: refused")}, http.StatusOK},
		{"Disabled", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/x", RateLimit(tt.limiter, "booking", zerolog.Nop()), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"path":"/boom"`)
	assert.Contains(t, out, `"status":500`)
}
