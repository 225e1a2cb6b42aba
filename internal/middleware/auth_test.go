package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func setupAuthRouter() http.Handler {
	r := ginext.New("test")
	r.Use(RequestID(), Auth(testSecret))
	r.GET("/me", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"user_id": c.GetString(UserIDKey)})
	})
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupAuthRouter()
	token := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	w := doGet(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestAuth_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"missing", func(*testing.T) string { return "" }},
		{"garbage", func(*testing.T) string { return "not.a.jwt" }},
		{"wrong secret", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{
				Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			})
		}},
		{"expired", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
				Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			})
		}},
		{"no expiry", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{Subject: "u1"})
		}},
		{"no subject", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			})
		}},
		{"wrong algorithm", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS512, testSecret, jwt.RegisteredClaims{
				Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			})
		}},
	}

	r := setupAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.token(t))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/ping", func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}
