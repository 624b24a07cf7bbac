package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/shared/response"
	"library-api/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ========================================
// AUTH
// ========================================

func newAuthRouter(v TokenValidator) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(v), func(c *gin.Context) {
		id, ok := GetAuthorID(c)
		c.JSON(http.StatusOK, gin.H{"author_id": id, "ok": ok})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	m := jwt.NewManager("test-secret", time.Hour)
	r := newAuthRouter(m)

	token, _, err := m.GenerateAccessToken(42, "Ursula")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"author_id":42,"ok":true}`, w.Body.String())
	})

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic " + token,
		"no token":       "Bearer ",
		"garbage token":  "Bearer not-a-jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			headers := map[string]string{}
			if header != "" {
				headers["Authorization"] = header
			}
			w := perform(r, http.MethodGet, "/me", headers)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body response.MessageBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Message)
		})
	}

	t.Run("token signed with another secret", func(t *testing.T) {
		other, _, err := jwt.NewManager("other-secret", time.Hour).GenerateAccessToken(42, "Ursula")
		require.NoError(t, err)

		w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + other})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
	})
}

type validatorFunc func(token string) (*jwt.Claims, error)

func (f validatorFunc) ValidateAccessToken(token string) (*jwt.Claims, error) { return f(token) }

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newAuthRouter(validatorFunc(func(string) (*jwt.Claims, error) {
		return nil, jwt.ErrExpiredToken
	}))

	w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer stale"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token has expired"}`, w.Body.String())
}

func TestGetAuthorID_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetAuthorID(c)
	assert.False(t, ok)
}

// ========================================
// REQUEST ID
// ========================================

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextKeyRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/", nil)
		id := w.Header().Get(HeaderRequestID)

		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/", map[string]string{HeaderRequestID: "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})
}

// ========================================
// ERROR HANDLER + RECOVERY
// ========================================

func newErrorRouter(exposeStack bool) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(exposeStack), ErrorHandler(exposeStack))
	r.GET("/fail", func(c *gin.Context) {
		AbortWithError(c, errors.New("db exploded"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestErrorHandler_Development(t *testing.T) {
	w := perform(newErrorRouter(true), http.MethodGet, "/fail", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "db exploded", body.Message)
	assert.Contains(t, body.Stack, "goroutine")
}

func TestErrorHandler_Production(t *testing.T) {
	w := perform(newErrorRouter(false), http.MethodGet, "/fail", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
}

func TestErrorHandler_PassesThroughSuccess(t *testing.T) {
	w := perform(newErrorRouter(true), http.MethodGet, "/ok", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	t.Run("development exposes panic", func(t *testing.T) {
		w := perform(newErrorRouter(true), http.MethodGet, "/panic", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body response.ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "kaboom", body.Message)
		assert.NotEmpty(t, body.Stack)
	})

	t.Run("production hides panic", func(t *testing.T) {
		w := perform(newErrorRouter(false), http.MethodGet, "/panic", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
	})
}

// ========================================
// CORS
// ========================================

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(CORSConfig{
		AllowOrigins: []string{"https://library.example"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization"},
		MaxAge:       60,
	}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight allowed", func(t *testing.T) {
		w := perform(r, http.MethodOptions, "/", map[string]string{"Origin": "https://library.example"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://library.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "60", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("preflight from unknown origin", func(t *testing.T) {
		w := perform(r, http.MethodOptions, "/", map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("simple request", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/", map[string]string{"Origin": "https://library.example"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("wildcard", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(DefaultCORSConfig()))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := perform(r, http.MethodGet, "/", map[string]string{"Origin": "https://anywhere.example"})
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

// ========================================
// LOGGER
// ========================================

func TestLogger_DoesNotAlterResponse(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/teapot", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := perform(r, http.MethodGet, "/teapot?x=1", nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
}
