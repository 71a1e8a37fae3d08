package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, accessExp time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "unitycircles.test",
	})

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return router, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, userID int64, username string) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: userID, Username: username})
	require.NoError(t, err)
	return accessToken
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)
	token := issueToken(t, jwtService, 42, "ayesha")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"userID":42`)
}

func TestJWTAuthRawTokenWithoutBearerPrefix(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)
	token := issueToken(t, jwtService, 7, "bora")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestJWTAuthQueryParamFallback(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)
	token := issueToken(t, jwtService, 7, "bora")

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, -time.Minute)
	token := issueToken(t, jwtService, 7, "bora")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "expired")
}
