package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin/ping", AdminAuth(NewStaticSecretAuthorizer(secret)), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{
			name:       "valid bearer",
			secret:     "s3cret",
			header:     "Bearer s3cret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			secret:     "s3cret",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			secret:     "s3cret",
			header:     "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing bearer prefix",
			secret:     "s3cret",
			header:     "s3cret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unset secret rejects everything",
			secret:     "",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := adminTestRouter(tt.secret)

			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
