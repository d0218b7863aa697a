package http_utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(headers map[string]string, remoteAddr string) *gin.Context {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = req

	return ctx
}

func Test_ExtractClientIP_WithForwardedChain_ReturnsFirstHop(t *testing.T) {
	ctx := newContext(map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:1234")

	assert.Equal(t, "203.0.113.7", ExtractClientIP(ctx))
}

func Test_ExtractClientIP_WithRealIPOnly_ReturnsRealIP(t *testing.T) {
	ctx := newContext(map[string]string{"X-Real-IP": " 198.51.100.4 "}, "10.0.0.2:1234")

	assert.Equal(t, "198.51.100.4", ExtractClientIP(ctx))
}

func Test_ExtractClientIP_WithoutHeaders_FallsBackToRemoteAddr(t *testing.T) {
	ctx := newContext(nil, "192.0.2.10:5555")

	assert.Equal(t, "192.0.2.10", ExtractClientIP(ctx))
}
