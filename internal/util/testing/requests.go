package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type TestResponse struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

func MakeRequest(
	t *testing.T,
	router *gin.Engine,
	method string,
	url string,
	authorization string,
	body any,
	headers map[string]string,
) *TestResponse {
	t.Helper()

	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		require.NoError(t, err)
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return &TestResponse{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
		Header:     w.Header(),
	}
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authorization string,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	response := MakeRequest(t, router, http.MethodGet, url, authorization, nil, nil)
	require.Equal(t, expectedStatus, response.StatusCode, "unexpected status, body: %s", string(response.Body))

	return response
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authorization string,
	expectedStatus int,
	target any,
) {
	t.Helper()

	response := MakeGetRequest(t, router, url, authorization, expectedStatus)
	require.NoError(t, json.Unmarshal(response.Body, target))
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authorization string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	response := MakeRequest(t, router, http.MethodPost, url, authorization, body, nil)
	require.Equal(t, expectedStatus, response.StatusCode, "unexpected status, body: %s", string(response.Body))

	return response
}
