//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertPlainTextError checks the text-body error contract used by receipt
// submission failures.
func AssertPlainTextError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedInBody string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	if expectedInBody != "" {
		assert.Contains(t, w.Body.String(), expectedInBody,
			"Response body doesn't contain expected text")
	}
}

// AssertNotFoundResponse checks the pinned points-lookup 404 body.
func AssertNotFoundResponse(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, 404, w.Code,
		fmt.Sprintf("Expected status 404, got %d. Response: %s", w.Code, w.Body.String()))

	var body struct {
		Detail string `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode 404 response JSON: %s", w.Body.String()))
	assert.Equal(t, "No receipt found for that ID.", body.Detail)
}
