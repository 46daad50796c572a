// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type httpRequestDetails struct {
	Method string
	Path   string
	Body   interface{}
	UserID uuid.UUID // zero value sends no X-User-ID header
}

// sendRequest sends the request, asserts the status code and returns the raw
// response body for caller-specific checks.
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.UserID != uuid.Nil {
		req.Header.Set("X-User-ID", details.UserID.String())
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	require.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch, body: %s", string(respBodyBytes))
	return respBodyBytes
}

// decodeBody unmarshals a response body into dest.
func decodeBody(t *testing.T, bodyBytes []byte, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(bodyBytes, dest), "Failed to unmarshal response body: %s", string(bodyBytes))
}

// verifyErrorCode checks the code inside the JSON error envelope.
func verifyErrorCode(t *testing.T, bodyBytes []byte, expectedCode string) model.APIErrorResponse {
	t.Helper()
	var errResp model.APIErrorResponse
	decodeBody(t, bodyBytes, &errResp)
	assert.Equal(t, expectedCode, errResp.Error.Code)
	return errResp
}
