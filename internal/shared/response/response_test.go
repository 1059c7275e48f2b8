package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func Test_Transaction_Envelope(t *testing.T) {
	c, w := newTestContext()

	Transaction(c)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(200), body["status"])
	assert.Equal(t, "Successful", body["transaction"])
	assert.Len(t, body, 2, "envelope must contain exactly status and transaction")
}

func Test_NotFound_Shape(t *testing.T) {
	c, w := newTestContext()

	NotFound(c, "Book not found")

	require.Equal(t, http.StatusNotFound, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Book not found", body.Error.Message)
}

func Test_Unauthorized_Shape(t *testing.T) {
	c, w := newTestContext()

	Unauthorized(c, "missing authorization header")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func Test_Success_WrapsData(t *testing.T) {
	c, w := newTestContext()

	Success(c, http.StatusCreated, gin.H{"id": 1})

	require.Equal(t, http.StatusCreated, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
}
