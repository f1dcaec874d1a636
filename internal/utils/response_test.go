package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmarket/internal/apperrors"
	"campusmarket/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessResponse_Shape(t *testing.T) {
	c, w := newTestContext()
	SuccessResponse(c, "ok", gin.H{"id": "1"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, "1", body["data"].(map[string]interface{})["id"])
	assert.NotContains(t, body, "error")
}

func TestAppErrorResponse_MapsKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.NotFound("ride"), http.StatusNotFound, "NOT_FOUND"},
		{apperrors.Capacity("only %d seats left", 1), http.StatusBadRequest, "CAPACITY_EXCEEDED"},
		{apperrors.DuplicateJoin("0244"), http.StatusBadRequest, "DUPLICATE_JOIN"},
		{apperrors.DuplicateKey("rider code already exists", nil), http.StatusConflict, "DUPLICATE_KEY"},
		{apperrors.NoDefaultRider(), http.StatusBadRequest, "NO_DEFAULT_RIDER"},
	}

	for _, tc := range cases {
		c, w := newTestContext()
		AppErrorResponse(c, logger.NewNop(), tc.err)

		assert.Equal(t, tc.status, w.Code, tc.code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, tc.code, body["error"])
	}
}

func TestAppErrorResponse_HidesStoreCause(t *testing.T) {
	c, w := newTestContext()
	AppErrorResponse(c, logger.NewNop(), apperrors.Store("find ride", errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, ErrInternalServer, body["message"])
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestAppErrorResponse_UnknownErrorIs500(t *testing.T) {
	c, w := newTestContext()
	AppErrorResponse(c, nil, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
