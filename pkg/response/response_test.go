package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-calendar-service/pkg/response"

	"github.com/stretchr/testify/require"
)

func TestPage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.Page(rec, "ok", []int{1, 2}, &response.Meta{Page: 1, Size: 2, Total: 5, TotalPages: 3})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "5", rec.Header().Get(response.TotalCountHeader))

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, &response.Meta{Page: 1, Size: 2, Total: 5, TotalPages: 3}, body.Meta)
}

func TestBadRequest(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.BadRequest(rec, "", "dayNumber.equals=\"x\"")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "Bad request", body.Message)
	require.Equal(t, "dayNumber.equals=\"x\"", body.Error)
}
