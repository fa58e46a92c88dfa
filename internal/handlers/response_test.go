package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobflix/jobflix-backend/internal/apperr"
)

func recorderContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestRespondErrorMapsStatusAndCode(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperr.Validation(apperr.CodeValidation, "bad input"), http.StatusBadRequest, apperr.CodeValidation},
		{"conflict", apperr.Conflict(apperr.CodeDuplicateApplication, "exists"), http.StatusConflict, apperr.CodeDuplicateApplication},
		{"not found", apperr.NotFound(apperr.CodeJobNotFound, "gone"), http.StatusNotFound, apperr.CodeJobNotFound},
		{"unauthorized", apperr.Unauthorized("not yours"), http.StatusForbidden, apperr.CodeUnauthorized},
		{"state", apperr.State(apperr.CodeIllegalTransition, "no"), http.StatusUnprocessableEntity, apperr.CodeIllegalTransition},
		{"transport", apperr.Transport("upstream down"), http.StatusBadGateway, apperr.CodeDeliveryFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := recorderContext(t)
			RespondError(c, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	c, rec := recorderContext(t)
	RespondError(c, errors.New("pq: connection refused on 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "internal server error", envelope.Error.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}
