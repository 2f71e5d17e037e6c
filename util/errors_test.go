package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound(NO_RECORD_EXISTS), http.StatusNotFound},
		{Unauthorized(PASSWORD_INCORRECT), http.StatusUnauthorized},
		{Forbidden(ROLE_DOES_NOT_HAVE_ACCESS), http.StatusForbidden},
		{Conflict(EMAIL_ALREADY_EXISTS), http.StatusConflict},
		{Validation(INVALID_DATE), http.StatusBadRequest},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NotFound(NO_DATA)), http.StatusNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err), tc.err.Error())
	}
}

func TestFailedResponseHidesInternalCause(t *testing.T) {
	body := FailedResponse(Internal(errors.New("connection reset by peer")))
	assert.Equal(t, INTERNAL_SERVER_ERROR, body["error"])

	body = FailedResponse(Conflict(EMAIL_ALREADY_EXISTS))
	assert.Equal(t, EMAIL_ALREADY_EXISTS, body["error"])
	assert.Equal(t, "FAILED", body["status"])
}
