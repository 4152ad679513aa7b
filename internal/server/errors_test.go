package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "email exists", err: &ErrEmailAlreadyExists{Email: "a@b.c"}, want: http.StatusConflict},
		{name: "invalid credentials", err: &ErrInvalidCredentials{}, want: http.StatusUnauthorized},
		{name: "user not found", err: &ErrUserNotFound{UserID: uuid.New()}, want: http.StatusNotFound},
		{name: "quota exceeded", err: &ErrQuotaExceeded{Limit: 10}, want: http.StatusForbidden},
		{name: "validation", err: &ErrValidation{Field: "email", Message: "required"}, want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrQuotaExceeded_Message(t *testing.T) {
	err := &ErrQuotaExceeded{Limit: 10}
	assert.Contains(t, err.Error(), "10")
	assert.Contains(t, err.Error(), "upgrade to Pro")
}
