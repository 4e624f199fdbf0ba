package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound(APPOINTMENT_NOT_FOUND)))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict(SLOT_ALREADY_BOOKED)))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden(INVALID_USER_TO_ACCESS)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Invalid(INVALID_DATE_FORMAT)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("mongo: connection reset")))
}

func TestWrappersPreserveMessageAndKind(t *testing.T) {
	err := Conflict(SLOT_ALREADY_BOOKED)

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), SLOT_ALREADY_BOOKED)
	assert.False(t, errors.Is(err, ErrNotFound))
}
