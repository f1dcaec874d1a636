package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs_MatchesOnKind(t *testing.T) {
	err := Capacity("only %d seats left", 1)

	assert.True(t, errors.Is(err, ErrCapacity))
	assert.False(t, errors.Is(err, ErrDuplicateJoin))
	assert.Equal(t, "only 1 seats left", err.Error())
}

func TestErrorIs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("join ride: %w", DuplicateJoin("0551234567"))

	assert.True(t, errors.Is(wrapped, ErrDuplicateJoin))
	assert.Equal(t, KindDuplicateJoin, KindOf(wrapped))
}

func TestStoreError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Store("insert ride", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, KindStore, KindOf(errors.New("boom")))
}

func TestStatusFor(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:    http.StatusBadRequest,
		KindCapacity:      http.StatusBadRequest,
		KindDuplicateJoin: http.StatusBadRequest,
		KindInvalidState:  http.StatusBadRequest,
		KindNoDefault:     http.StatusBadRequest,
		KindNotFound:      http.StatusNotFound,
		KindDuplicateKey:  http.StatusConflict,
		KindStore:         http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, StatusFor(kind), string(kind))
	}
}
