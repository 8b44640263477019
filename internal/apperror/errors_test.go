package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("service: could not dispatch: %w", &ConflictError{
		Reason: "ambulance taken",
		Err:    &AlreadyReservedError{AmbulanceID: "a1"},
	})

	var conflict *ConflictError
	assert.True(t, errors.As(wrapped, &conflict))
	assert.Equal(t, "conflict: ambulance taken", conflict.Error())

	var reserved *AlreadyReservedError
	assert.True(t, errors.As(wrapped, &reserved))
	assert.Equal(t, "a1", reserved.AmbulanceID)

	var notFound *NotFoundError
	assert.False(t, errors.As(wrapped, &notFound))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "validation: justification: must not be empty", Validation("justification", "must not be empty").Error())
	assert.Equal(t, "validation: bad input", Validation("", "bad input").Error())
	assert.Equal(t, "occurrence x not found", NotFound("occurrence", "x").Error())
	assert.Equal(t, `no route from "A" to "B"`, (&NoRouteError{From: "A", To: "B"}).Error())
	assert.Equal(t, "invalid transition from CONCLUDED to OPEN", (&InvalidTransitionError{From: "CONCLUDED", To: "OPEN"}).Error())
}
