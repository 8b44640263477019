package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
)

func TestConflictMapping(t *testing.T) {
	unique := fmt.Errorf("exec: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "ux_teams_ambulance_shift"})
	reference := fmt.Errorf("exec: %w", &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "team_members_professional_id_fkey"})
	other := errors.New("connection reset")

	var conflict *apperror.ConflictError

	require.True(t, errors.As(conflictOnUnique(unique, "ambulance already staffed on this shift"), &conflict))
	assert.Contains(t, conflict.Reason, "ux_teams_ambulance_shift")
	assert.False(t, errors.As(conflictOnUnique(reference, "x"), &conflict))

	require.True(t, errors.As(conflictOnReference(reference, "professional is still referenced"), &conflict))
	assert.Contains(t, conflict.Reason, "team_members_professional_id_fkey")
	assert.False(t, errors.As(conflictOnReference(unique, "x"), &conflict))

	assert.Equal(t, other, conflictOnReference(other, "x"))
}
