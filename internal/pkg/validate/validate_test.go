package validate

import (
	"testing"

	"github.com/colis-timer-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(domain.CreateSessionRequest{EmployeID: 3, NbColis: 12}))
}

func TestStruct_ZeroCountIsMissing(t *testing.T) {
	err := Struct(domain.CreateSessionRequest{EmployeID: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "field 'nb_colis' failed 'required'")
}

func TestStruct_ReportsEveryField(t *testing.T) {
	err := Struct(domain.CreateSessionRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employe_id")
	assert.Contains(t, err.Error(), "nb_colis")
}

func TestStruct_NegativeCountPasses(t *testing.T) {
	// Only presence is checked; sign is left to the store.
	assert.NoError(t, Struct(domain.CreateSessionRequest{EmployeID: 1, NbColis: -4}))
}
