package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileTrimsFields(t *testing.T) {
	p, err := NewProfile("  Omar Hassan  ", 23, true, "01234567890", " 12 Nile St ")
	require.NoError(t, err)

	assert.Equal(t, "Omar Hassan", p.Name)
	assert.Equal(t, "12 Nile St", p.Address)
}

func TestNewProfileRejectsNegativeAge(t *testing.T) {
	_, err := NewProfile("Omar", -1, true, "01234567890", "")
	assert.ErrorIs(t, err, ErrNegativeAge)
}

func TestNewProfileRequiresContact(t *testing.T) {
	_, err := NewProfile("Omar", 23, true, "", "")
	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Male", Profile{Gender: true}.GenderLabel())
	assert.Equal(t, "Female", Profile{Gender: false}.GenderLabel())
}
