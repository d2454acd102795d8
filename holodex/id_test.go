package holodex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id, err := ParseID("123e4567-e89b-12d3-a456-426614174000")
		require.NoError(t, err)
		assert.Equal(t, ID{
			0x12, 0x3e, 0x45, 0x67, 0xe8, 0x9b, 0x12, 0xd3,
			0xa4, 0x56, 0x42, 0x66, 0x14, 0x17, 0x40, 0x00,
		}, id)
		assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", id.String())
	})

	t.Run("upper case accepted, rendered lower", func(t *testing.T) {
		id, err := ParseID("123E4567-E89B-12D3-A456-426614174000")
		require.NoError(t, err)
		assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", id.String())
	})

	tests := []struct {
		name  string
		input string
	}{
		{"too short", "123e4567-e89b-12d3-a456-42661417400"},
		{"too long", "123e4567-e89b-12d3-a456-4266141740000"},
		{"empty", ""},
		{"missing dash", "123e4567ae89b-12d3-a456-426614174000"},
		{"dash in wrong place", "123e456-7e89b-12d3-a456-426614174000"},
		{"non-hex digit", "123e4567-e89b-12d3-a456-42661417400g"},
		{"stray dash with valid dash positions", "-23e4567-e89b-12d3-a456-426614174000"},
		{"no dashes at all", "123e4567e89b12d3a456426614174000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseID(tt.input)
			var ierr *InvalidIDError
			require.ErrorAs(t, err, &ierr)
			assert.Equal(t, tt.input, ierr.Value)
		})
	}
}
