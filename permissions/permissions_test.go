package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanWrite(t *testing.T) {
	tests := []struct {
		name    string
		caller  *Caller
		ownerID uint
		want    error
	}{
		{"anonymous is unauthorized", nil, 1, ErrUnauthorized},
		{"non-owner is forbidden", &Caller{ID: 2}, 1, ErrForbidden},
		{"owner may write", &Caller{ID: 1}, 1, nil},
		{"staff does not override ownership", &Caller{ID: 2, IsStaff: true}, 1, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, CanWrite(tt.caller, tt.ownerID), tt.want)
		})
	}
}

func TestValidateFollow(t *testing.T) {
	assert.ErrorIs(t, ValidateFollow(1, 1), ErrSelfFollow)
	assert.NoError(t, ValidateFollow(1, 2))
}
