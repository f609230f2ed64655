package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidDate", ErrInvalidDate},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrNotImplemented", ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidInput, ErrInvalidDate))
	assert.False(t, errors.Is(ErrNotFound, ErrUnsupportedType))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("studentenwerk: no schedule items: %w", ErrInvalidInput)

	assert.ErrorIs(t, wrapped, ErrInvalidInput)
	assert.NotErrorIs(t, wrapped, ErrInvalidDate)
}
