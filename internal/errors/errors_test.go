package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewAppError(ErrTypeConfig, "bad exclusion shape", nil),
			expected: "[CONFIG] bad exclusion shape",
		},
		{
			name:     "with cause",
			err:      NewAppError(ErrTypeStorage, "write clean data", errors.New("disk full")),
			expected: "[STORAGE] write clean data: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Raw Data/HD2011/hd2011.csv")

	assert.Equal(t, ErrTypeNotFound, err.Type)
	assert.Contains(t, err.Error(), "Raw Data/HD2011/hd2011.csv")
	assert.Equal(t, "Raw Data/HD2011/hd2011.csv", err.Context["path"])
}

func TestNewSchemaError(t *testing.T) {
	err := NewSchemaError("hd2011", "UNITID")

	assert.Equal(t, ErrTypeSchema, err.Type)
	assert.Contains(t, err.Error(), "UNITID")
	assert.Contains(t, err.Error(), "hd2011")
	assert.Equal(t, "hd2011", err.Context["table"])
	assert.Equal(t, "UNITID", err.Context["column"])
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewStorageError("export failed", cause)

	require.ErrorIs(t, err, cause)
}

func TestIsType(t *testing.T) {
	err := NewConfigError("excluding states must be a string or a slice of strings", nil)

	assert.True(t, IsType(err, ErrTypeConfig))
	assert.False(t, IsType(err, ErrTypeSchema))
	assert.False(t, IsType(errors.New("plain"), ErrTypeConfig))

	// Wrapped AppError is still recognized.
	wrapped := fmt.Errorf("cleaner: %w", err)
	assert.True(t, IsType(wrapped, ErrTypeConfig))
}
