package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil passes through",
			err:  nil,
			want: nil,
		},
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			want: ErrNotFound,
		},
		{
			name: "duplicate entry",
			err:  &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'breaking-news'"},
			want: ErrConflict,
		},
		{
			name: "missing foreign key",
			err:  &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"},
			want: ErrNotFound,
		},
		{
			name: "wrapped driver error",
			err:  fmt.Errorf("create news: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}),
			want: ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TranslateDBError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestTranslateDBError_UnknownPassesThrough(t *testing.T) {
	boom := errors.New("db is down")
	got := TranslateDBError(boom)
	require.Equal(t, boom, got)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title must be at most %d characters", 200)
	require.True(t, IsValidationError(err))
	assert.Equal(t, "title must be at most 200 characters", err.Error())

	wrapped := fmt.Errorf("create: %w", err)
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(errors.New("plain")))
}
