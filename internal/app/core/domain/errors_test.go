package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsCarryContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantAccount string
	}{
		{"not found", &NotFoundError{Account: "ghost"}, "ghost"},
		{"underfunded", &UnderFundedError{Account: "bob", Amount: 500}, "bob"},
		{"overfunded", &OverFundedError{Account: "alice", Amount: 1}, "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Contains(t, tt.err.Error(), fmt.Sprintf("%q", tt.wantAccount))
		})
	}
}

func TestErrorsMatchThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("posting transaction: %w", &UnderFundedError{Account: "bob", Amount: 3})

	var underErr *UnderFundedError
	require.True(t, errors.As(wrapped, &underErr))
	assert.Equal(t, "bob", underErr.Account)
	assert.Equal(t, uint64(3), underErr.Amount)

	// 不同種類的錯誤不可互相匹配
	var notFoundErr *NotFoundError
	assert.False(t, errors.As(wrapped, &notFoundErr))
	var overErr *OverFundedError
	assert.False(t, errors.As(wrapped, &overErr))
}
