package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError_Error(t *testing.T) {
	assert.Equal(t, "exit status 1", NewExitError(1).Error())
	assert.Equal(t, "exit status 0", NewExitError(0).Error())
}

func TestIsExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOK   bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("boom")},
		{name: "exit error", err: NewExitError(1), wantCode: 1, wantOK: true},
		{name: "wrapped exit error", err: fmt.Errorf("run: %w", NewExitError(1)), wantCode: 1, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := IsExitError(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
