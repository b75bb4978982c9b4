package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() (*ScanView, error)
		wantNil bool
		wantErr string
	}{
		{
			name: "returns value from fn",
			fn:   func() (*ScanView, error) { return &ScanView{ID: "abc"}, nil },
		},
		{
			name:    "propagates error from fn",
			fn:      func() (*ScanView, error) { return nil, errors.New("scan failed") },
			wantNil: true,
			wantErr: "scan failed",
		},
		{
			name:    "returns value even when fn also returns error",
			fn:      func() (*ScanView, error) { return &ScanView{ID: "partial"}, errors.New("cancelled") },
			wantErr: "cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got, err := RunWithSpinner("Scanning...", tt.fn, WithWriter(&buf))

			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
			}
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Empty(t, buf.String(), "non-TTY writer should produce no spinner output")
		})
	}
}
