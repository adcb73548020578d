package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "negative container capacity returns ErrInvalidConfiguration",
			config:  NewConfig(-4, 10),
			wantErr: ErrInvalidConfiguration,
		},
		{
			name:    "storage smaller than container returns ErrInvalidConfiguration",
			config:  NewConfig(10, 5),
			wantErr: ErrInvalidConfiguration,
		},
		{
			name:    "storage equal to container is valid",
			config:  NewConfig(10, 10),
			wantErr: nil,
		},
		{
			name:    "zero capacities are valid",
			config:  NewConfig(0, 0),
			wantErr: nil,
		},
		{
			name:    "fractional capacities are valid",
			config:  NewConfig(2.5, 7.5),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
