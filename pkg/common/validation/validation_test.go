package validation

import (
	"errors"
	"testing"
	"time"

	gperrors "github.com/vnykmshr/gopermit/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"positive value", 10, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("fifo", "capacity", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, gperrors.ErrInvalidConfiguration) {
				t.Error("validation errors should wrap ErrInvalidConfiguration")
			}
		})
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   time.Duration
		wantErr bool
	}{
		{"positive duration", time.Second, false},
		{"one nanosecond", time.Nanosecond, false},
		{"zero", 0, true},
		{"negative", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositiveDuration("replenish", "interval", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositiveDuration(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	if err := ValidateNotNil("replenish", "limiter", struct{}{}); err != nil {
		t.Errorf("unexpected error for non-nil value: %v", err)
	}

	err := ValidateNotNil("replenish", "limiter", nil)
	if err == nil {
		t.Fatal("expected error for nil value")
	}
	if !gperrors.IsValidationError(err) {
		t.Error("expected a ValidationError")
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("replenish", "cron", "*/5 * * * * *"); err != nil {
		t.Errorf("unexpected error for non-empty value: %v", err)
	}

	err := ValidateNotEmpty("replenish", "cron", "")
	if err == nil {
		t.Fatal("expected error for empty value")
	}
	if !gperrors.IsValidationError(err) {
		t.Error("expected a ValidationError")
	}
}
