package domain

import (
	"strings"
	"time"

	apperrors "countdown/internal/platform/errors"
)

const (
	ReasonMissingTarget = "Please select a date and time!"
	ReasonPastTarget    = "Please select a future date and time!"
	ReasonBadTarget     = "Please enter a date and time like 2006-01-02 15:04 or an offset like 25m!"
)

var targetLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ResolveTarget turns user input into an absolute target. Input is either a
// duration offset from now ("25m", "1h30m"), RFC3339, or a local date-time.
func ResolveTarget(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperrors.NewValidationError("target", ReasonMissingTarget)
	}
	if loc == nil {
		loc = time.Local
	}
	target, ok := parseTarget(raw, now, loc)
	if !ok {
		return time.Time{}, apperrors.NewValidationError("target", ReasonBadTarget)
	}
	if err := ValidateTarget(target, now); err != nil {
		return time.Time{}, err
	}
	return target, nil
}

// ValidateTarget enforces target > now.
func ValidateTarget(target, now time.Time) error {
	if target.IsZero() {
		return apperrors.NewValidationError("target", ReasonMissingTarget)
	}
	if !target.After(now) {
		return apperrors.NewValidationError("target", ReasonPastTarget)
	}
	return nil
}

func PresetTarget(minutes int, now time.Time) (time.Time, error) {
	if minutes <= 0 {
		return time.Time{}, apperrors.NewValidationError("preset", "preset minutes must be positive")
	}
	return now.Add(time.Duration(minutes) * time.Minute), nil
}

func parseTarget(raw string, now time.Time, loc *time.Location) (time.Time, bool) {
	if d, err := time.ParseDuration(raw); err == nil {
		return now.Add(d), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	for _, layout := range targetLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
