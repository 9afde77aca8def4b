package weeklist

import (
	"strings"
	"unicode/utf8"

	"github.com/adanyl0v/go-weeklist/internal/models"
)

const minNameLength = 5

// ValidationError aggregates field-level constraint violations, one
// human-readable message per violated constraint. The messages are
// joined with commas for display.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ",")
}

// Validate re-checks the aggregate's field constraints. It runs right
// before every persist so a patched or mutated weeklist can never be
// saved in a shape that could not have been created.
func Validate(wl *models.Weeklist) error {
	var violations []string

	switch {
	case strings.TrimSpace(wl.Name) == "":
		violations = append(violations, "weeklist name is required")
	case utf8.RuneCountInString(wl.Name) < minNameLength:
		violations = append(violations, "weeklist name must be at least 5 characters")
	}

	for i := range wl.Tasks {
		if strings.TrimSpace(wl.Tasks[i].Task) == "" {
			violations = append(violations, "task description is required")
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
