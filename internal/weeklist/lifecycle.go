package weeklist

import (
	"errors"
	"time"

	"github.com/adanyl0v/go-weeklist/internal/models"
)

// EditWindow is the period after creation during which a weeklist
// and its tasks may still be modified or deleted.
const EditWindow = 24 * time.Hour

var (
	ErrNotActive        = errors.New("weeklist is not active")
	ErrEditWindowClosed = errors.New("weeklist can no longer be modified after 24 hours of creation")
	ErrTaskNotFound     = errors.New("task not found")
)

// Expire flips an active weeklist whose end time has passed to
// inactive and reports whether the flip happened. The caller persists
// the flip. Inactive and completed are latched states: once entered,
// nothing flips a weeklist back to active.
func Expire(wl *models.Weeklist, now time.Time) bool {
	if wl.State != models.StateActive || !now.After(wl.EndTime) {
		return false
	}
	wl.State = models.StateInactive
	return true
}

// GuardActive rejects task mutations on a weeklist that already left
// the active state.
func GuardActive(wl *models.Weeklist) error {
	if wl.State != models.StateActive {
		return ErrNotActive
	}
	return nil
}

// GuardEditWindow rejects mutations attempted more than EditWindow
// after the weeklist was created, regardless of its state.
func GuardEditWindow(wl *models.Weeklist, now time.Time) error {
	if now.Sub(wl.CreatedAt) > EditWindow {
		return ErrEditWindowClosed
	}
	return nil
}

// RefreshCompletion promotes the weeklist to completed once every
// task is marked complete and reports whether it did. Only the mark
// path calls it, so a weeklist with no tasks is never auto-completed.
func RefreshCompletion(wl *models.Weeklist) bool {
	if len(wl.Tasks) == 0 {
		return false
	}
	for i := range wl.Tasks {
		if !wl.Tasks[i].IsCompleted {
			return false
		}
	}
	wl.State = models.StateCompleted
	return true
}
