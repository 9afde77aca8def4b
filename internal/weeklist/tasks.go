package weeklist

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-weeklist/internal/models"
)

// AddTask appends a new incomplete task with a generated id and
// returns it. Insertion order is preserved; tasks are never reordered.
func AddTask(wl *models.Weeklist, text string) (models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return models.Task{}, &ValidationError{
			Violations: []string{"task description is required"},
		}
	}

	task := models.Task{
		ID:   uuid.NewString(),
		Task: text,
	}
	wl.Tasks = append(wl.Tasks, task)
	return task, nil
}

// MarkTask sets the completion flag of the task with the given id.
// CompletedTime is stamped when the flag turns true and cleared when
// it turns false.
func MarkTask(wl *models.Weeklist, taskID string, isCompleted bool, now time.Time) error {
	i := taskIndex(wl, taskID)
	if i < 0 {
		return ErrTaskNotFound
	}

	wl.Tasks[i].IsCompleted = isCompleted
	if isCompleted {
		completedAt := now
		wl.Tasks[i].CompletedTime = &completedAt
	} else {
		wl.Tasks[i].CompletedTime = nil
	}
	return nil
}

// EditTask replaces the text of the task with the given id,
// leaving its completion fields alone.
func EditTask(wl *models.Weeklist, taskID, text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{
			Violations: []string{"task description is required"},
		}
	}

	i := taskIndex(wl, taskID)
	if i < 0 {
		return ErrTaskNotFound
	}
	wl.Tasks[i].Task = text
	return nil
}

// RemoveTask deletes the task with the given id from the collection.
func RemoveTask(wl *models.Weeklist, taskID string) error {
	i := taskIndex(wl, taskID)
	if i < 0 {
		return ErrTaskNotFound
	}
	wl.Tasks = append(wl.Tasks[:i], wl.Tasks[i+1:]...)
	return nil
}

// ClearTasks empties the task collection and restarts the active
// window from now.
func ClearTasks(wl *models.Weeklist, now time.Time) {
	wl.Tasks = []models.Task{}
	wl.EndTime = ComputeWeekEnd(now)
}

func taskIndex(wl *models.Weeklist, taskID string) int {
	for i := range wl.Tasks {
		if wl.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}
