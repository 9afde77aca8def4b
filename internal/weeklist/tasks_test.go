package weeklist

import (
	"errors"
	"testing"
	"time"

	"github.com/adanyl0v/go-weeklist/internal/models"
)

func TestAddTask(t *testing.T) {
	createdAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	wl := activeWeeklist(createdAt)

	task, err := AddTask(wl, "buy milk")
	if err != nil {
		t.Fatalf("AddTask() = %v, want nil", err)
	}
	if task.ID == "" {
		t.Fatal("task id not generated")
	}
	if task.IsCompleted || task.CompletedTime != nil {
		t.Fatalf("new task = %+v, want incomplete without completion time", task)
	}
	if len(wl.Tasks) != 1 || wl.Tasks[0].Task != "buy milk" {
		t.Fatalf("tasks = %+v, want single buy milk entry", wl.Tasks)
	}

	// Insertion order is preserved.
	if _, err = AddTask(wl, "buy eggs"); err != nil {
		t.Fatal(err)
	}
	if wl.Tasks[0].Task != "buy milk" || wl.Tasks[1].Task != "buy eggs" {
		t.Fatalf("tasks out of order: %+v", wl.Tasks)
	}

	var validationErr *ValidationError
	if _, err = AddTask(wl, "  "); !errors.As(err, &validationErr) {
		t.Fatalf("AddTask(blank) = %v, want ValidationError", err)
	}
	if len(wl.Tasks) != 2 {
		t.Fatalf("rejected add still mutated tasks: %+v", wl.Tasks)
	}
}

func TestMarkTaskRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	now := createdAt.Add(2 * time.Hour)
	wl := activeWeeklist(createdAt)

	task, err := AddTask(wl, "buy milk")
	if err != nil {
		t.Fatal(err)
	}

	if err = MarkTask(wl, task.ID, true, now); err != nil {
		t.Fatalf("MarkTask(true) = %v, want nil", err)
	}
	if !wl.Tasks[0].IsCompleted {
		t.Fatal("task not marked completed")
	}
	if wl.Tasks[0].CompletedTime == nil || !wl.Tasks[0].CompletedTime.Equal(now) {
		t.Fatalf("completedTime = %v, want %v", wl.Tasks[0].CompletedTime, now)
	}

	if err = MarkTask(wl, task.ID, false, now.Add(time.Minute)); err != nil {
		t.Fatalf("MarkTask(false) = %v, want nil", err)
	}
	if wl.Tasks[0].IsCompleted {
		t.Fatal("task still completed after unmark")
	}
	if wl.Tasks[0].CompletedTime != nil {
		t.Fatalf("completedTime = %v, want cleared", wl.Tasks[0].CompletedTime)
	}

	if err = MarkTask(wl, "missing", true, now); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("MarkTask(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestEditTask(t *testing.T) {
	createdAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	now := createdAt.Add(time.Hour)
	wl := activeWeeklist(createdAt)

	task, err := AddTask(wl, "buy milk")
	if err != nil {
		t.Fatal(err)
	}
	if err = MarkTask(wl, task.ID, true, now); err != nil {
		t.Fatal(err)
	}

	if err = EditTask(wl, task.ID, "buy oat milk"); err != nil {
		t.Fatalf("EditTask() = %v, want nil", err)
	}
	if wl.Tasks[0].Task != "buy oat milk" {
		t.Fatalf("task text = %q, want buy oat milk", wl.Tasks[0].Task)
	}
	// Editing the text leaves completion fields alone.
	if !wl.Tasks[0].IsCompleted || wl.Tasks[0].CompletedTime == nil {
		t.Fatalf("edit touched completion fields: %+v", wl.Tasks[0])
	}

	var validationErr *ValidationError
	if err = EditTask(wl, task.ID, ""); !errors.As(err, &validationErr) {
		t.Fatalf("EditTask(empty) = %v, want ValidationError", err)
	}
	if err = EditTask(wl, "missing", "text"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("EditTask(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestRemoveTask(t *testing.T) {
	createdAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	wl := activeWeeklist(createdAt)

	first, err := AddTask(wl, "buy milk")
	if err != nil {
		t.Fatal(err)
	}
	second, err := AddTask(wl, "buy eggs")
	if err != nil {
		t.Fatal(err)
	}
	third, err := AddTask(wl, "buy bread")
	if err != nil {
		t.Fatal(err)
	}

	if err = RemoveTask(wl, second.ID); err != nil {
		t.Fatalf("RemoveTask() = %v, want nil", err)
	}
	if len(wl.Tasks) != 2 || wl.Tasks[0].ID != first.ID || wl.Tasks[1].ID != third.ID {
		t.Fatalf("tasks after remove = %+v", wl.Tasks)
	}

	if err = RemoveTask(wl, second.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("RemoveTask(removed) = %v, want ErrTaskNotFound", err)
	}
}

func TestClearTasks(t *testing.T) {
	createdAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	wl := activeWeeklist(createdAt)
	if _, err := AddTask(wl, "buy milk"); err != nil {
		t.Fatal(err)
	}

	now := createdAt.Add(3 * time.Hour)
	ClearTasks(wl, now)

	if len(wl.Tasks) != 0 {
		t.Fatalf("tasks = %+v, want empty", wl.Tasks)
	}
	if want := ComputeWeekEnd(now); !wl.EndTime.Equal(want) {
		t.Fatalf("endTime = %v, want %v", wl.EndTime, want)
	}
}

func TestValidate(t *testing.T) {
	createdAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		mutate         func(wl *models.Weeklist)
		wantViolations int
	}{
		{
			name:           "valid weeklist",
			mutate:         func(wl *models.Weeklist) {},
			wantViolations: 0,
		},
		{
			name:           "empty name",
			mutate:         func(wl *models.Weeklist) { wl.Name = " " },
			wantViolations: 1,
		},
		{
			name:           "short name",
			mutate:         func(wl *models.Weeklist) { wl.Name = "abcd" },
			wantViolations: 1,
		},
		{
			name: "violations aggregate",
			mutate: func(wl *models.Weeklist) {
				wl.Name = "abc"
				wl.Tasks = []models.Task{{ID: "t1", Task: ""}}
			},
			wantViolations: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wl := activeWeeklist(createdAt)
			tt.mutate(wl)

			err := Validate(wl)
			if tt.wantViolations == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			if len(validationErr.Violations) != tt.wantViolations {
				t.Fatalf("violations = %v, want %d of them", validationErr.Violations, tt.wantViolations)
			}
		})
	}
}
