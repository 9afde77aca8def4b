package weeklist

import (
	"testing"
	"time"
)

func TestComputeWeekEnd(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "monday morning runs to saturday 23:59",
			now:  time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "sunday starts a fresh week",
			now:  time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "saturday last minute yields a near-zero window",
			now:  time.Date(2024, 3, 9, 23, 59, 30, 0, time.UTC),
			want: time.Date(2024, 3, 9, 23, 59, 30, 0, time.UTC),
		},
		{
			name: "seconds are carried over untouched",
			now:  time.Date(2024, 3, 6, 15, 42, 17, 500, time.UTC),
			want: time.Date(2024, 3, 9, 23, 59, 17, 500, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWeekEnd(tt.now)
			if !got.Equal(tt.want) {
				t.Fatalf("ComputeWeekEnd(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestComputeWeekEndNeverBeforeNow(t *testing.T) {
	// Sweep a whole week hour by hour; the window end must never
	// precede the reference instant and must land on a Saturday.
	start := time.Date(2024, 3, 3, 0, 30, 0, 0, time.UTC)
	for i := 0; i < 7*24; i++ {
		now := start.Add(time.Duration(i) * time.Hour)
		end := ComputeWeekEnd(now)
		if end.Before(now) {
			t.Fatalf("ComputeWeekEnd(%v) = %v is before now", now, end)
		}
		if end.Weekday() != time.Saturday {
			t.Fatalf("ComputeWeekEnd(%v) = %v falls on %v, want Saturday", now, end, end.Weekday())
		}
	}
}

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endTime time.Time
		want    TimeLeft
	}{
		{
			name:    "days hours and minutes floor-divided",
			endTime: time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC),
			want:    TimeLeft{Days: 5, Hours: 13, Minutes: 59},
		},
		{
			name:    "sub-minute remainder floors to zero",
			endTime: now.Add(59 * time.Second),
			want:    TimeLeft{},
		},
		{
			name:    "passed end time clamps to zero",
			endTime: now.Add(-time.Hour),
			want:    TimeLeft{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(tt.endTime, now)
			if got != tt.want {
				t.Fatalf("Remaining(%v, %v) = %+v, want %+v", tt.endTime, now, got, tt.want)
			}
		})
	}
}
