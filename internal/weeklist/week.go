package weeklist

import "time"

// ComputeWeekEnd returns the 23:59 mark of the last day of the current
// week, where weeks run Sunday through Saturday in the location of now.
// The remaining days, hours and minutes are added as plain durations,
// so seconds and sub-second fields of now are carried over untouched
// and no calendar normalization happens.
func ComputeWeekEnd(now time.Time) time.Time {
	remainingDays := 6 - int(now.Weekday())
	remainingHours := 23 - now.Hour()
	remainingMinutes := 59 - now.Minute()

	return now.Add(
		time.Duration(remainingDays)*24*time.Hour +
			time.Duration(remainingHours)*time.Hour +
			time.Duration(remainingMinutes)*time.Minute,
	)
}

// TimeLeft is the remaining part of a weeklist's active window,
// broken down for display.
type TimeLeft struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Remaining floor-divides the millisecond distance from now to endTime.
// An end time that already passed yields the zero value.
func Remaining(endTime, now time.Time) TimeLeft {
	ms := endTime.Sub(now).Milliseconds()
	if ms <= 0 {
		return TimeLeft{}
	}

	const (
		msPerMinute = 60 * 1000
		msPerHour   = 60 * msPerMinute
		msPerDay    = 24 * msPerHour
	)
	return TimeLeft{
		Days:    int(ms / msPerDay),
		Hours:   int(ms / msPerHour % 24),
		Minutes: int(ms / msPerMinute % 60),
	}
}
