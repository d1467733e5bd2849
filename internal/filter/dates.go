package filter

import (
	"time"

	"cloud.google.com/go/civil"
)

// Date comparisons ignore the time of day and use now's location.

func IsOverdue(due civil.Date, now time.Time) bool {
	return due.Before(civil.DateOf(now))
}

func IsToday(due civil.Date, now time.Time) bool {
	return due == civil.DateOf(now)
}

// IsThisWeek reports whether due falls in the Sunday-to-Saturday week containing now.
func IsThisWeek(due civil.Date, now time.Time) bool {
	wd := int(now.Weekday())
	start := civil.DateOf(now).AddDays(-wd)
	end := civil.DateOf(now).AddDays(6 - wd)
	return !due.Before(start) && !due.After(end)
}

// FormatDate renders a due date as "Jan 2, 2006".
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format("Jan 2, 2006")
}
