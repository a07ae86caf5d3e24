package app

import "time"

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthRange enumerates every month from min's month through max's month
// inclusive, stepping one calendar month at a time with year rollover.
func MonthRange(min, max time.Time) []YearMonth {
	months := []YearMonth{}
	year, month := min.Year(), int(min.Month())
	endYear, endMonth := max.Year(), int(max.Month())

	for year < endYear || (year == endYear && month <= endMonth) {
		months = append(months, YearMonth{Year: year, Month: time.Month(month)})
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return months
}

// MonthMatrix builds the week-major day matrix for a month. Weeks start
// on Monday; cells outside the month hold zero.
func MonthMatrix(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7 // Monday = 0
	days := daysInMonth(year, month)

	var weeks [][7]int
	var week [7]int
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// daysInMonth returns the number of days in the month. Day zero of the
// following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
