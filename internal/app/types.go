package app

import "time"

// Sprint represents a single named date interval. Start and end are
// inclusive calendar dates without a time component.
type Sprint struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Covers reports whether the given date falls within the sprint's
// inclusive date range.
func (s Sprint) Covers(d time.Time) bool {
	return !d.Before(s.Start) && !d.After(s.End)
}

// Schedule is an ordered list of sprints, in input order.
type Schedule []Sprint

// Bounds returns the earliest start date and the latest end date in the
// schedule. The schedule must not be empty.
func (s Schedule) Bounds() (time.Time, time.Time) {
	min, max := s[0].Start, s[0].End
	for _, sprint := range s[1:] {
		if sprint.Start.Before(min) {
			min = sprint.Start
		}
		if sprint.End.After(max) {
			max = sprint.End
		}
	}
	return min, max
}

// SprintRecord is the wire form of a sprint with formatted dates
type SprintRecord struct {
	Name  string `json:"name"`
	Start string `json:"start_date"`
	End   string `json:"end_date"`
}

// Records converts the schedule to its wire form
func (s Schedule) Records() []SprintRecord {
	records := make([]SprintRecord, 0, len(s))
	for _, sprint := range s {
		records = append(records, SprintRecord{
			Name:  sprint.Name,
			Start: sprint.Start.Format(DateLayout),
			End:   sprint.End.Format(DateLayout),
		})
	}
	return records
}
