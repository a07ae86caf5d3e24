package app

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the date format accepted in schedule input (ISO 8601).
const DateLayout = "2006-01-02"

// ParseError reports a schedule line whose date token is not a valid
// calendar date.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid date %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseSchedule parses whitespace-delimited schedule text into a Schedule.
// The first non-blank line is treated as a header and discarded regardless
// of its content. Each remaining line is expected to hold at least three
// tokens: sprint name, start date and end date (YYYY-MM-DD); lines with
// fewer tokens are silently skipped. Input order is preserved. A date
// token that does not parse aborts the whole parse with a *ParseError
// whose Line is the 1-based line number in the original input, blank
// lines included.
func ParseSchedule(text string) (Schedule, error) {
	schedule := Schedule{}
	header := false
	for num, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !header {
			header = true
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}

		start, err := time.Parse(DateLayout, parts[1])
		if err != nil {
			return nil, &ParseError{Line: num + 1, Token: parts[1], Err: err}
		}
		end, err := time.Parse(DateLayout, parts[2])
		if err != nil {
			return nil, &ParseError{Line: num + 1, Token: parts[2], Err: err}
		}

		schedule = append(schedule, Sprint{Name: parts[0], Start: start, End: end})
	}

	return schedule, nil
}
