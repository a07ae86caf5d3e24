package app

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"
)

// WritePNG writes the rendered calendar inline for browser display
func WritePNG(w http.ResponseWriter, img image.Image) {
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// ExportPNG writes the rendered calendar as a PNG attachment download
func ExportPNG(w http.ResponseWriter, img image.Image) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", PNGFilename))
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG export: %v", err)
	}
}

// GenerateICS generates an iCalendar (ICS) file with one all-day event
// spanning each sprint's date range
func GenerateICS(w http.ResponseWriter, schedule Schedule) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", ICSFilename))

	// ICS header
	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintln(w, "X-WR-CALNAME:Sprint Calendar")
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", ICSTimezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	for _, sprint := range schedule {
		start := sprint.Start.Format(DateLayout)
		end := sprint.End.Format(DateLayout)

		// UID must be stable for a given sprint
		uid := fmt.Sprintf("%s-%s-%s@sprintkalender.winterberg.de", sprint.Name, start, end)

		// All-day event covering the whole sprint; DTEND is exclusive
		fmt.Fprintln(w, "BEGIN:VEVENT")
		fmt.Fprintf(w, "UID:%s\n", uid)
		fmt.Fprintf(w, "DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z"))
		fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", sprint.Start.Format("20060102"))
		fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", sprint.End.AddDate(0, 0, 1).Format("20060102"))
		fmt.Fprintf(w, "SUMMARY:Sprint %s\n", sprint.Name)
		fmt.Fprintf(w, "DESCRIPTION:Sprint %s (%s - %s)\n", sprint.Name, start, end)
		fmt.Fprintln(w, "END:VEVENT")
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

// GenerateCSV generates a CSV file with the parsed sprint records
func GenerateCSV(w http.ResponseWriter, schedule Schedule) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", CSVFilename))

	// CSV header
	fmt.Fprintln(w, "Sprint,Start Date,End Date")

	// CSV rows
	for _, sprint := range schedule {
		fmt.Fprintf(w, "%s,%s,%s\n", sprint.Name, sprint.Start.Format(DateLayout), sprint.End.Format(DateLayout))
	}
}

// GenerateJSON generates a JSON file with the parsed sprint records
func GenerateJSON(w http.ResponseWriter, schedule Schedule) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", JSONFilename))

	data := map[string]interface{}{
		"sprints": schedule.Records(),
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON export: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}
