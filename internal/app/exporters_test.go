package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func exportSchedule() Schedule {
	return Schedule{
		{Name: "0", Start: date(2025, time.March, 10), End: date(2025, time.March, 21)},
		{Name: "1", Start: date(2025, time.March, 24), End: date(2025, time.April, 11)},
	}
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGenerateICS(t *testing.T) {
	w := httptest.NewRecorder()

	GenerateICS(w, exportSchedule())

	resp := w.Result()
	body := w.Body.String()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/calendar") {
		t.Errorf("Expected Content-Type text/calendar, got %s", contentType)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, ICSFilename) {
		t.Errorf("Expected attachment filename %s, got %s", ICSFilename, got)
	}

	// Check for required ICS structure
	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Winterberg//Sprintkalender//DE",
		"BEGIN:VEVENT",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(body, field) {
			t.Errorf("ICS output missing required field: %s", field)
		}
	}

	// Each sprint is one all-day event spanning its range; DTEND is the
	// day after the inclusive end date
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20250310") {
		t.Error("Sprint should start as all-day event (DTSTART;VALUE=DATE)")
	}
	if !strings.Contains(body, "DTEND;VALUE=DATE:20250322") {
		t.Error("All-day event should end the day after the sprint end")
	}

	if !strings.Contains(body, "SUMMARY:Sprint 0") {
		t.Error("Missing event summary for sprint 0")
	}
	if !strings.Contains(body, "SUMMARY:Sprint 1") {
		t.Error("Missing event summary for sprint 1")
	}

	if count := strings.Count(body, "BEGIN:VEVENT"); count != 2 {
		t.Errorf("Expected 2 events, got %d", count)
	}
}

func TestGenerateCSV(t *testing.T) {
	w := httptest.NewRecorder()

	GenerateCSV(w, exportSchedule())

	resp := w.Result()
	body := w.Body.String()

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/csv") {
		t.Errorf("Expected Content-Type text/csv, got %s", contentType)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, CSVFilename) {
		t.Errorf("Expected attachment filename %s, got %s", CSVFilename, got)
	}

	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Sprint,Start Date,End Date" {
		t.Errorf("Unexpected CSV header: %s", lines[0])
	}
	if lines[1] != "0,2025-03-10,2025-03-21" {
		t.Errorf("Unexpected CSV row: %s", lines[1])
	}
}

func TestGenerateJSON(t *testing.T) {
	w := httptest.NewRecorder()

	GenerateJSON(w, exportSchedule())

	resp := w.Result()

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		t.Errorf("Expected Content-Type application/json, got %s", contentType)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, JSONFilename) {
		t.Errorf("Expected attachment filename %s, got %s", JSONFilename, got)
	}

	var data struct {
		Sprints []SprintRecord `json:"sprints"`
	}
	if err := json.NewDecoder(w.Body).Decode(&data); err != nil {
		t.Fatalf("Failed to decode JSON export: %v", err)
	}

	if len(data.Sprints) != 2 {
		t.Fatalf("Expected 2 sprints, got %d", len(data.Sprints))
	}
	if data.Sprints[0].Name != "0" || data.Sprints[0].Start != "2025-03-10" || data.Sprints[0].End != "2025-03-21" {
		t.Errorf("Unexpected first record: %+v", data.Sprints[0])
	}
}

func TestExportPNG(t *testing.T) {
	img := RenderCalendar(exportSchedule(), RenderOptions{})
	if img == nil {
		t.Fatal("Expected an image, got nil")
	}

	w := httptest.NewRecorder()
	ExportPNG(w, img)

	resp := w.Result()

	if got := resp.Header.Get("Content-Type"); got != "image/png" {
		t.Errorf("Expected Content-Type image/png, got %s", got)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, PNGFilename) {
		t.Errorf("Expected attachment filename %s, got %s", PNGFilename, got)
	}

	if !bytes.HasPrefix(w.Body.Bytes(), pngSignature) {
		t.Error("Export body should start with the PNG signature")
	}
}
