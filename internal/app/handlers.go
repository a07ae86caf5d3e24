package app

import (
	"encoding/json"
	"log"
	"net/http"
)

// ServeIndex serves the calendar interface HTML
func ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(IndexHTML); err != nil {
		log.Printf("Error writing index HTML: %v", err)
	}
}

// GetConfig returns the application configuration for the UI
func GetConfig(w http.ResponseWriter, r *http.Request) {
	palette := Cfg.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	config := map[string]interface{}{
		"sampleSchedule": Cfg.SampleSchedule,
		"palette":        palette,
		"holidayRegion":  Cfg.HolidayRegion,
		"protected":      Protected,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(config); err != nil {
		log.Printf("Error encoding config: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// HandleParse parses a posted schedule and returns the records as JSON
func HandleParse(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	schedule, err := ParseSchedule(ScheduleFromRequest(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := map[string]interface{}{"sprints": schedule.Records()}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding parse response: %v", err)
	}
}

// HandleRender renders a posted schedule and returns the calendar as an
// inline PNG. An empty schedule yields 422 with a user-visible message;
// a bad date token yields 400 naming the token.
func HandleRender(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	schedule, err := ParseSchedule(ScheduleFromRequest(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	img := RenderCalendar(schedule, renderOptions())
	if img == nil {
		http.Error(w, ErrEmptySchedule, http.StatusUnprocessableEntity)
		return
	}

	WritePNG(w, img)
}

// HandleDownload handles export downloads in PNG, ICS, CSV or JSON format
// Query param: format
func HandleDownload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	format := r.URL.Query().Get("format")

	schedule, err := ParseSchedule(ScheduleFromRequest(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(schedule) == 0 {
		http.Error(w, ErrEmptySchedule, http.StatusUnprocessableEntity)
		return
	}

	switch format {
	case "png":
		img := RenderCalendar(schedule, renderOptions())
		if img == nil {
			http.Error(w, ErrEmptySchedule, http.StatusUnprocessableEntity)
			return
		}
		ExportPNG(w, img)
	case "ics":
		GenerateICS(w, schedule)
	case "csv":
		GenerateCSV(w, schedule)
	case "json":
		GenerateJSON(w, schedule)
	default:
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
	}
}

// renderOptions builds the render options from the server configuration
func renderOptions() RenderOptions {
	return RenderOptions{
		Scale:         Cfg.Scale,
		Palette:       Cfg.Palette,
		HolidayRegion: Cfg.HolidayRegion,
	}
}
