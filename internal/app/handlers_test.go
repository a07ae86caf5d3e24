package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postText(target, body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
}

func TestGetConfig(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	w := httptest.NewRecorder()

	GetConfig(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var config struct {
		SampleSchedule string   `json:"sampleSchedule"`
		Palette        []string `json:"palette"`
		Protected      bool     `json:"protected"`
	}
	if err := json.NewDecoder(w.Body).Decode(&config); err != nil {
		t.Fatalf("Failed to decode config: %v", err)
	}

	if config.SampleSchedule == "" {
		t.Error("Config should include the sample schedule")
	}
	if len(config.Palette) != len(DefaultPalette) {
		t.Errorf("Expected %d palette colors, got %d", len(DefaultPalette), len(config.Palette))
	}
}

func TestHandleParse(t *testing.T) {
	w := httptest.NewRecorder()

	HandleParse(w, postText("/api/parse", DefaultSampleSchedule))

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, w.Body.String())
	}

	var data struct {
		Sprints []SprintRecord `json:"sprints"`
	}
	if err := json.NewDecoder(w.Body).Decode(&data); err != nil {
		t.Fatalf("Failed to decode parse response: %v", err)
	}

	if len(data.Sprints) != 3 {
		t.Fatalf("Expected 3 sprints, got %d", len(data.Sprints))
	}
	for i, want := range []string{"0", "1", "2"} {
		if data.Sprints[i].Name != want {
			t.Errorf("Sprint %d: expected name %q, got %q", i, want, data.Sprints[i].Name)
		}
	}
}

func TestHandleParseFormField(t *testing.T) {
	form := url.Values{}
	form.Set("schedule", DefaultSampleSchedule)

	req := postText("/api/parse", form.Encode())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	HandleParse(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Result().StatusCode, w.Body.String())
	}

	var data struct {
		Sprints []SprintRecord `json:"sprints"`
	}
	if err := json.NewDecoder(w.Body).Decode(&data); err != nil {
		t.Fatalf("Failed to decode parse response: %v", err)
	}
	if len(data.Sprints) != 3 {
		t.Errorf("Expected 3 sprints, got %d", len(data.Sprints))
	}
}

func TestHandleParseBadDate(t *testing.T) {
	w := httptest.NewRecorder()

	HandleParse(w, postText("/api/parse", "header\n0 2025-99-99 2025-03-21"))

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(w.Body.String(), "2025-99-99") {
		t.Errorf("Error should name the offending token, got: %s", w.Body.String())
	}
}

func TestHandleRender(t *testing.T) {
	w := httptest.NewRecorder()

	HandleRender(w, postText("/api/render", DefaultSampleSchedule))

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, w.Body.String())
	}
	if got := resp.Header.Get("Content-Type"); got != "image/png" {
		t.Errorf("Expected Content-Type image/png, got %s", got)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), pngSignature) {
		t.Error("Render body should start with the PNG signature")
	}
}

func TestHandleRenderEmptySchedule(t *testing.T) {
	// Header-only input parses to an empty schedule: no image, but a
	// clear message rather than a server error
	w := httptest.NewRecorder()

	HandleRender(w, postText("/api/render", "Sprint Name Start Date End Date"))

	resp := w.Result()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d", resp.StatusCode)
	}
	if !strings.Contains(w.Body.String(), "No sprints found") {
		t.Errorf("Expected a user-visible message, got: %s", w.Body.String())
	}
}

func TestHandleRenderInvertedRange(t *testing.T) {
	// An end date months before the start parses fine but covers no
	// months. The handler must answer with the empty-schedule message.
	w := httptest.NewRecorder()

	HandleRender(w, postText("/api/render", "header\n0 2025-05-01 2025-03-10"))

	resp := w.Result()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d", resp.StatusCode)
	}
	if !strings.Contains(w.Body.String(), "No sprints found") {
		t.Errorf("Expected a user-visible message, got: %s", w.Body.String())
	}
}

func TestHandleRenderBadDate(t *testing.T) {
	w := httptest.NewRecorder()

	HandleRender(w, postText("/api/render", "header\n0 notadate 2025-03-21"))

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(w.Body.String(), "notadate") {
		t.Errorf("Error should name the offending token, got: %s", w.Body.String())
	}
}

func TestHandleRenderMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/render", nil)
	w := httptest.NewRecorder()

	HandleRender(w, req)

	if w.Result().StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Result().StatusCode)
	}
}

func TestHandleDownload(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
	}{
		{"png", "image/png"},
		{"ics", "text/calendar"},
		{"csv", "text/csv"},
		{"json", "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w := httptest.NewRecorder()

			HandleDownload(w, postText("/api/download?format="+tt.format, DefaultSampleSchedule))

			resp := w.Result()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, w.Body.String())
			}
			if got := resp.Header.Get("Content-Type"); !strings.Contains(got, tt.contentType) {
				t.Errorf("Expected Content-Type %s, got %s", tt.contentType, got)
			}
			if resp.Header.Get("Content-Disposition") == "" {
				t.Error("Download should set Content-Disposition")
			}
		})
	}
}

func TestHandleDownloadInvalidFormat(t *testing.T) {
	w := httptest.NewRecorder()

	HandleDownload(w, postText("/api/download?format=bmp", DefaultSampleSchedule))

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Result().StatusCode)
	}
}

func TestHandleDownloadEmptySchedule(t *testing.T) {
	w := httptest.NewRecorder()

	HandleDownload(w, postText("/api/download?format=png", "header only line"))

	if w.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", w.Result().StatusCode)
	}
}

func TestHandleDownloadInvertedRange(t *testing.T) {
	w := httptest.NewRecorder()

	HandleDownload(w, postText("/api/download?format=png", "header\n0 2025-05-01 2025-03-10"))

	if w.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", w.Result().StatusCode)
	}
}
