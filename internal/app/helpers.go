package app

import (
	"io"
	"log"
	"net/http"
)

// RequireMethod validates that the request uses the specified HTTP method
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, ErrMethodNotAllowed, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// ScheduleFromRequest extracts the raw schedule text from a request: the
// "schedule" form field when the body is a form, otherwise the body itself.
func ScheduleFromRequest(r *http.Request) string {
	if err := r.ParseForm(); err == nil {
		if v := r.PostForm.Get("schedule"); v != "" {
			return v
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		return ""
	}
	return string(body)
}
