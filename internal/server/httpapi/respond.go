package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

const (
	msgNoImage       = "No image data provided"
	msgInvalidImage  = "Invalid image data"
	msgInternalError = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, waste.ClassifyResponse{Error: message})
}
