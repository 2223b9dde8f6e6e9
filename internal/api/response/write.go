package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the outer shape of every successful response
type Envelope struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
	Data    any  `json:"data"`
}

// JSON writes data wrapped in a success envelope
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Data: data})
}
