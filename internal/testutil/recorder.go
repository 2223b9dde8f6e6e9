package testutil

import (
	"net/http"
	"sync"
)

// RequestRecorder wraps a handler and remembers every request it served
// as "METHOD /path", in arrival order.
type RequestRecorder struct {
	next http.Handler

	mu       sync.Mutex
	requests []string
}

// NewRequestRecorder wraps next
func NewRequestRecorder(next http.Handler) *RequestRecorder {
	return &RequestRecorder{next: next}
}

// ServeHTTP records the request and passes it on
func (r *RequestRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.requests = append(r.requests, req.Method+" "+req.URL.Path)
	r.mu.Unlock()
	r.next.ServeHTTP(w, req)
}

// Requests returns a copy of the recorded requests
func (r *RequestRecorder) Requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.requests))
	copy(out, r.requests)
	return out
}

// Count returns how many recorded requests used the given method
func (r *RequestRecorder) Count(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, req := range r.requests {
		if len(req) > len(method) && req[:len(method)+1] == method+" " {
			n++
		}
	}
	return n
}

// Reset forgets all recorded requests
func (r *RequestRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = nil
}
