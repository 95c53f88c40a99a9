package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// SentEmail is a message received by the Resend mock.
type SentEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// ResendMock imitates the Resend emails endpoint.
type ResendMock struct {
	server *httptest.Server

	mu         sync.Mutex
	sent       []SentEmail
	failStatus int
}

// NewResendServer starts a mock accepting POST /emails.
func NewResendServer() *ResendMock {
	m := &ResendMock{}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *ResendMock) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/emails" {
		http.NotFound(w, r)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if m.failStatus != 0 {
		w.WriteHeader(m.failStatus)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": m.failStatus,
			"name":       "validation_error",
			"message":    "The to field is invalid.",
		})
		return
	}

	var email SentEmail
	if err := json.NewDecoder(r.Body).Decode(&email); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	m.sent = append(m.sent, email)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": fmt.Sprintf("re_%d", len(m.sent))})
}

// URL is the base URL to hand to the Resend client.
func (m *ResendMock) URL() string {
	return m.server.URL
}

// FailWith makes every following request fail with status.
func (m *ResendMock) FailWith(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failStatus = status
}

// Sent returns a copy of the messages received so far.
func (m *ResendMock) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentEmail(nil), m.sent...)
}

// Reset forgets received messages and clears any failure mode.
func (m *ResendMock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failStatus = 0
}

// Close shuts the server down.
func (m *ResendMock) Close() {
	m.server.Close()
}
