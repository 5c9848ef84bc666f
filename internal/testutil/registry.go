// Package testutil holds helpers shared by the package tests: a stub address
// registry backed by httptest and a goroutine-safe output buffer.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RentemestervejBody is a one-record registry response in the mini structure.
const RentemestervejBody = `[{"id":"0a3f50a0-4660-32b8-e044-0003ba298018","status":1,"darstatus":3,"vejkode":"5804","vejnavn":"Rentemestervej","adresseringsvejnavn":"Rentemestervej","husnr":"8","etage":"st","dør":null,"supplerendebynavn":null,"postnr":"2400","postnrnavn":"København NV","stormodtagerpostnr":null,"stormodtagerpostnrnavn":null,"kommunekode":"0101","adgangsadresseid":"0a3f507a-e179-32b8-e044-0003ba298018","x":12.53547185,"y":55.70481955,"href":"https://dawa.aws.dk/adresser/0a3f50a0-4660-32b8-e044-0003ba298018","betegnelse":"Rentemestervej 8, st., 2400 København NV"}]`

// StubRegistry is an httptest server that answers every request with a fixed
// status and body and remembers what it was asked.
type StubRegistry struct {
	server *httptest.Server
	status int
	body   string

	mu       sync.Mutex
	requests []*http.Request
}

// NewStubRegistry starts a stub that replies with status and body. The server
// is closed when the test finishes.
func NewStubRegistry(t *testing.T, status int, body string) *StubRegistry {
	t.Helper()

	s := &StubRegistry{status: status, body: body}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.server.Close)
	return s
}

func (s *StubRegistry) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	s.mu.Unlock()

	if s.status == http.StatusOK {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	}
	w.WriteHeader(s.status)
	_, _ = w.Write([]byte(s.body))
}

// URL returns the stub's base URL.
func (s *StubRegistry) URL() string {
	return s.server.URL
}

// Hits returns how many requests the stub has served.
func (s *StubRegistry) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request, or nil if none arrived.
func (s *StubRegistry) LastRequest() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}
