// Package cmstest runs a fake query endpoint for tests of code built on the
// cms client.
package cmstest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bilgisen/atlas/internal/cms"
)

type rule struct {
	match  string
	status int
	body   string
}

// Server answers queries by substring match, first rule wins. Unmatched
// queries get a 400 with a query error.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	rules  []rule
	params []map[string]string
	hits   map[string]int
}

// NewServer starts a fake endpoint that is closed with the test.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{hits: make(map[string]int)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Result answers queries containing match with result as the "result" field.
func (s *Server) Result(match, result string) *Server {
	return s.add(rule{match: match, status: http.StatusOK, body: `{"ms":1,"result":` + result + `}`})
}

// Fail answers queries containing match with status and an error envelope.
func (s *Server) Fail(match string, status int) *Server {
	return s.add(rule{match: match, status: status, body: `{"error":{"description":"forced failure","type":"queryError"}}`})
}

func (s *Server) add(r rule) *Server {
	s.mu.Lock()
	s.rules = append(s.rules, r)
	s.mu.Unlock()
	return s
}

// Hits returns how many requests matched the rule for match.
func (s *Server) Hits(match string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[match]
}

// Params returns the decoded parameters of every request, in arrival order.
func (s *Server) Params() []map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]string, len(s.params))
	copy(out, s.params)
	return out
}

// Client returns a cms client pointed at the server.
func (s *Server) Client() *cms.Client {
	return cms.NewClient(cms.Config{
		ProjectID:  "test",
		Dataset:    "production",
		APIVersion: "2024-01-01",
		Timeout:    2 * time.Second,
		BaseURL:    s.URL,
	})
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	query, params := decode(r)

	s.mu.Lock()
	s.params = append(s.params, params)
	var matched *rule
	for i := range s.rules {
		if strings.Contains(query, s.rules[i].match) {
			matched = &s.rules[i]
			s.hits[matched.match]++
			break
		}
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if matched == nil {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"description":"no fixture for query","type":"queryParseError"}}`)
		return
	}
	w.WriteHeader(matched.status)
	io.WriteString(w, matched.body)
}

func decode(r *http.Request) (string, map[string]string) {
	params := make(map[string]string)
	if r.Method == http.MethodPost {
		var payload struct {
			Query  string                     `json:"query"`
			Params map[string]json.RawMessage `json:"params"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		for k, v := range payload.Params {
			params[k] = string(v)
		}
		return payload.Query, params
	}

	q := r.URL.Query()
	for k := range q {
		if strings.HasPrefix(k, "$") {
			params[k[1:]] = q.Get(k)
		}
	}
	return q.Get("query"), params
}
