package api

import "net/http"

// apiKeyHeader is the header the external application authenticates with.
const apiKeyHeader = "api_key"

// requireAPIKey rejects any request whose shared-secret header does not
// match the configured key. The body is never inspected first.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(apiKeyHeader) != s.cfg.APIKey {
			s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
