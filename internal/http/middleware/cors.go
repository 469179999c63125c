package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CORSPolicy lists what cross-origin browsers may do on a route group.
// An Origins entry of "*" echoes any Origin back.
type CORSPolicy struct {
	Origins []string
	Methods []string
	Headers []string
	MaxAge  time.Duration
}

func (p CORSPolicy) allows(origin string) bool {
	for _, o := range p.Origins {
		o = strings.TrimSpace(o)
		if o == "*" || (o != "" && o == origin) {
			return true
		}
	}
	return false
}

// CORS applies policy to the routes it wraps. Only the contact API is
// mounted behind it; pages and assets are same-origin.
func CORS(policy CORSPolicy) func(http.Handler) http.Handler {
	methods := strings.Join(policy.Methods, ", ")
	headers := strings.Join(policy.Headers, ", ")
	maxAge := ""
	if policy.MaxAge > 0 {
		maxAge = strconv.Itoa(int(policy.MaxAge.Seconds()))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || !policy.allows(origin) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if methods != "" {
				h.Set("Access-Control-Allow-Methods", methods)
			}
			if headers != "" {
				h.Set("Access-Control-Allow-Headers", headers)
			}
			if maxAge != "" {
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// Preflight answers OPTIONS on a route with its Allow list. CORS answers
// cross-origin preflights before this runs.
func Preflight(methods ...string) http.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		w.WriteHeader(http.StatusNoContent)
	}
}
