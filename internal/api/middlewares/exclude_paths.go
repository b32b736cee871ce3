package middlewares

import "net/http"

type Middleware func(http.Handler) http.Handler

// MiddlewaresExcludePaths applies middleware to every route except the
// listed paths (exact match), so signup/login stay reachable without a token.
func MiddlewaresExcludePaths(middleware Middleware, excludePaths ...string) Middleware {
	excluded := make(map[string]bool, len(excludePaths))
	for _, path := range excludePaths {
		excluded[path] = true
	}

	return func(next http.Handler) http.Handler {
		wrapped := middleware(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if excluded[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}
