package utils

// ContextKey namespaces the values the middleware attaches to a request.
type ContextKey string
