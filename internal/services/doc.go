// Package services implements the HTTP client surface for the course
// backend.
//
// [Client] is the typed implementation of [API]: one method per endpoint,
// bearer credentials injected through an [golang.org/x/oauth2] transport
// whose token source re-reads the persisted token on every request, and a
// small client-side rate limiter on outbound calls. Authenticated methods
// short-circuit locally (no network) when no token exists.
//
// Errors follow a fixed taxonomy: non-2xx responses become [StatusError]
// values carrying the backend's own error message when it sent one, and
// [IsUnauthorized] identifies the 401 class that forces logout upstream.
// Nothing here retries, backs off, or applies request timeouts.
//
// [APIService] is a raw GET/POST escape hatch backing the `api` debug
// command.
package services
