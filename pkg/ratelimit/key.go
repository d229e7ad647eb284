package ratelimit

import (
	"net"
	"net/http"
)

// KeyFunc extracts the rate limit key from a request. An empty key skips
// limiting for the request.
type KeyFunc func(*http.Request) string

// ByRemoteIP keys requests by the host part of RemoteAddr. Put it behind a
// middleware such as chi's RealIP when the server runs behind a proxy.
func ByRemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
