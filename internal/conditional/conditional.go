// Package conditional decides whether a GET request can be answered with
// "304 Not Modified" by comparing If-None-Match against a freshness token.
//
// Only exact string equality is supported. There is no If-Match handling,
// no weak validators, and no parsing of comma-separated entity-tag lists.
package conditional

import (
	"net/http"
	"time"

	forecast "github.com/eugener/forecast/internal"
)

const (
	// IfNoneMatch is the "If-None-Match" HTTP request header name.
	IfNoneMatch = "If-None-Match"
	// ETag is the "Etag" HTTP response header name in canonical MIME form,
	// so direct map access on http.Header matches Header.Get.
	ETag = "Etag"
)

// tokenLayout is fixed width: nanoseconds are never trimmed, so two
// distinct instants never render to the same string.
const tokenLayout = "2006-01-02T15:04:05.000000000Z"

// Decision is the outcome of Evaluate.
type Decision int

const (
	// Proceed means the caller must produce the full response.
	Proceed Decision = iota
	// NotModified means the client copy is current; respond with 304.
	NotModified
)

// String returns the metric label for d.
func (d Decision) String() string {
	if d == NotModified {
		return "not_modified"
	}
	return "proceed"
}

// Token renders t as a freshness token.
func Token(t time.Time) string {
	return t.UTC().Format(tokenLayout)
}

// CollectionToken returns the freshness token of the most recently
// modified forecast in fs.
func CollectionToken(fs []forecast.Forecast) string {
	return Token(forecast.MaxLastModified(fs))
}

// Evaluate compares the request's If-None-Match value with token.
//
// A GET whose raw If-None-Match equals token yields NotModified and the
// response headers are left untouched. Every other request gets its ETag
// header replaced with token and yields Proceed.
func Evaluate(token string, w http.ResponseWriter, r *http.Request) Decision {
	isGet := r.Method == http.MethodGet
	vals, hasClientToken := r.Header[IfNoneMatch]
	if isGet && hasClientToken && len(vals) > 0 && vals[0] == token {
		return NotModified
	}
	w.Header()[ETag] = []string{token}
	return Proceed
}

// WriteNotModified writes an empty 304 response.
func WriteNotModified(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotModified)
}
