package common

// RequestIDHeaderName is the HTTP header carrying the per-request id that
// is echoed back to the caller and attached to every log line.
const RequestIDHeaderName = "X-Request-ID"

// RequestIDKey is the gin context key the request id is stored under.
const RequestIDKey = "request_id"
