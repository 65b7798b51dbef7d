// Package requestid attaches a correlation identifier to every HTTP
// request.
//
// The middleware reuses a valid client-supplied X-Request-ID header or
// generates a UUID, stores it in the request context, and echoes it back
// in the response. LoggerExtractor feeds the ID into structured logs so
// records belonging to one request can be correlated.
package requestid
