package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionMiddleware transparently gzips responses for clients that accept
// it.
func CompressionMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
