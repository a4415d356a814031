package media

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

const (
	mimeOctetStream = "application/octet-stream"
	sniffBytes      = 512 // http.DetectContentType reads at most 512 bytes
)

// mimeExtensions maps the MIME types this app stores to preferred file
// extensions.
var mimeExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
	"text/plain":      ".txt",
}

// extFromMIME returns the file extension for a MIME type, or "" when
// the type is unknown.
func extFromMIME(mimeType string) string {
	return mimeExtensions[normalizeMIME(mimeType)]
}

// normalizeMIME strips parameters like charset and lowercases the base
// type.
func normalizeMIME(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(strings.ToLower(mimeType))
}

// matchesMIME reports whether a MIME type matches any allowed pattern.
// Patterns may end in "/*" to match a whole top-level type.
func matchesMIME(mimeType string, allowed []string) bool {
	mimeType = normalizeMIME(mimeType)

	for _, pattern := range allowed {
		pattern = strings.TrimSpace(strings.ToLower(pattern))

		if mimeType == pattern {
			return true
		}
		if strings.HasSuffix(pattern, "/*") &&
			strings.HasPrefix(mimeType, strings.TrimSuffix(pattern, "*")) {
			return true
		}
	}

	return false
}

// sniffContentType detects the MIME type from magic bytes and returns
// a seekable reader positioned at the start. The AWS SDK needs
// io.ReadSeeker to compute the payload hash; non-seekable input is
// buffered in full.
func sniffContentType(r io.Reader) (string, io.ReadSeeker) {
	if rs, ok := r.(io.ReadSeeker); ok {
		buf := make([]byte, sniffBytes)
		n, _ := rs.Read(buf)
		_, _ = rs.Seek(0, io.SeekStart)
		if n > 0 {
			return http.DetectContentType(buf[:n]), rs
		}
		return mimeOctetStream, rs
	}

	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return mimeOctetStream, bytes.NewReader(nil)
	}

	return http.DetectContentType(data), bytes.NewReader(data)
}
