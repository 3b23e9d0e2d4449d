// Package filex provides small helpers for working with user-supplied files.
package filex

import "strings"

// DefaultMimeType is used when a client does not report a content type.
const DefaultMimeType = "application/octet-stream"

// SanitizeName rewrites an original filename so it is safe to embed in an
// object-storage key: every character outside [a-zA-Z0-9.-_] becomes '_'.
// The original name is preserved separately in the file's metadata row.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// MimeOrDefault returns mime unchanged if non-empty, DefaultMimeType otherwise.
func MimeOrDefault(mime string) string {
	if strings.TrimSpace(mime) == "" {
		return DefaultMimeType
	}
	return mime
}
