package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GetFileExtension extracts and normalizes the file extension
func GetFileExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

// ContentDisposition builds an attachment Content-Disposition header value
// that preserves the original file name. Non-ASCII names get the RFC 5987
// filename* form with an ASCII fallback so every browser saves the file
// under a sensible name.
func ContentDisposition(originalName string) string {
	fallback := asciiFallback(originalName)
	if fallback == originalName {
		return fmt.Sprintf(`attachment; filename="%s"`, fallback)
	}
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		fallback, extValueEncode(originalName))
}

// extValueEncode percent-encodes everything outside the RFC 5987 attr-char
// set. Notably ', * and % are excluded from attr-char and must be encoded.
func extValueEncode(s string) string {
	const attrChars = "!#$&+-.^_`|~"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(attrChars, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// asciiFallback replaces everything a quoted-string filename cannot carry.
func asciiFallback(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('_')
		case r < 0x20 || r > 0x7e:
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
