// Package naming generates storage paths for uploaded files.
package naming

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// StoragePath composes the storage path for an uploaded file:
// uploads/YYYY/MM/DD/YYYYMMDD_HHMMSS_<base><ext>. Paths are lexically
// sortable by upload time to second granularity. Two uploads of the same
// name within the same second produce the same path; uniqueness at that
// resolution is handled by the caller (see WithSuffix).
func StoragePath(originalName string, now time.Time) string {
	base, ext := splitName(sanitize(originalName))
	return fmt.Sprintf("uploads/%s/%s_%s%s",
		now.Format("2006/01/02"), now.Format(timestampLayout), base, ext)
}

// WithSuffix inserts a numeric suffix before the extension, for retrying
// after a same-second collision: x.pdf -> x-1.pdf.
func WithSuffix(storagePath string, n int) string {
	base, ext := splitName(storagePath)
	return fmt.Sprintf("%s-%d%s", base, n, ext)
}

// sanitize strips directory components and leading dots from a
// client-supplied filename so it cannot escape the upload root or hide as
// a dotfile.
func sanitize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.TrimLeft(name, ".")
	if name == "" || name == "/" {
		return "file"
	}
	return name
}

// splitName splits on the last dot. Names without a dot have an empty
// extension; the extension keeps its leading dot. A dot-only extension is
// treated as none so generated paths never end in a dot.
func splitName(name string) (base, ext string) {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return name[:i], name[i:]
	}
	return strings.TrimRight(name, "."), ""
}
