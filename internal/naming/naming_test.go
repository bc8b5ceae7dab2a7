package naming

import (
	"testing"
	"time"
)

func TestStoragePath(t *testing.T) {
	at := time.Date(2025, 12, 4, 14, 30, 59, 0, time.UTC)

	tests := []struct {
		name         string
		originalName string
		want         string
	}{
		{
			name:         "name with extension",
			originalName: "report.pdf",
			want:         "uploads/2025/12/04/20251204_143059_report.pdf",
		},
		{
			name:         "name without extension has no trailing dot",
			originalName: "readme",
			want:         "uploads/2025/12/04/20251204_143059_readme",
		},
		{
			name:         "multiple dots split on the last one",
			originalName: "archive.tar.gz",
			want:         "uploads/2025/12/04/20251204_143059_archive.tar.gz",
		},
		{
			name:         "trailing dot yields no extension",
			originalName: "weird.",
			want:         "uploads/2025/12/04/20251204_143059_weird",
		},
		{
			name:         "run of trailing dots yields no extension",
			originalName: "weird..",
			want:         "uploads/2025/12/04/20251204_143059_weird",
		},
		{
			name:         "directory components are stripped",
			originalName: "../../etc/passwd",
			want:         "uploads/2025/12/04/20251204_143059_passwd",
		},
		{
			name:         "windows-style path is stripped",
			originalName: `C:\Users\me\notes.txt`,
			want:         "uploads/2025/12/04/20251204_143059_notes.txt",
		},
		{
			name:         "leading dots are dropped",
			originalName: ".env",
			want:         "uploads/2025/12/04/20251204_143059_env",
		},
		{
			name:         "empty name falls back",
			originalName: "",
			want:         "uploads/2025/12/04/20251204_143059_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StoragePath(tt.originalName, at); got != tt.want {
				t.Errorf("StoragePath(%q) = %q, want %q", tt.originalName, got, tt.want)
			}
		})
	}
}

// Paths generated later must sort later, to second granularity.
func TestStoragePathSortsByTime(t *testing.T) {
	earlier := StoragePath("a.txt", time.Date(2025, 12, 4, 14, 30, 59, 0, time.UTC))
	later := StoragePath("a.txt", time.Date(2025, 12, 4, 14, 31, 0, 0, time.UTC))
	if !(earlier < later) {
		t.Errorf("expected %q < %q", earlier, later)
	}
}

func TestWithSuffix(t *testing.T) {
	tests := []struct {
		path string
		n    int
		want string
	}{
		{"uploads/2025/12/04/20251204_143059_report.pdf", 1, "uploads/2025/12/04/20251204_143059_report-1.pdf"},
		{"uploads/2025/12/04/20251204_143059_readme", 2, "uploads/2025/12/04/20251204_143059_readme-2"},
	}

	for _, tt := range tests {
		if got := WithSuffix(tt.path, tt.n); got != tt.want {
			t.Errorf("WithSuffix(%q, %d) = %q, want %q", tt.path, tt.n, got, tt.want)
		}
	}
}
