package header

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadKeepsLineEndings(t *testing.T) {
	content := "$TTL 86400\n@ IN SOA ns.example.com. admin.example.com. (1 3600 900 604800 86400)\n"
	path := filepath.Join(t.TempDir(), "header.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	lines, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "\n") {
		t.Fatalf("line ending dropped: %q", lines[0])
	}
	if strings.Join(lines, "") != content {
		t.Fatalf("header not reproduced verbatim")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"; header\n", []string{"; header\n"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\n\nb\n", []string{"a\n", "\n", "b\n"}},
	}
	for _, tt := range tests {
		got := Split(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("Split(%q) = %q, want %q", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "header.conf"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
