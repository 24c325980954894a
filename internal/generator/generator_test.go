package generator

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xxxsen/zonegen/internal/hostconf"
)

type stubGenerator struct {
	body string
	err  error
}

func (s *stubGenerator) Name() string { return "stub" }
func (s *stubGenerator) Type() string { return "stub" }
func (s *stubGenerator) Generate(ctx context.Context, w io.Writer, header []string, hosts, domains []hostconf.Record) error {
	if err := WriteHeader(w, header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s.body); err != nil {
		return err
	}
	return s.err
}

func TestRegisterAndMakeGenerator(t *testing.T) {
	Register("stub", func(name string) (IZoneGenerator, error) {
		return &stubGenerator{}, nil
	})
	g, err := MakeGenerator("stub", "test")
	if err != nil {
		t.Fatalf("MakeGenerator error: %v", err)
	}
	if g.Type() != "stub" {
		t.Fatalf("unexpected generator type: %s", g.Type())
	}
	if _, err := MakeGenerator("unknown", "test"); err == nil {
		t.Fatalf("expected error for unknown generator type")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zone")
	if err := os.WriteFile(path, []byte("previous content that is longer\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	gen := &stubGenerator{body: "record\n"}
	if err := WriteFile(context.Background(), gen, path, []string{"; header\n"}, nil, nil); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "; header\n\nrecord\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestWriteFileKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zone")
	prev := "; previous zone\n"
	if err := os.WriteFile(path, []byte(prev), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	failure := &RecordMismatchError{Index: 2, Hosts: 2, Domains: 3}
	gen := &stubGenerator{body: "partial\n", err: failure}
	err := WriteFile(context.Background(), gen, path, nil, nil, nil)
	var mismatch *RecordMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected RecordMismatchError, got %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != prev {
		t.Fatalf("previous zone file modified: %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	mismatch := &RecordMismatchError{Index: 2, Hosts: 2, Domains: 3}
	if !strings.Contains(mismatch.Error(), "1:1") {
		t.Fatalf("mismatch message should mention 1:1: %s", mismatch.Error())
	}
	malformed := &MalformedAddressError{Host: "ns.example.com.", Value: "10.1"}
	if !strings.Contains(malformed.Error(), "10.1") {
		t.Fatalf("malformed message should carry the value: %s", malformed.Error())
	}
}
