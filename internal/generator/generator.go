package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/miekg/dns"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/zonegen/internal/hostconf"
	"go.uber.org/zap"
)

const (
	TypeForward = "forward"
	TypeReverse = "reverse"
)

type IZoneGenerator interface {
	Name() string
	Type() string
	Generate(ctx context.Context, w io.Writer, header []string, hosts, domains []hostconf.Record) error
}

type Factory func(name string) (IZoneGenerator, error)

var m = make(map[string]Factory)

func Register(typ string, fac Factory) {
	m[typ] = fac
}

func MakeGenerator(typ string, name string) (IZoneGenerator, error) {
	cr, ok := m[typ]
	if !ok {
		return nil, fmt.Errorf("generator type:%s not found", typ)
	}
	return cr(name)
}

// WriteFile renders the zone in memory and only then replaces path, so a
// generation error leaves the previous file in place.
func WriteFile(ctx context.Context, gen IZoneGenerator, path string, header []string, hosts, domains []hostconf.Record) error {
	buf := &bytes.Buffer{}
	if err := gen.Generate(ctx, buf, header, hosts, domains); err != nil {
		return fmt.Errorf("generate %s zone failed, name:%s, err:%w", gen.Type(), gen.Name(), err)
	}
	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s zone file %s: %w", gen.Type(), path, err)
	}
	logutil.GetLogger(ctx).Info("write zone file succ",
		zap.String("generator", gen.Name()), zap.String("path", path), zap.Int("size", buf.Len()))
	return nil
}

// WriteHeader copies the header lines verbatim followed by a single newline.
func WriteHeader(w io.Writer, header []string) error {
	for _, line := range header {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WarnInvalidName logs names the DNS library would reject. Output is not
// blocked on it.
func WarnInvalidName(ctx context.Context, field string, name string) {
	if _, ok := dns.IsDomainName(name); ok {
		return
	}
	logutil.GetLogger(ctx).Warn("not a valid domain name", zap.String("field", field), zap.String("name", name))
}
