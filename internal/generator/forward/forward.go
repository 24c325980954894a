package forward

import (
	"context"
	"fmt"
	"io"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/zonegen/internal/generator"
	"github.com/xxxsen/zonegen/internal/hostconf"
	"go.uber.org/zap"
)

type forwardGenerator struct {
	name string
}

func (f *forwardGenerator) Name() string {
	return f.name
}

func (f *forwardGenerator) Type() string {
	return generator.TypeForward
}

// Generate writes the header, then one domain line followed by its host line
// for every DOMAIN entry, paired by position:
//
//	example.com.		IN	NS	ns.example.com.
//	ns.example.com.  	IN	A	192.168.1.1
func (f *forwardGenerator) Generate(ctx context.Context, w io.Writer, header []string, hosts, domains []hostconf.Record) error {
	if len(hosts) != len(domains) {
		return &generator.RecordMismatchError{
			Index:   min(len(hosts), len(domains)),
			Hosts:   len(hosts),
			Domains: len(domains),
		}
	}
	if err := generator.WriteHeader(w, header); err != nil {
		return err
	}
	for i, d := range domains {
		h := hosts[i]
		generator.WarnInvalidName(ctx, "domain", d.Name)
		generator.WarnInvalidName(ctx, "host", h.Name)
		if _, err := fmt.Fprintf(w, "%s\t\tIN\t%s\t%s\n", d.Name, d.Type, d.Value); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s  \tIN\t%s\t%s\n", h.Name, h.Type, h.Value); err != nil {
			return err
		}
	}
	logutil.GetLogger(ctx).Debug("forward zone generated", zap.String("generator", f.name), zap.Int("pair_count", len(domains)))
	return nil
}

func createForwardGenerator(name string) (generator.IZoneGenerator, error) {
	return &forwardGenerator{name: name}, nil
}

func init() {
	generator.Register(generator.TypeForward, createForwardGenerator)
}
