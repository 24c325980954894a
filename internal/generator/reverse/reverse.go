package reverse

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/miekg/dns"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/zonegen/internal/generator"
	"github.com/xxxsen/zonegen/internal/hostconf"
	"go.uber.org/zap"
)

const v4Suffix = ".in-addr.arpa"

type reverseGenerator struct {
	name string
}

func (r *reverseGenerator) Name() string {
	return r.name
}

func (r *reverseGenerator) Type() string {
	return generator.TypeReverse
}

// Generate writes the header, then one NS line per host binding the /24
// reverse name of its address to the host name. Domains are not used.
func (r *reverseGenerator) Generate(ctx context.Context, w io.Writer, header []string, hosts, _ []hostconf.Record) error {
	if err := generator.WriteHeader(w, header); err != nil {
		return err
	}
	for _, h := range hosts {
		arpa, err := ReverseName(h.Value)
		if err != nil {
			return &generator.MalformedAddressError{Host: h.Name, Value: h.Value}
		}
		generator.WarnInvalidName(ctx, "reverse", arpa)
		if _, err := fmt.Fprintf(w, "%s \tIN \tNS \t%s\n", arpa, h.Name); err != nil {
			return err
		}
	}
	logutil.GetLogger(ctx).Debug("reverse zone generated", zap.String("generator", r.name), zap.Int("host_count", len(hosts)))
	return nil
}

// ReverseName turns a.b.c.d into c.b.a.in-addr.arpa., the class C zone the
// address lives in. The last octet is dropped and octets are not checked.
func ReverseName(addr string) (string, error) {
	octets := strings.Split(addr, ".")
	if len(octets) < 3 {
		return "", fmt.Errorf("address:%q has %d octet(s)", addr, len(octets))
	}
	return dns.Fqdn(octets[2] + "." + octets[1] + "." + octets[0] + v4Suffix), nil
}

func createReverseGenerator(name string) (generator.IZoneGenerator, error) {
	return &reverseGenerator{name: name}, nil
}

func init() {
	generator.Register(generator.TypeReverse, createReverseGenerator)
}
