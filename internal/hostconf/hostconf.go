package hostconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	KeywordZoneFile        = "ZONE_FILE:"
	KeywordReverseZoneFile = "REVERSE_ZONE_FILE:"
	KeywordHost            = "HOST:"
	KeywordDomain          = "DOMAIN:"
)

const maxLineSize = 1 << 20

var (
	ErrNoZoneFile        = errors.New("hostconf: no ZONE_FILE: entry declared")
	ErrNoReverseZoneFile = errors.New("hostconf: no REVERSE_ZONE_FILE: entry declared")
)

// Record is a single HOST: or DOMAIN: entry.
type Record struct {
	Name  string
	Type  string
	Value string
}

// HostConfig is the parsed content of a host configuration file.
// An empty ZoneFile or ReverseZoneFile means the key was not declared.
type HostConfig struct {
	ZoneFile        string
	ReverseZoneFile string
	Hosts           []Record
	Domains         []Record
}

// Load opens and parses the host configuration file at path.
func Load(path string) (*HostConfig, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("hostconf: open file %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("hostconf: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads whitespace separated keyword lines. Unknown keywords and blank
// lines are skipped, repeated zone file keys keep the last value.
func Parse(r io.Reader) (*HostConfig, error) {
	cfg := &HostConfig{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case KeywordZoneFile:
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: %s requires a path", lineNum, fields[0])
			}
			cfg.ZoneFile = fields[1]
		case KeywordReverseZoneFile:
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: %s requires a path", lineNum, fields[0])
			}
			cfg.ReverseZoneFile = fields[1]
		case KeywordHost:
			rec, err := parseRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			cfg.Hosts = append(cfg.Hosts, rec)
		case KeywordDomain:
			rec, err := parseRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			cfg.Domains = append(cfg.Domains, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read host config: %w", err)
	}
	return cfg, nil
}

// fields beyond the third value are ignored
func parseRecord(fields []string) (Record, error) {
	if len(fields) < 4 {
		return Record{}, fmt.Errorf("%s expects name, type and value, got %d field(s)", fields[0], len(fields)-1)
	}
	return Record{
		Name:  fields[1],
		Type:  fields[2],
		Value: fields[3],
	}, nil
}

// Validate reports a missing zone file declaration. Both paths are required
// before anything is backed up or generated.
func (c *HostConfig) Validate() error {
	if c.ZoneFile == "" {
		return ErrNoZoneFile
	}
	if c.ReverseZoneFile == "" {
		return ErrNoReverseZoneFile
	}
	return nil
}
