package backup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	ZoneBackupName    = "zoneFile.bak"
	ReverseBackupName = "reverseFile.bak"
)

// Option configures a backup run.
type Option func(*options)

type options struct {
	dir         string
	skipMissing bool
}

// WithDir sets the directory receiving the backup files.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithSkipMissing tolerates declared zone files that do not exist yet.
func WithSkipMissing(v bool) Option {
	return func(o *options) {
		o.skipMissing = v
	}
}

// Run copies the current zone and reverse zone files to their fixed backup
// names, overwriting any previous backup. An empty path is skipped. A declared
// path that does not exist fails unless WithSkipMissing is set.
func Run(ctx context.Context, zoneFile, reverseZoneFile string, opts ...Option) error {
	o := &options{dir: "."}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.copy(ctx, zoneFile, ZoneBackupName); err != nil {
		return err
	}
	if err := o.copy(ctx, reverseZoneFile, ReverseBackupName); err != nil {
		return err
	}
	return nil
}

func (o *options) copy(ctx context.Context, src, name string) error {
	if src == "" {
		return nil
	}
	logger := logutil.GetLogger(ctx).With(zap.String("src", src))
	data, err := os.ReadFile(filepath.Clean(src))
	if err != nil {
		if o.skipMissing && errors.Is(err, fs.ErrNotExist) {
			logger.Info("zone file not found, skip backup")
			return nil
		}
		return fmt.Errorf("backup: read %s: %w", src, err)
	}
	dst := filepath.Join(o.dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("backup: write %s: %w", dst, err)
	}
	logger.Debug("backup zone file succ", zap.String("dst", dst), zap.Int("size", len(data)))
	return nil
}
