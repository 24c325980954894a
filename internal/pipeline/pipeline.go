package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/trace"
	"github.com/xxxsen/zonegen/internal/backup"
	"github.com/xxxsen/zonegen/internal/generator"
	_ "github.com/xxxsen/zonegen/internal/generator/register"
	"github.com/xxxsen/zonegen/internal/header"
	"github.com/xxxsen/zonegen/internal/hostconf"
	"go.uber.org/zap"
)

// Options carries every path a run touches.
type Options struct {
	HostFile          string
	HeaderFile        string
	BackupDir         string
	SkipMissingBackup bool
}

// Run reads the host config and header, backs up the current zone files and
// writes the forward then the reverse zone. It stops at the first error.
func Run(ctx context.Context, opts Options) error {
	ctx = trace.WithTraceId(ctx, uuid.NewString())
	logger := logutil.GetLogger(ctx)
	logger.Info("zone generation start", zap.String("host_file", opts.HostFile), zap.String("header_file", opts.HeaderFile))

	cfg, err := hostconf.Load(opts.HostFile)
	if err != nil {
		return err
	}
	hdr, err := header.Load(opts.HeaderFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Info("host config loaded",
		zap.String("zone_file", cfg.ZoneFile), zap.String("reverse_zone_file", cfg.ReverseZoneFile),
		zap.Int("host_count", len(cfg.Hosts)), zap.Int("domain_count", len(cfg.Domains)))

	if err := backup.Run(ctx, cfg.ZoneFile, cfg.ReverseZoneFile,
		backup.WithDir(opts.BackupDir), backup.WithSkipMissing(opts.SkipMissingBackup)); err != nil {
		return err
	}

	targets := []struct {
		typ  string
		path string
	}{
		{generator.TypeForward, cfg.ZoneFile},
		{generator.TypeReverse, cfg.ReverseZoneFile},
	}
	for _, tg := range targets {
		gen, err := generator.MakeGenerator(tg.typ, tg.typ)
		if err != nil {
			return fmt.Errorf("make generator failed, type:%s, err:%w", tg.typ, err)
		}
		if err := generator.WriteFile(ctx, gen, tg.path, hdr, cfg.Hosts, cfg.Domains); err != nil {
			return err
		}
	}
	logger.Info("zone generation complete")
	return nil
}
