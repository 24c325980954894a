package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/zonegen/internal/config"
	"github.com/xxxsen/zonegen/internal/pipeline"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", "", "path to YAML runtime configuration file, optional")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// logger not initialised yet, fallback to stderr
		log.Printf("init config failed, err:%v", err)
		return 1
	}
	logkit := logger.Init(cfg.Log.File, cfg.Log.Level, int(cfg.Log.FileCount),
		int(cfg.Log.FileSize), int(cfg.Log.KeepDays), cfg.Log.Console)
	defer logkit.Sync() //nolint:errcheck

	err = pipeline.Run(context.Background(), pipeline.Options{
		HostFile:          cfg.HostFile,
		HeaderFile:        cfg.HeaderFile,
		BackupDir:         cfg.Backup.Dir,
		SkipMissingBackup: cfg.Backup.SkipMissing,
	})
	if err != nil {
		fmt.Println(err)
		if hint := operatorHint(err); hint != "" {
			fmt.Println(hint)
		}
		logkit.Error("zone generation failed", zap.Error(err))
		return 1
	}
	return 0
}
