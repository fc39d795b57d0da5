package app

import (
	"os"
	"time"

	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/logger"

	"go.uber.org/zap"
)

// 运行模式
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	switch opts.Mode {
	case ModeAll, ModeAPI, ModeWorker:
	default:
		opts.Mode = ModeAll
	}
	return opts
}
