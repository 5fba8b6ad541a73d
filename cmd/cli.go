package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jnfraga/syntour/internal/config"
)

// Cli holds the state shared between commands.
type Cli struct {
	logger *zap.Logger
	cfg    *config.Config
}

func NewCli() *Cli {
	return &Cli{
		logger: zap.NewNop(),
	}
}

func (c *Cli) Init(cfg *config.Config, verbose bool) error {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.logger = logger
	c.cfg = cfg

	return nil
}

func (c *Cli) Close() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

func (c *Cli) Logger() *zap.Logger {
	return c.logger
}

func (c *Cli) Config() *config.Config {
	return c.cfg
}
