package main

import (
	"github.com/joho/godotenv"

	"github.com/ytbili/subpipe/internal/config"
	"github.com/ytbili/subpipe/internal/service"
)

// commandContext lazily loads configuration so commands that fail flag
// parsing never touch the environment.
type commandContext struct {
	cfg      *config.Config
	pipeline *service.Pipeline
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensurePipeline() (*service.Pipeline, error) {
	if c.pipeline != nil {
		return c.pipeline, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.pipeline = service.NewPipeline(cfg)
	return c.pipeline, nil
}
