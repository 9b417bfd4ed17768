// Package config defines the service configuration and its loader.
package config

import (
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/logger"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/server"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/transcript"
)

// ServiceInfo identifies the service.
type ServiceInfo struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
}

// Config is the root configuration for the transcript API.
type Config struct {
	Service    ServiceInfo       `yaml:"service" mapstructure:"service"`
	Server     server.Config     `yaml:"server" mapstructure:"server"`
	Logging    logger.Config     `yaml:"logging" mapstructure:"logging"`
	Transcript transcript.Config `yaml:"transcript" mapstructure:"transcript"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "youtube-transcript-api"
	}
	if c.Service.Version == "" {
		c.Service.Version = "dev"
	}
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Transcript.ApplyDefaults()
}

// Validate checks every section for invalid values.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Transcript.Validate()
}
