package transcript

import "fmt"

// Config holds transcript retrieval configuration.
type Config struct {
	// DefaultLanguage is used by the GET convenience endpoint when no
	// language query parameter is given.
	DefaultLanguage string `yaml:"default_language" mapstructure:"default_language"`
	// FallbackLanguages are tried, in order, after the requested language.
	FallbackLanguages []string `yaml:"fallback_languages" mapstructure:"fallback_languages"`
	// FetchTimeout bounds a single transcript fetch, in seconds.
	FetchTimeout int `yaml:"fetch_timeout" mapstructure:"fetch_timeout"`
	// PreserveFormatting keeps caption markup in the transcript text.
	PreserveFormatting bool `yaml:"preserve_formatting" mapstructure:"preserve_formatting"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "pt"
	}
	if len(c.FallbackLanguages) == 0 {
		c.FallbackLanguages = []string{"en"}
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 60
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.FetchTimeout < 0 {
		return fmt.Errorf("transcript.fetch_timeout must be non-negative (got: %d)", c.FetchTimeout)
	}
	return nil
}
