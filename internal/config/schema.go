package config

// Config holds pdfmultitool configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Log    LogConfig `mapstructure:"log" yaml:"log" json:"log"`
	PDF    PDFConfig `mapstructure:"pdf" yaml:"pdf" json:"pdf"`
	Output string    `mapstructure:"output" yaml:"output" json:"output"` // "yaml" or "json"
}

// LogConfig controls the logger built by the logging package.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`    // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format" json:"format"` // text or json
	// File enables a rotating log file in addition to stderr. Supports ${ENV_VAR}
	// references; a relative path is placed in the home logs directory.
	File       string `mapstructure:"file" yaml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" json:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" json:"compress"`
}

// PDFConfig configures the PDF codec.
type PDFConfig struct {
	// Validation is "relaxed" or "strict".
	Validation string `mapstructure:"validation" yaml:"validation" json:"validation"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		PDF: PDFConfig{
			Validation: "relaxed",
		},
		Output: "yaml",
	}
}
