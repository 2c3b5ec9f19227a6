package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "PETROWEB"

type Config struct {
	SiteTitle    string       `mapstructure:"siteTitle"`
	BaseURL      string       `mapstructure:"baseURL"`
	Language     string       `mapstructure:"language"`
	OutputDir    string       `mapstructure:"outputDir"`
	ContentDir   string       `mapstructure:"contentDir"`
	StaticDir    string       `mapstructure:"staticDir"`
	RelatedLimit int          `mapstructure:"relatedLimit"`
	Server       ServerConfig `mapstructure:"server"`
	Log          LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port          int    `mapstructure:"port"`
	SessionSecret string `mapstructure:"sessionSecret"`
	// Dev disables caching and enables gin debug output.
	Dev bool `mapstructure:"dev"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("siteTitle", "Andes Oil & Gas Services")
	v.SetDefault("baseURL", "")
	v.SetDefault("language", "es")
	v.SetDefault("outputDir", "public")
	v.SetDefault("contentDir", "content")
	v.SetDefault("staticDir", "static")
	v.SetDefault("relatedLimit", 3)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.sessionSecret", "change-me-in-production")
	v.SetDefault("server.dev", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads configuration from cfgFile, or from ./config.yaml when cfgFile
// is empty. A missing default config file is not an error. found reports
// whether a file was read.
func Load(cfgFile string) (cfg Config, found bool, err error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, false, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		found = true
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, found, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, found, err
	}
	return cfg, found, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := c.CheckOutputDir(); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config: baseURL %q must be an absolute URL", c.BaseURL)
		}
	}
	if c.RelatedLimit < 0 {
		return fmt.Errorf("config: relatedLimit %d must not be negative", c.RelatedLimit)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q must be json or console", c.Log.Format)
	}
	return nil
}

// CheckOutputDir rejects output directories a build must not wipe: the
// filesystem root, the working directory or one of its parents, and any
// directory that is, contains or sits inside contentDir or staticDir.
func (c Config) CheckOutputDir() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("config: outputDir must not be empty")
	}
	out, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return fmt.Errorf("config: outputDir %q: %w", c.OutputDir, err)
	}
	if filepath.Dir(out) == out {
		return fmt.Errorf("config: outputDir %q must not be the filesystem root", c.OutputDir)
	}
	if wd, err := os.Getwd(); err == nil && within(wd, out) {
		return fmt.Errorf("config: outputDir %q must not be the working directory or one of its parents", c.OutputDir)
	}

	sources := []struct{ key, dir string }{
		{"contentDir", c.ContentDir},
		{"staticDir", c.StaticDir},
	}
	for _, src := range sources {
		if strings.TrimSpace(src.dir) == "" {
			continue
		}
		abs, err := filepath.Abs(src.dir)
		if err != nil {
			return fmt.Errorf("config: %s %q: %w", src.key, src.dir, err)
		}
		if within(abs, out) || within(out, abs) {
			return fmt.Errorf("config: outputDir %q overlaps %s %q", c.OutputDir, src.key, src.dir)
		}
	}
	return nil
}

// within reports whether path is dir or lies below it. Both are absolute.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// AbsURL joins path onto BaseURL. Without a base URL the path is returned
// unchanged.
func (c Config) AbsURL(path string) string {
	if c.BaseURL == "" {
		return path
	}
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
