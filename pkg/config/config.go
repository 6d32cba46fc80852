package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultProgramsFile = "data/programs.json"
	DotenvFile          = ".env"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`
	// BaseDir anchors every relative path. Defaults to the directory of
	// the running executable.
	BaseDir         string        `env:"APP_BASE_DIR"`
	ProgramsSource  string        `env:"PROGRAMS_SOURCE"`
	TemplateDir     string        `env:"TEMPLATE_DIR" envDefault:"templates"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	ProjectID       string        `env:"PROJECT_ID"`
	SiteTitle       string        `env:"SITE_TITLE" envDefault:"Ambassador Programs"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	LoadTimeout     time.Duration `env:"LOAD_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads the optional .env files and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return parse(env.Options{})
}

// DotenvPath locates the .env file in the base directory: APP_BASE_DIR
// from the process environment, else the executable's directory.
func DotenvPath() (string, error) {
	dir := os.Getenv("APP_BASE_DIR")
	if dir == "" {
		var err error
		if dir, err = executableDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, DotenvFile), nil
}

// LoadFromMap is Load without touching the process environment.
func LoadFromMap(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.BaseDir == "" {
		dir, err := executableDir()
		if err != nil {
			return nil, err
		}
		cfg.BaseDir = dir
	}
	abs, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve APP_BASE_DIR: %w", err)
	}
	cfg.BaseDir = abs
	cfg.TemplateDir = cfg.Resolve(cfg.TemplateDir)
	cfg.StaticDir = cfg.Resolve(cfg.StaticDir)

	if cfg.Port == "" {
		return nil, errors.New("PORT must not be empty")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE %q: want debug, release or test", cfg.GinMode)
	}
	return &cfg, nil
}

// Resolve makes a relative path absolute against BaseDir.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

func (c *Config) DefaultProgramsPath() string {
	return c.Resolve(DefaultProgramsFile)
}

func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
