package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/garnizeh/timetrack/internal/models"
)

type Config struct {
	Addr            string        `yaml:"addr"`
	APITimeout      time.Duration `yaml:"timeout"`
	DataDir         string        `yaml:"data_dir"`
	SpecialistRoles []string      `yaml:"specialist_roles"`
}

// LoadConfig builds the configuration from environment variables and,
// when a path is given, overlays it with a YAML file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:            getEnv("TIMETRACK_ADDR", ":8080"),
		APITimeout:      15 * time.Second,
		DataDir:         getEnv("TIMETRACK_DATA_DIR", "data"),
		SpecialistRoles: splitList(getEnv("TIMETRACK_SPECIALIST_ROLES", "")),
	}
	if len(cfg.SpecialistRoles) == 0 {
		cfg.SpecialistRoles = defaultRoles()
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// RoleCatalog maps the configured role names onto known roles. Names that do
// not correspond to a known role are skipped, so the catalog is always a
// subset of the full role enumeration.
func (c *Config) RoleCatalog() []models.Role {
	out := make([]models.Role, 0, len(c.SpecialistRoles))
	for _, name := range c.SpecialistRoles {
		r, err := models.ParseRole(name)
		if err != nil {
			continue
		}
		out = append(out, r)
	}

	return out
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr is required")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("config: timeout must be positive")
	}
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	if len(c.RoleCatalog()) == 0 {
		return fmt.Errorf("config: specialist_roles must name at least one known role")
	}

	return nil
}

func defaultRoles() []string {
	roles := models.Roles()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}

	return out
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
