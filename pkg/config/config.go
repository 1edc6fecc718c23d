package config

import (
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cursorcult/cursorcult/pkg/contract"
)

// DefaultPath is where Load looks for a config file unless told otherwise.
const DefaultPath = ".cursorcult.yml"

type Config struct {
	Org             string        `yaml:"org"`
	APIBaseURL      string        `yaml:"api_base_url"`
	RulesDir        string        `yaml:"rules_dir"`
	HTTPTimeout     time.Duration `yaml:"http_timeout"`
	IncludeUntagged bool          `yaml:"include_untagged"`
	Output          string        `yaml:"-"`
	Token           string        `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Org:         contract.Org,
		APIBaseURL:  "https://api.github.com",
		RulesDir:    ".cursor/rules",
		HTTPTimeout: 15 * time.Second,
		Output:      "table",
		Token:       tokenFromEnv(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("org"); err == nil && v != "" {
		cfg.Org = v
	}
	if v, err := flags.GetString("github-token"); err == nil && v != "" {
		cfg.Token = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output = v
	}
	if v, err := flags.GetBool("all"); err == nil && v {
		cfg.IncludeUntagged = v
	}
	return cfg
}

func tokenFromEnv() string {
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t
	}
	return os.Getenv("GH_TOKEN")
}
