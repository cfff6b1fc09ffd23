package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	Name  string   `yaml:"name"`
	Count int      `yaml:"count"`
	Step  int      `yaml:"step"`
	Theme string   `yaml:"theme"`
	Names []string `yaml:"names"`
}

func defaultConfig() *config {
	return &config{
		Name:  "ada",
		Step:  1,
		Theme: themeLight,
		Names: []string{"ada", "grace", "linus", "ken"},
	}
}

// loadConfig overlays the YAML file at path, if any, on the defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("can't parse config %s: %w", path, err)
	}
	if cfg.Step == 0 {
		cfg.Step = 1
	}
	if len(cfg.Names) == 0 {
		cfg.Names = []string{cfg.Name}
	}
	return cfg, nil
}

func (cfg *config) profile() Profile {
	return Profile{
		Name:  cfg.Name,
		Count: cfg.Count,
		Step:  cfg.Step,
		Theme: cfg.Theme,
	}
}
