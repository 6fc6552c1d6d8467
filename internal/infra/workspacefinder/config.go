package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/tayden1990/alnscope/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads alnscope.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "alnscope.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Alnscope.Muscle.Path != "" {
		cfg.Muscle.Path = y.Alnscope.Muscle.Path
	}
	if y.Alnscope.Muscle.Threads != nil {
		cfg.Muscle.Threads = *y.Alnscope.Muscle.Threads
	}
	if y.Alnscope.Defaults.MaxDisplayRows != nil {
		cfg.Defaults.MaxDisplayRows = *y.Alnscope.Defaults.MaxDisplayRows
	}
	if y.Alnscope.Paths.AlignmentsDir != "" {
		cfg.Paths.AlignmentsDir = y.Alnscope.Paths.AlignmentsDir
	}
	if y.Alnscope.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Alnscope.Paths.ReportsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Alnscope struct {
		Muscle struct {
			Path    string `yaml:"path"`
			Threads *int   `yaml:"threads"`
		} `yaml:"muscle"`

		Defaults struct {
			MaxDisplayRows *int `yaml:"max_display_rows"`
		} `yaml:"defaults"`

		Paths struct {
			AlignmentsDir string `yaml:"alignments_dir"`
			ReportsDir    string `yaml:"reports_dir"`
		} `yaml:"paths"`
	} `yaml:"alnscope"`
}
