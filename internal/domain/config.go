package domain

// Config represents the minimal alnscope configuration loaded from
// alnscope.yaml.
type Config struct {
	Muscle   MuscleConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type MuscleConfig struct {
	// Path to the MUSCLE5 executable. Empty means "resolve it" (env var,
	// then common install locations, then PATH).
	Path string

	// Threads passed to the aligner. 0 means all CPUs.
	Threads int
}

type DefaultsConfig struct {
	MaxDisplayRows int
}

type PathsConfig struct {
	AlignmentsDir string
	ReportsDir    string
}

// DefaultConfig provides sane defaults if alnscope.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Muscle: MuscleConfig{},
		Defaults: DefaultsConfig{
			MaxDisplayRows: DefaultMaxDisplayRows,
		},
		Paths: PathsConfig{
			AlignmentsDir: "alignments",
			ReportsDir:    "reports",
		},
	}
}
