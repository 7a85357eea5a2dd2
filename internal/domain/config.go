package domain

// Config represents the shark-report configuration loaded from shark-report.yaml.
type Config struct {
	Output OutputConfig
	Check  CheckConfig
}

type OutputConfig struct {
	ExportsDir string
	JSONIndent int
	XLSX       bool
	Index      bool
}

type CheckConfig struct {
	// Strict makes any out-of-tolerance feature a failing result.
	Strict bool
}

// DefaultConfig provides sane defaults if shark-report.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			ExportsDir: "exports",
			JSONIndent: 2,
			XLSX:       false,
			Index:      true,
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
