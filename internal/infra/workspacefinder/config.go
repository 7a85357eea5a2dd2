package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/z64/shark-report/internal/domain"
)

// EnvPrefix scopes environment overrides, e.g. SHARK_REPORT_EXPORTS_DIR.
const EnvPrefix = "SHARK_REPORT"

var validate = validator.New()

// LoadConfig loads shark-report.yaml from the workspace root, applies defaults,
// then environment overrides, then validates the result.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
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
	out := y.SharkReport.Output
	if out.ExportsDir != "" {
		cfg.Output.ExportsDir = out.ExportsDir
	}
	if out.JSONIndent != nil {
		cfg.Output.JSONIndent = *out.JSONIndent
	}
	if out.XLSX != nil {
		cfg.Output.XLSX = *out.XLSX
	}
	if out.Index != nil {
		cfg.Output.Index = *out.Index
	}
	if y.SharkReport.Check.Strict != nil {
		cfg.Check.Strict = *y.SharkReport.Check.Strict
	}

	return finish(cfg, path)
}

// LoadDefaults returns the default configuration with environment overrides
// applied, for use outside a workspace.
func LoadDefaults() (domain.Config, error) {
	return finish(domain.DefaultConfig(), "")
}

func finish(cfg domain.Config, path string) (domain.Config, error) {
	cfg, err := applyEnv(cfg)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	if err := Validate(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.validate",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

type yamlConfig struct {
	SharkReport struct {
		Output struct {
			ExportsDir string `yaml:"exports_dir"`
			JSONIndent *int   `yaml:"json_indent"`
			XLSX       *bool  `yaml:"xlsx"`
			Index      *bool  `yaml:"index"`
		} `yaml:"output"`

		Check struct {
			Strict *bool `yaml:"strict"`
		} `yaml:"check"`
	} `yaml:"shark_report"`
}

// Unset variables leave the pointer nil.
type envOverrides struct {
	ExportsDir *string `envconfig:"EXPORTS_DIR"`
	JSONIndent *int    `envconfig:"JSON_INDENT"`
	XLSX       *bool   `envconfig:"XLSX"`
	Index      *bool   `envconfig:"INDEX"`
	Strict     *bool   `envconfig:"STRICT"`
}

func applyEnv(cfg domain.Config) (domain.Config, error) {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return cfg, err
	}

	if env.ExportsDir != nil {
		cfg.Output.ExportsDir = *env.ExportsDir
	}
	if env.JSONIndent != nil {
		cfg.Output.JSONIndent = *env.JSONIndent
	}
	if env.XLSX != nil {
		cfg.Output.XLSX = *env.XLSX
	}
	if env.Index != nil {
		cfg.Output.Index = *env.Index
	}
	if env.Strict != nil {
		cfg.Check.Strict = *env.Strict
	}
	return cfg, nil
}

type configRules struct {
	ExportsDir string `validate:"required"`
	JSONIndent int    `validate:"min=0,max=8"`
}

// Validate checks the value ranges of cfg.
func Validate(cfg domain.Config) error {
	rules := configRules{
		ExportsDir: strings.TrimSpace(cfg.Output.ExportsDir),
		JSONIndent: cfg.Output.JSONIndent,
	}

	if err := validate.Struct(rules); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("field %s: failed %q (value %v)", yamlName(fe.Field()), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), domain.ErrInvalidConfig)
		}
		return err
	}

	if filepath.IsAbs(rules.ExportsDir) {
		return fmt.Errorf("field exports_dir: must be relative to the workspace: %w", domain.ErrInvalidConfig)
	}
	return nil
}

func yamlName(field string) string {
	switch field {
	case "ExportsDir":
		return "exports_dir"
	case "JSONIndent":
		return "json_indent"
	default:
		return field
	}
}
