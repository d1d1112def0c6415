// Package config loads the herald.yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file discovered by
// walking up from the working directory. Running without a configuration
// file is the common case and yields the built-in defaults.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds and parses the nearest herald.yaml at or above cwd. When none
// exists the defaults apply with cwd as the watch root.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Info(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
		return DefaultConfig(cwd), nil
	}

	// #nosec G304 -- configPath was discovered under the caller's tree
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return l.resolve(configPath, &file)
}

// findConfiguration walks from cwd toward the filesystem root looking for
// the configuration file.
func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// resolve merges the parsed file with the defaults and validates the result.
func (l *Loader) resolve(configPath string, file *File) (*domain.Config, error) {
	cfg := DefaultConfig(resolveRoot(configPath, file.Root))

	if file.Debounce != "" {
		debounce, err := time.ParseDuration(file.Debounce)
		if err != nil || debounce <= 0 {
			return nil, zerr.With(domain.ErrInvalidDebounce, "debounce", file.Debounce)
		}
		cfg.Debounce = debounce
	}

	if file.BatchSize != 0 {
		if file.BatchSize < 1 {
			return nil, zerr.With(domain.ErrInvalidBatchSize, "batch_size", file.BatchSize)
		}
		cfg.BatchSize = file.BatchSize
	}

	if file.Rules != nil {
		rules, err := resolveRules(file.Rules)
		if err != nil {
			return nil, err
		}
		cfg.Rules = rules
	}

	if file.Critical != nil {
		cfg.Critical = file.Critical
	}

	if file.Executor != nil {
		if err := applyExecutor(cfg, file.Executor); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func resolveRules(dtos []*RuleDTO) ([]domain.Rule, error) {
	rules := make([]domain.Rule, 0, len(dtos))
	for i, dto := range dtos {
		if dto.Category == "" {
			return nil, zerr.With(domain.ErrRuleMissingCategory, "rule_index", i)
		}
		if len(dto.Agents) == 0 {
			return nil, zerr.With(domain.ErrRuleMissingAgents, "category", dto.Category)
		}
		if len(dto.Dirs) == 0 && len(dto.Names) == 0 && len(dto.Extensions) == 0 {
			return nil, zerr.With(domain.ErrRuleMissingPredicate, "category", dto.Category)
		}

		priority, err := domain.ParsePriority(dto.Priority)
		if err != nil {
			return nil, zerr.With(err, "category", dto.Category)
		}

		rules = append(rules, domain.Rule{
			Category:   dto.Category,
			Dirs:       dto.Dirs,
			Names:      dto.Names,
			Extensions: dto.Extensions,
			Priority:   priority,
			Agents:     dto.Agents,
		})
	}
	return rules, nil
}

func applyExecutor(cfg *domain.Config, dto *ExecutorDTO) error {
	if len(dto.Cmd) > 0 {
		cfg.Executor.Command = dto.Cmd
	}
	if dto.Timeout != "" {
		timeout, err := time.ParseDuration(dto.Timeout)
		if err != nil || timeout <= 0 {
			return zerr.With(domain.ErrConfigParseFailed, "timeout", dto.Timeout)
		}
		cfg.Executor.Timeout = timeout
	}
	return nil
}

// resolveRoot turns the configured root into an absolute path anchored at
// the configuration file's directory.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}
