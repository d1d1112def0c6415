package config

// File represents the structure of the herald.yaml configuration file. All
// fields are optional; absent ones fall back to the defaults.
type File struct {
	Root      string       `yaml:"root"`
	Debounce  string       `yaml:"debounce"`
	BatchSize int          `yaml:"batchSize"`
	Rules     []*RuleDTO   `yaml:"rules"`
	Critical  []string     `yaml:"critical"`
	Executor  *ExecutorDTO `yaml:"executor"`
}

// RuleDTO represents one classification rule in the configuration. Rules
// are evaluated in file order.
type RuleDTO struct {
	Category   string   `yaml:"category"`
	Dirs       []string `yaml:"dirs"`
	Names      []string `yaml:"names"`
	Extensions []string `yaml:"extensions"`
	Priority   string   `yaml:"priority"`
	Agents     []string `yaml:"agents"`
}

// ExecutorDTO represents the workflow executor settings.
type ExecutorDTO struct {
	Cmd     []string `yaml:"cmd"`
	Timeout string   `yaml:"timeout"`
}
