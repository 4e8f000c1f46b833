// Package config provides loading and validation of shellbuild declaration
// files (shellbuild.json or shellbuild.yaml).
package config

// Target type names accepted in declaration files.
const (
	TypeTest            = "shunit2_test"
	TypeTestGenerator   = "shunit2_tests"
	TypeSource          = "shell_source"
	TypeSourceGenerator = "shell_sources"
	TypeShellCommand    = "shell_command"
	TypeRunShellCommand = "run_shell_command"
)

// Config represents a complete declaration file.
type Config struct {
	Settings SettingsConfig          `json:"settings,omitempty" yaml:"settings,omitempty"`
	Targets  map[string]TargetConfig `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// SettingsConfig holds workspace-wide options.
type SettingsConfig struct {
	// DependencyInference controls whether dependencies between generated
	// targets are inferred from source content. When disabled, expansion
	// falls back to wiring every generated target to all of its siblings.
	DependencyInference *bool `json:"dependency_inference,omitempty" yaml:"dependency_inference,omitempty"`

	// ExecutableSearchPaths lists the directories searched for declared
	// tools. The sentinel "<PATH>" expands to the system PATH.
	ExecutableSearchPaths []string `json:"executable_search_paths,omitempty" yaml:"executable_search_paths,omitempty"`
}

// TargetConfig defines a single target declaration. Which fields apply
// depends on the declared type; see the per-type constructors in
// internal/target for the field contracts.
type TargetConfig struct {
	Type         string   `json:"type" yaml:"type"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Source       string   `json:"source,omitempty" yaml:"source,omitempty"`
	Sources      []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Timeout      *int     `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Shell        string   `json:"shell,omitempty" yaml:"shell,omitempty"`
	Command      string   `json:"command,omitempty" yaml:"command,omitempty"`
	Tools        []string `json:"tools,omitempty" yaml:"tools,omitempty"`
	Outputs      []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Workdir      string   `json:"workdir,omitempty" yaml:"workdir,omitempty"`
	LogOutput    bool     `json:"log_output,omitempty" yaml:"log_output,omitempty"`
}

// TargetTypes returns all accepted target type names.
func TargetTypes() []string {
	return []string{
		TypeTest,
		TypeTestGenerator,
		TypeSource,
		TypeSourceGenerator,
		TypeShellCommand,
		TypeRunShellCommand,
	}
}
