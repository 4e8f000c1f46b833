package target

import (
	"strings"

	"shellbuild/internal/address"
)

// Defaults and contracts for shell command descriptors.
const (
	// DefaultCommandTimeout is the shell_command execution timeout in
	// seconds when the declaration leaves it unset.
	DefaultCommandTimeout = 30

	// DefaultWorkdir is the project root.
	DefaultWorkdir = "."

	// ChrootPlaceholder in a run_shell_command command string is replaced
	// by the execution engine with the directory its dependencies were
	// staged into. The substitution happens at invocation time, never here.
	ChrootPlaceholder = "{chroot}"

	// ChrootEnvVar is exported to run_shell_command processes with the
	// staged dependency root as its value.
	ChrootEnvVar = "CHROOT"
)

// ShellCommandSpec carries the author-declared fields of a shell_command.
type ShellCommandSpec struct {
	Command      string
	Tools        []string
	Outputs      []string
	Dependencies []string
	Timeout      *int
	Workdir      string
	LogOutput    bool
	Description  string
}

// ShellCommand describes one sandboxed external command execution request.
// The declared tools are the only executables visible on the command's
// search PATH; the invoking environment's PATH is not inherited. The
// execution engine may retry the command or cancel it mid-flight, so its
// observable effects (the declared outputs) must be safe to produce more
// than once. The descriptor itself is immutable and carries no state about
// prior attempts.
type ShellCommand struct {
	Address      address.Address
	Command      string
	Tools        []string
	Outputs      []string // trailing "/" marks a directory output
	Dependencies []string
	Timeout      int // seconds, always >= 1
	Workdir      string
	LogOutput    bool
	Description  string
}

func (c *ShellCommand) Addr() address.Address { return c.Address }

// OutputFiles returns the declared outputs that are files.
func (c *ShellCommand) OutputFiles() []string {
	var files []string
	for _, out := range c.Outputs {
		if !strings.HasSuffix(out, "/") {
			files = append(files, out)
		}
	}
	return files
}

// OutputDirectories returns the declared outputs that are directories,
// without the trailing separator.
func (c *ShellCommand) OutputDirectories() []string {
	var dirs []string
	for _, out := range c.Outputs {
		if strings.HasSuffix(out, "/") {
			dirs = append(dirs, strings.TrimSuffix(out, "/"))
		}
	}
	return dirs
}

// NewShellCommand validates a shell_command declaration. The command and
// tools fields are required; the timeout defaults to DefaultCommandTimeout
// and follows the shared positive rule; the workdir defaults to the
// project root.
func NewShellCommand(addr address.Address, spec ShellCommandSpec) (*ShellCommand, error) {
	if err := validateRequiredString(spec.Command, "command", addr); err != nil {
		return nil, err
	}
	if err := validateRequiredStrings(spec.Tools, "tools", addr); err != nil {
		return nil, err
	}
	timeout, err := ValidateTimeout(spec.Timeout, addr, "timeout")
	if err != nil {
		return nil, err
	}
	seconds := DefaultCommandTimeout
	if timeout != nil {
		seconds = *timeout
	}
	workdir := spec.Workdir
	if workdir == "" {
		workdir = DefaultWorkdir
	}
	return &ShellCommand{
		Address:      addr,
		Command:      spec.Command,
		Tools:        spec.Tools,
		Outputs:      spec.Outputs,
		Dependencies: spec.Dependencies,
		Timeout:      seconds,
		Workdir:      workdir,
		LogOutput:    spec.LogOutput,
		Description:  spec.Description,
	}, nil
}

// ShellCommandRunSpec carries the author-declared fields of a
// run_shell_command.
type ShellCommandRunSpec struct {
	Command      string
	Dependencies []string
	Workdir      string
	Description  string
}

// ShellCommandRun describes a command run in place in the workspace. Its
// dependencies are staged into an isolated root exposed to the command via
// ChrootPlaceholder or ChrootEnvVar. In contrast to ShellCommand there is
// no tool allow-list (the full inherited PATH is visible) and no declared
// outputs: any files produced land directly in the workspace tree.
type ShellCommandRun struct {
	Address      address.Address
	Command      string
	Dependencies []string
	Workdir      string
	Description  string
}

func (c *ShellCommandRun) Addr() address.Address { return c.Address }

// NewShellCommandRun validates a run_shell_command declaration. Only the
// command is required; the workdir defaults to the project root.
func NewShellCommandRun(addr address.Address, spec ShellCommandRunSpec) (*ShellCommandRun, error) {
	if err := validateRequiredString(spec.Command, "command", addr); err != nil {
		return nil, err
	}
	workdir := spec.Workdir
	if workdir == "" {
		workdir = DefaultWorkdir
	}
	return &ShellCommandRun{
		Address:      addr,
		Command:      spec.Command,
		Dependencies: spec.Dependencies,
		Workdir:      workdir,
		Description:  spec.Description,
	}, nil
}
