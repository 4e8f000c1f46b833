// Package cli provides command-line interface functionality for shellbuild.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"shellbuild/internal/errors"
	"shellbuild/internal/output"
	"shellbuild/internal/project"
)

// Version is set at build time.
var Version = "dev"

// out is the package-level writer; tests swap it for a buffered one.
var out = output.New()

// globalOpts holds flags accepted by every command.
type globalOpts struct {
	File  string // explicit declaration file (-f)
	Root  string // explicit workspace root (--root)
	Quiet bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return errors.ExitSuccess
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return errors.ExitSuccess
	case "--version", "version":
		out.Println("shellbuild %s", Version)
		return errors.ExitSuccess
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitUsageError
	}
	if len(remaining) == 0 {
		printUsage()
		return errors.ExitSuccess
	}
	out.SetQuiet(opts.Quiet)

	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "targets":
		return exitWith(cmdTargets(opts))
	case "expand":
		return exitWith(cmdExpand(opts))
	case "validate":
		return exitWith(cmdValidate(opts))
	case "shebang":
		return exitWith(cmdShebang(cmdArgs))
	default:
		out.ErrorPrefix("unknown command %q (run 'shellbuild help')", cmd)
		return errors.ExitUsageError
	}
}

// exitWith reports an error and maps it to an exit code.
func exitWith(err error) int {
	if err != nil {
		out.ErrorPrefix("%v", err)
	}
	return errors.GetExitCode(err)
}

// parseGlobalFlags extracts global flags, returning the remaining
// positional arguments.
func parseGlobalFlags(args []string) (globalOpts, []string, error) {
	var opts globalOpts
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-f" || arg == "--file":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires a value", arg)
			}
			i++
			opts.File = args[i]
		case arg == "--root":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--root requires a value")
			}
			i++
			opts.Root = args[i]
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
		case strings.HasPrefix(arg, "-") && len(remaining) == 0:
			return opts, nil, fmt.Errorf("unknown flag %q", arg)
		default:
			remaining = append(remaining, arg)
		}
	}

	return opts, remaining, nil
}

// loadProject resolves the workspace from the global flags: an explicit
// file wins, then an explicit root, then discovery upward from the current
// directory.
func loadProject(opts globalOpts) (*project.Project, error) {
	if opts.File != "" {
		root := opts.Root
		if root == "" {
			root = filepath.Dir(opts.File)
		}
		return project.LoadFile(root, opts.File)
	}
	if opts.Root != "" {
		return project.LoadFrom(opts.Root)
	}
	return project.Load()
}

// reportWarnings prints accumulated declaration warnings.
func reportWarnings(warnings []string) {
	for _, w := range warnings {
		out.Warning("%s", w)
	}
}
