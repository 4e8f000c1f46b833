package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shellbuild/internal/address"
	"shellbuild/internal/config"
	"shellbuild/internal/errors"
	"shellbuild/internal/registry"
	"shellbuild/internal/shell"
	"shellbuild/internal/snapshot"
	"shellbuild/internal/target"
)

// cmdTargets lists the declared targets.
func cmdTargets(opts globalOpts) error {
	p, err := loadProject(opts)
	if err != nil {
		return errors.WrapConfig(err)
	}
	reportWarnings(p.Warnings)

	reg, err := registry.New(p.Config, "")
	if err != nil {
		return errors.WrapConfig(err)
	}

	rows := make([][]string, 0, len(reg.Names()))
	for _, t := range reg.All() {
		rows = append(rows, []string{t.Addr().String(), typeName(t), describe(t)})
	}
	out.Table([]string{"ADDRESS", "TYPE", "DESCRIPTION"}, rows)
	return nil
}

// cmdExpand materializes generators against the workspace and prints every
// addressable target.
func cmdExpand(opts globalOpts) error {
	p, err := loadProject(opts)
	if err != nil {
		return errors.WrapConfig(err)
	}
	reportWarnings(p.Warnings)

	reg, err := registry.New(p.Config, "")
	if err != nil {
		return errors.WrapConfig(err)
	}

	matcher := snapshot.NewMatcher(p.Root)
	all, warnings, err := reg.ExpandAll(matcher, p.Config.DependencyInference())
	if err != nil {
		return err
	}
	reportWarnings(warnings)

	addrs := make([]address.Address, 0, len(all))
	for addr := range all {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].String() < addrs[j].String()
	})

	for _, addr := range addrs {
		t := all[addr]
		out.Println("%s (%s)", addr, typeName(t))
		if test, ok := t.(*target.Test); ok {
			sh, resolved := resolveTestShell(p.Root, test)
			if resolved {
				out.Println("  shell: %s", sh)
			} else {
				out.Println("  shell: unresolved")
			}
		}
		for _, dep := range declaredDeps(t) {
			out.Println("  dep: %s", dep)
		}
	}
	out.Info("")
	out.Info("%d targets", len(all))
	return nil
}

// cmdValidate loads and validates the declaration file.
func cmdValidate(opts globalOpts) error {
	p, err := loadProject(opts)
	if err != nil {
		return errors.WrapConfig(err)
	}
	reportWarnings(p.Warnings)

	if _, err := registry.New(p.Config, ""); err != nil {
		return errors.WrapConfig(err)
	}

	out.Info("%s: %d targets OK", p.BuildFile, len(p.Config.Targets))
	return nil
}

// cmdShebang prints the shell detected from a script's shebang line. An
// unrecognized shebang is not an error; it prints "unknown".
func cmdShebang(args []string) error {
	if len(args) != 1 {
		return errors.Usage("usage: shellbuild shebang <script>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to read script %q", args[0]))
	}

	sh, ok := shell.ParseShebang(data)
	if !ok {
		out.Println("unknown")
		return nil
	}
	out.Println("%s", sh)
	return nil
}

// resolveTestShell resolves the shell for a generated test, reading the
// script's shebang only when the declaration leaves the shell unset.
func resolveTestShell(root string, t *target.Test) (shell.Shell, bool) {
	if t.Shell != "" {
		return t.Shell, true
	}
	path := filepath.Join(root, filepath.FromSlash(t.Address.Dir), filepath.FromSlash(t.Source))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return t.ResolveShell(data)
}

// typeName returns the declaration type name of a target.
func typeName(t target.Target) string {
	switch t.(type) {
	case *target.Test:
		return config.TypeTest
	case *target.TestGenerator:
		return config.TypeTestGenerator
	case *target.Source:
		return config.TypeSource
	case *target.SourceGenerator:
		return config.TypeSourceGenerator
	case *target.ShellCommand:
		return config.TypeShellCommand
	case *target.ShellCommandRun:
		return config.TypeRunShellCommand
	default:
		return "unknown"
	}
}

// describe returns a target's description field.
func describe(t target.Target) string {
	switch t := t.(type) {
	case *target.Test:
		return t.Description
	case *target.TestGenerator:
		return t.Description
	case *target.Source:
		return t.Description
	case *target.SourceGenerator:
		return t.Description
	case *target.ShellCommand:
		return t.Description
	case *target.ShellCommandRun:
		return t.Description
	default:
		return ""
	}
}

// declaredDeps returns the dependency list of a target for display.
func declaredDeps(t target.Target) []string {
	switch t := t.(type) {
	case *target.Test:
		return t.Dependencies
	case *target.TestGenerator:
		return t.Dependencies
	case *target.Source:
		return t.Dependencies
	case *target.SourceGenerator:
		return t.Dependencies
	case *target.ShellCommand:
		return t.Dependencies
	case *target.ShellCommandRun:
		return t.Dependencies
	default:
		return nil
	}
}

// printUsage prints the top-level help text.
func printUsage() {
	out.HelpTitle("shellbuild - shell target materialization for the build graph")

	out.HelpSection("Usage:")
	out.HelpUsage("shellbuild [flags] <command>")

	out.HelpSection("Commands:")
	const width = 18
	out.HelpCommand("targets", "List declared targets", width)
	out.HelpCommand("expand", "Expand generators into file-level targets", width)
	out.HelpCommand("validate", "Validate the declaration file", width)
	out.HelpCommand("shebang <script>", "Detect the shell named by a script's shebang", width)
	out.HelpCommand("version", "Print the version", width)
	out.HelpCommand("help", "Show this help", width)

	out.HelpSection("Flags:")
	out.HelpCommand("-f, --file <path>", "Declaration file (default: discovered shellbuild.json)", width)
	out.HelpCommand("--root <dir>", "Workspace root (default: declaration file directory)", width)
	out.HelpCommand("-q, --quiet", "Suppress informational output", width)

	out.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	for _, cmd := range []string{"targets", "expand", "validate"} {
		out.HelpExample(fmt.Sprintf("shellbuild %s", cmd), fmt.Sprintf("%s using the discovered workspace", titleCase.String(cmd)))
	}
	out.HelpExample("shellbuild shebang scripts/run.sh", "Print the detected shell")
	out.Println("")
}
