// Package registry builds typed targets from declarations and drives
// generator expansion.
package registry

import (
	"fmt"
	"sort"

	"shellbuild/internal/address"
	"shellbuild/internal/config"
	"shellbuild/internal/snapshot"
	"shellbuild/internal/target"
)

// Registry manages the targets declared in one declaration file.
type Registry struct {
	dir     string // build file directory relative to the workspace root
	targets map[string]target.Target
}

// New creates a registry from validated declarations. dir is the directory
// of the declaration file relative to the workspace root (empty for the
// root). Returns an error if:
//   - a field value is invalid (the error names the target, field, value)
//   - a local dependency reference is undefined, self-referential, or circular
func New(cfg *config.Config, dir string) (*Registry, error) {
	r := &Registry{
		dir:     dir,
		targets: make(map[string]target.Target, len(cfg.Targets)),
	}

	for name, tc := range cfg.Targets {
		t, err := newTarget(address.New(dir, name), tc)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", name, err)
		}
		r.targets[name] = t
	}

	if err := r.validateDependencies(); err != nil {
		return nil, err
	}

	return r, nil
}

// newTarget constructs the typed target for a declaration. The type name
// was already checked by config validation.
func newTarget(addr address.Address, tc config.TargetConfig) (target.Target, error) {
	switch tc.Type {
	case config.TypeTest:
		return target.NewTest(addr, tc.Source, target.TestGeneratorSpec{
			Description:  tc.Description,
			Dependencies: tc.Dependencies,
			Timeout:      tc.Timeout,
			Shell:        tc.Shell,
		})
	case config.TypeTestGenerator:
		return target.NewTestGenerator(addr, target.TestGeneratorSpec{
			Sources:      tc.Sources,
			Description:  tc.Description,
			Dependencies: tc.Dependencies,
			Timeout:      tc.Timeout,
			Shell:        tc.Shell,
		})
	case config.TypeSource:
		return target.NewSource(addr, tc.Source, target.SourceGeneratorSpec{
			Description:  tc.Description,
			Dependencies: tc.Dependencies,
		})
	case config.TypeSourceGenerator:
		return target.NewSourceGenerator(addr, target.SourceGeneratorSpec{
			Sources:      tc.Sources,
			Description:  tc.Description,
			Dependencies: tc.Dependencies,
		})
	case config.TypeShellCommand:
		return target.NewShellCommand(addr, target.ShellCommandSpec{
			Command:      tc.Command,
			Tools:        tc.Tools,
			Outputs:      tc.Outputs,
			Dependencies: tc.Dependencies,
			Timeout:      tc.Timeout,
			Workdir:      tc.Workdir,
			LogOutput:    tc.LogOutput,
			Description:  tc.Description,
		})
	case config.TypeRunShellCommand:
		return target.NewShellCommandRun(addr, target.ShellCommandRunSpec{
			Command:      tc.Command,
			Dependencies: tc.Dependencies,
			Workdir:      tc.Workdir,
			Description:  tc.Description,
		})
	default:
		return nil, fmt.Errorf("unknown target type %q", tc.Type)
	}
}

// Get retrieves a declared target by name.
func (r *Registry) Get(name string) (target.Target, bool) {
	t, ok := r.targets[name]
	return t, ok
}

// All returns all declared targets sorted by name.
func (r *Registry) All() []target.Target {
	targets := make([]target.Target, 0, len(r.targets))
	for _, name := range r.Names() {
		targets = append(targets, r.targets[name])
	}
	return targets
}

// Names returns all declared target names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExpandAll materializes every generator against the workspace and returns
// all addressable targets: the declared non-generator targets plus one
// generated target per matched file. inferDeps is the effective
// dependency-inference setting, passed in explicitly by the caller; when
// false, generated targets are wired to their siblings.
func (r *Registry) ExpandAll(m *snapshot.Matcher, inferDeps bool) (map[address.Address]target.Target, []string, error) {
	result := make(map[address.Address]target.Target)
	var warnings []string

	for _, name := range r.Names() {
		switch t := r.targets[name].(type) {
		case *target.TestGenerator:
			files, err := m.Match(r.dir, t.Sources)
			if err != nil {
				return nil, warnings, fmt.Errorf("target %q: %w", name, err)
			}
			generated, w := target.ExpandTests(t, files, !inferDeps)
			warnings = append(warnings, w...)
			for addr, gt := range generated {
				result[addr] = gt
			}
		case *target.SourceGenerator:
			files, err := m.Match(r.dir, t.Sources)
			if err != nil {
				return nil, warnings, fmt.Errorf("target %q: %w", name, err)
			}
			generated, w := target.ExpandSources(t, files, !inferDeps)
			warnings = append(warnings, w...)
			for addr, gt := range generated {
				result[addr] = gt
			}
		default:
			result[t.Addr()] = t
		}
	}

	return result, warnings, nil
}
