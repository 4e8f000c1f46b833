package registry

import (
	"fmt"
	"strings"

	"shellbuild/internal/target"
)

// declaredDeps returns the author-declared dependency specs of a target.
func declaredDeps(t target.Target) []string {
	switch t := t.(type) {
	case *target.Test:
		return t.Dependencies
	case *target.Source:
		return t.Dependencies
	case *target.TestGenerator:
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

// localName resolves a dependency spec to a target name declared in this
// registry's build file. Supported local forms are ":name" and
// "//dir:name" where dir matches the build file directory. Anything else
// refers to a target outside this file and is left to the build graph
// engine to resolve.
func (r *Registry) localName(dep string) (string, bool) {
	if name, ok := strings.CutPrefix(dep, ":"); ok {
		return name, true
	}
	rest, ok := strings.CutPrefix(dep, "//")
	if !ok {
		return "", false
	}
	i := strings.LastIndex(rest, ":")
	if i < 0 {
		return "", false
	}
	if rest[:i] != r.dir {
		return "", false
	}
	return rest[i+1:], true
}

// validateDependencies checks local dependency references for undefined
// names, self-references, and cycles.
func (r *Registry) validateDependencies() error {
	graph := make(map[string][]string, len(r.targets))
	for name, t := range r.targets {
		var local []string
		for _, dep := range declaredDeps(t) {
			depName, ok := r.localName(dep)
			if !ok {
				continue
			}
			if depName == name {
				return fmt.Errorf("target %q depends on itself", name)
			}
			if _, defined := r.targets[depName]; !defined {
				return fmt.Errorf("target %q depends on undefined target %q", name, depName)
			}
			local = append(local, depName)
		}
		graph[name] = local
	}
	return detectCycle(graph)
}

// detectCycle runs a depth-first search over the local dependency graph,
// failing on the first cycle found.
func detectCycle(graph map[string][]string) error {
	visited := make(map[string]bool, len(graph))
	inStack := make(map[string]bool, len(graph))

	var visit func(name string) error
	visit = func(name string) error {
		if inStack[name] {
			return fmt.Errorf("circular dependency detected involving %q", name)
		}
		if visited[name] {
			return nil
		}
		inStack[name] = true
		for _, dep := range graph[name] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		visited[name] = true
		inStack[name] = false
		return nil
	}

	for name := range graph {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
