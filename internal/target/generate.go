package target

import (
	"fmt"
	"sort"

	"shellbuild/internal/address"
)

// expansion pairs a generated file address with its synthesized dependency
// list.
type expansion struct {
	addr address.Address
	file string
	deps []string
}

// expandFiles derives one generated address per unique matched file and
// wires dependencies. Addresses depend only on the generator identity and
// the relative file path, so re-expansion with the same inputs yields the
// same addresses regardless of input order.
//
// When siblingDeps is true each generated target depends on every other
// target from the same expansion (self excluded) in addition to the
// generator's declared dependencies. When false only the declared
// dependencies are copied; inferred dependencies are supplied downstream.
func expandFiles(gen address.Address, files []string, declared []string, siblingDeps bool) []expansion {
	unique := make([]string, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}
	sort.Strings(unique)

	addrs := make([]address.Address, len(unique))
	for i, f := range unique {
		addrs[i] = gen.Generated(f)
	}

	result := make([]expansion, len(unique))
	for i, f := range unique {
		deps := make([]string, 0, len(declared)+len(addrs)-1)
		deps = append(deps, declared...)
		if siblingDeps {
			for j, sibling := range addrs {
				if j == i {
					continue
				}
				deps = append(deps, sibling.String())
			}
		}
		result[i] = expansion{addr: addrs[i], file: f, deps: deps}
	}
	return result
}

// noMatchWarning flags a generator whose pattern set matched nothing. This
// usually indicates a misconfigured pattern, so it is surfaced rather than
// silently producing zero targets.
func noMatchWarning(gen address.Address, sources []string) string {
	return fmt.Sprintf("generator %s matched no files (sources: %v)", gen, sources)
}

// ExpandTests produces one Test target per matched file, copying the
// generator's fields onto each. The matched paths are relative to the
// generator's directory and must have exclusions already applied.
func ExpandTests(gen *TestGenerator, files []string, siblingDeps bool) (map[address.Address]*Test, []string) {
	if len(files) == 0 {
		return map[address.Address]*Test{}, []string{noMatchWarning(gen.Address, gen.Sources)}
	}
	result := make(map[address.Address]*Test, len(files))
	for _, e := range expandFiles(gen.Address, files, gen.Dependencies, siblingDeps) {
		result[e.addr] = &Test{
			Address:      e.addr,
			Source:       e.file,
			Description:  gen.Description,
			Dependencies: e.deps,
			Timeout:      gen.Timeout,
			Shell:        gen.Shell,
		}
	}
	return result, nil
}

// ExpandSources produces one Source target per matched file, copying the
// generator's fields onto each.
func ExpandSources(gen *SourceGenerator, files []string, siblingDeps bool) (map[address.Address]*Source, []string) {
	if len(files) == 0 {
		return map[address.Address]*Source{}, []string{noMatchWarning(gen.Address, gen.Sources)}
	}
	result := make(map[address.Address]*Source, len(files))
	for _, e := range expandFiles(gen.Address, files, gen.Dependencies, siblingDeps) {
		result[e.addr] = &Source{
			Address:      e.addr,
			Source:       e.file,
			Description:  gen.Description,
			Dependencies: e.deps,
		}
	}
	return result, nil
}
