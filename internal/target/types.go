package target

import (
	"shellbuild/internal/address"
	"shellbuild/internal/shell"
)

// Target is any addressable build target in this plugin.
type Target interface {
	Addr() address.Address
}

// Default glob pattern sets for generators. Entries prefixed with '!'
// exclude matches and never add any.
var (
	// DefaultTestSources matches shunit2 test files.
	DefaultTestSources = []string{"*_test.sh", "test_*.sh", "tests.sh"}

	// DefaultShellSources matches shell scripts that are not test files.
	DefaultShellSources = []string{"*.sh", "!*_test.sh", "!test_*.sh", "!tests.sh"}
)

// Test is a single shunit2 test file target.
type Test struct {
	Address      address.Address
	Source       string // file path relative to Address.Dir
	Description  string
	Dependencies []string
	Timeout      *int        // seconds; nil means the test never times out
	Shell        shell.Shell // explicit shell; empty means detect from shebang
}

func (t *Test) Addr() address.Address { return t.Address }

// ResolveShell returns the shell to run the test with. The explicit `shell`
// field wins; otherwise the script's leading bytes are consulted for a
// shebang line. ok is false when neither resolves — that is not an error
// here, the execution engine decides whether an unresolved shell is fatal.
func (t *Test) ResolveShell(shebang []byte) (shell.Shell, bool) {
	if t.Shell != "" {
		return t.Shell, true
	}
	return shell.ParseShebang(shebang)
}

// Source is a single shell script target.
type Source struct {
	Address      address.Address
	Source       string
	Description  string
	Dependencies []string
}

func (s *Source) Addr() address.Address { return s.Address }

// TestGenerator expands into one Test per file matching its sources.
type TestGenerator struct {
	Address      address.Address
	Sources      []string
	Description  string
	Dependencies []string
	Timeout      *int
	Shell        shell.Shell
}

func (g *TestGenerator) Addr() address.Address { return g.Address }

// TestGeneratorSpec carries the author-declared fields of a shunit2_tests
// generator.
type TestGeneratorSpec struct {
	Sources      []string
	Description  string
	Dependencies []string
	Timeout      *int
	Shell        string
}

// NewTestGenerator validates a generator declaration. Sources defaults to
// DefaultTestSources; the timeout follows the shared positive-or-absent
// rule; the shell, when set, must be one of the supported set.
func NewTestGenerator(addr address.Address, spec TestGeneratorSpec) (*TestGenerator, error) {
	timeout, err := ValidateTimeout(spec.Timeout, addr, "timeout")
	if err != nil {
		return nil, err
	}
	sh, err := parseShellField(spec.Shell, addr)
	if err != nil {
		return nil, err
	}
	sources := spec.Sources
	if len(sources) == 0 {
		sources = DefaultTestSources
	}
	return &TestGenerator{
		Address:      addr,
		Sources:      sources,
		Description:  spec.Description,
		Dependencies: spec.Dependencies,
		Timeout:      timeout,
		Shell:        sh,
	}, nil
}

// SourceGenerator expands into one Source per file matching its sources.
type SourceGenerator struct {
	Address      address.Address
	Sources      []string
	Description  string
	Dependencies []string
}

func (g *SourceGenerator) Addr() address.Address { return g.Address }

// SourceGeneratorSpec carries the author-declared fields of a shell_sources
// generator.
type SourceGeneratorSpec struct {
	Sources      []string
	Description  string
	Dependencies []string
}

// NewSourceGenerator validates a generator declaration. Sources defaults to
// DefaultShellSources.
func NewSourceGenerator(addr address.Address, spec SourceGeneratorSpec) (*SourceGenerator, error) {
	sources := spec.Sources
	if len(sources) == 0 {
		sources = DefaultShellSources
	}
	return &SourceGenerator{
		Address:      addr,
		Sources:      sources,
		Description:  spec.Description,
		Dependencies: spec.Dependencies,
	}, nil
}

// parseShellField maps the declared `shell` field onto the supported set.
// Empty means unset (resolved lazily from the shebang).
func parseShellField(value string, owner address.Address) (shell.Shell, error) {
	if value == "" {
		return "", nil
	}
	sh, ok := shell.Parse(value)
	if !ok {
		return "", &InvalidFieldError{
			Address: owner,
			Field:   "shell",
			Value:   value,
			Message: "must be one of sh, bash, dash, ksh, pdksh, zsh",
		}
	}
	return sh, nil
}

// NewTest validates a standalone shunit2_test declaration.
func NewTest(addr address.Address, source string, spec TestGeneratorSpec) (*Test, error) {
	if err := validateRequiredString(source, "source", addr); err != nil {
		return nil, err
	}
	timeout, err := ValidateTimeout(spec.Timeout, addr, "timeout")
	if err != nil {
		return nil, err
	}
	sh, err := parseShellField(spec.Shell, addr)
	if err != nil {
		return nil, err
	}
	return &Test{
		Address:      addr,
		Source:       source,
		Description:  spec.Description,
		Dependencies: spec.Dependencies,
		Timeout:      timeout,
		Shell:        sh,
	}, nil
}

// NewSource validates a standalone shell_source declaration.
func NewSource(addr address.Address, source string, spec SourceGeneratorSpec) (*Source, error) {
	if err := validateRequiredString(source, "source", addr); err != nil {
		return nil, err
	}
	return &Source{
		Address:      addr,
		Source:       source,
		Description:  spec.Description,
		Dependencies: spec.Dependencies,
	}, nil
}
