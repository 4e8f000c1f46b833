package target

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"shellbuild/internal/address"
)

func testGen(t *testing.T) *TestGenerator {
	t.Helper()
	gen, err := NewTestGenerator(address.New("src/sh", "tests"), TestGeneratorSpec{
		Sources: []string{"*_test.sh"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return gen
}

func TestExpandTestsSiblingMesh(t *testing.T) {
	gen := testGen(t)
	targets, warnings := ExpandTests(gen, []string{"a_test.sh", "b_test.sh"}, true)

	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if len(targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(targets))
	}

	aAddr := gen.Address.Generated("a_test.sh")
	bAddr := gen.Address.Generated("b_test.sh")

	a, ok := targets[aAddr]
	if !ok {
		t.Fatalf("missing target %s", aAddr)
	}
	b, ok := targets[bAddr]
	if !ok {
		t.Fatalf("missing target %s", bAddr)
	}

	// Each target depends on every sibling, never on itself.
	if !reflect.DeepEqual(a.Dependencies, []string{bAddr.String()}) {
		t.Errorf("a deps = %v, want [%s]", a.Dependencies, bAddr)
	}
	if !reflect.DeepEqual(b.Dependencies, []string{aAddr.String()}) {
		t.Errorf("b deps = %v, want [%s]", b.Dependencies, aAddr)
	}
}

func TestExpandTestsInferenceEnabled(t *testing.T) {
	gen := testGen(t)
	targets, _ := ExpandTests(gen, []string{"a_test.sh", "b_test.sh"}, false)

	for addr, tgt := range targets {
		if len(tgt.Dependencies) != 0 {
			t.Errorf("%s deps = %v, want none when inference is enabled", addr, tgt.Dependencies)
		}
	}
}

func TestExpandTestsDeclaredDepsKept(t *testing.T) {
	gen, err := NewTestGenerator(address.New("src/sh", "tests"), TestGeneratorSpec{
		Sources:      []string{"*_test.sh"},
		Dependencies: []string{"//lib:helpers"},
	})
	if err != nil {
		t.Fatal(err)
	}

	targets, _ := ExpandTests(gen, []string{"a_test.sh", "b_test.sh"}, true)
	a := targets[gen.Address.Generated("a_test.sh")]

	if len(a.Dependencies) != 2 {
		t.Fatalf("deps = %v, want declared dep plus sibling", a.Dependencies)
	}
	if a.Dependencies[0] != "//lib:helpers" {
		t.Errorf("deps[0] = %q, want declared dep first", a.Dependencies[0])
	}
}

func TestExpandTestsOrderIndependent(t *testing.T) {
	gen := testGen(t)

	forward, _ := ExpandTests(gen, []string{"a_test.sh", "b_test.sh", "c_test.sh"}, true)
	reversed, _ := ExpandTests(gen, []string{"c_test.sh", "b_test.sh", "a_test.sh"}, true)

	if len(forward) != len(reversed) {
		t.Fatalf("len mismatch: %d vs %d", len(forward), len(reversed))
	}
	for addr, f := range forward {
		r, ok := reversed[addr]
		if !ok {
			t.Fatalf("address %s missing from reversed expansion", addr)
		}
		fd := append([]string(nil), f.Dependencies...)
		rd := append([]string(nil), r.Dependencies...)
		sort.Strings(fd)
		sort.Strings(rd)
		if !reflect.DeepEqual(fd, rd) {
			t.Errorf("%s deps differ: %v vs %v", addr, fd, rd)
		}
	}
}

func TestExpandTestsIdempotent(t *testing.T) {
	gen := testGen(t)
	files := []string{"a_test.sh", "b_test.sh"}

	first, _ := ExpandTests(gen, files, true)
	second, _ := ExpandTests(gen, files, true)

	if len(first) != len(second) {
		t.Fatalf("len mismatch: %d vs %d", len(first), len(second))
	}
	for addr := range first {
		if _, ok := second[addr]; !ok {
			t.Errorf("address %s missing from second expansion", addr)
		}
	}
}

func TestExpandTestsDuplicateFiles(t *testing.T) {
	gen := testGen(t)
	targets, _ := ExpandTests(gen, []string{"a_test.sh", "a_test.sh"}, true)

	if len(targets) != 1 {
		t.Fatalf("len(targets) = %d, want 1 (one target per unique file)", len(targets))
	}
	only := targets[gen.Address.Generated("a_test.sh")]
	if len(only.Dependencies) != 0 {
		t.Errorf("deps = %v, want none (no self dependency)", only.Dependencies)
	}
}

func TestExpandTestsCopiesFields(t *testing.T) {
	gen, err := NewTestGenerator(address.New("src/sh", "tests"), TestGeneratorSpec{
		Sources:     []string{"*_test.sh"},
		Description: "integration tests",
		Timeout:     intPtr(120),
		Shell:       "zsh",
	})
	if err != nil {
		t.Fatal(err)
	}

	targets, _ := ExpandTests(gen, []string{"a_test.sh"}, false)
	tgt := targets[gen.Address.Generated("a_test.sh")]

	if tgt.Description != "integration tests" {
		t.Errorf("Description = %q", tgt.Description)
	}
	if tgt.Timeout == nil || *tgt.Timeout != 120 {
		t.Errorf("Timeout = %v, want 120", tgt.Timeout)
	}
	if string(tgt.Shell) != "zsh" {
		t.Errorf("Shell = %q, want zsh", tgt.Shell)
	}
	if tgt.Source != "a_test.sh" {
		t.Errorf("Source = %q", tgt.Source)
	}
	if tgt.Address.GeneratedFrom() != gen.Address {
		t.Errorf("provenance = %v, want %v", tgt.Address.GeneratedFrom(), gen.Address)
	}
}

func TestExpandTestsNoMatches(t *testing.T) {
	gen := testGen(t)
	targets, warnings := ExpandTests(gen, nil, true)

	if len(targets) != 0 {
		t.Errorf("len(targets) = %d, want 0", len(targets))
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one", warnings)
	}
	if !strings.Contains(warnings[0], "//src/sh:tests") {
		t.Errorf("warning %q does not name the generator", warnings[0])
	}
}

func TestExpandSources(t *testing.T) {
	gen, err := NewSourceGenerator(address.New("scripts", "all"), SourceGeneratorSpec{
		Sources: []string{"*.sh"},
	})
	if err != nil {
		t.Fatal(err)
	}

	targets, warnings := ExpandSources(gen, []string{"deploy.sh", "util.sh"}, true)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if len(targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(targets))
	}

	deploy := targets[gen.Address.Generated("deploy.sh")]
	if deploy == nil {
		t.Fatal("missing deploy.sh target")
	}
	want := gen.Address.Generated("util.sh").String()
	if len(deploy.Dependencies) != 1 || deploy.Dependencies[0] != want {
		t.Errorf("deps = %v, want [%s]", deploy.Dependencies, want)
	}
}
