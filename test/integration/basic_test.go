// Package integration contains integration tests for shellbuild.
package integration

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"shellbuild/internal/address"
	"shellbuild/internal/project"
	"shellbuild/internal/registry"
	"shellbuild/internal/snapshot"
	"shellbuild/internal/target"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
// The result is cached for efficiency since runtime.Caller is relatively expensive.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

func TestMinimalWorkspace(t *testing.T) {
	t.Parallel()
	fixtureDir := filepath.Join(fixturesDir(), "minimal")

	proj, err := project.LoadFrom(fixtureDir)
	if err != nil {
		t.Fatalf("failed to load minimal workspace: %v", err)
	}

	if len(proj.Config.Targets) != 0 {
		t.Errorf("expected 0 targets, got %d", len(proj.Config.Targets))
	}
	if !proj.Config.DependencyInference() {
		t.Error("expected dependency inference enabled")
	}
}

func TestScriptWorkspaceExpansion(t *testing.T) {
	t.Parallel()
	fixtureDir := filepath.Join(fixturesDir(), "scripts")

	proj, err := project.LoadFrom(fixtureDir)
	if err != nil {
		t.Fatalf("failed to load scripts workspace: %v", err)
	}
	if proj.Config.DependencyInference() {
		t.Fatal("fixture should disable dependency inference")
	}

	reg, err := registry.New(proj.Config, "")
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}

	matcher := snapshot.NewMatcher(proj.Root)
	all, warnings, err := reg.ExpandAll(matcher, proj.Config.DependencyInference())
	if err != nil {
		t.Fatalf("expansion failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	// Two test scripts plus one library script.
	if len(all) != 3 {
		t.Fatalf("expected 3 expanded targets, got %d", len(all))
	}

	utilAddr := address.New("", "tests").Generated("scripts/util_test.sh")
	utilTest, ok := all[utilAddr].(*target.Test)
	if !ok {
		t.Fatalf("missing expanded test %s", utilAddr)
	}
	if utilTest.Source != "scripts/util_test.sh" {
		t.Errorf("source = %q", utilTest.Source)
	}
	if utilTest.Description != "shunit2 test scripts" {
		t.Errorf("description not copied from generator: %q", utilTest.Description)
	}

	// Inference is disabled, so each generated test depends on its siblings.
	smokeAddr := address.New("", "tests").Generated("scripts/smoke_test.sh")
	wantDep := smokeAddr.String()
	found := false
	for _, dep := range utilTest.Dependencies {
		if dep == wantDep {
			found = true
		}
		if dep == utilAddr.String() {
			t.Error("generated test depends on itself")
		}
	}
	if !found {
		t.Errorf("dependencies %v missing sibling %s", utilTest.Dependencies, wantDep)
	}

	libAddr := address.New("", "lib").Generated("scripts/util.sh")
	libSrc, ok := all[libAddr].(*target.Source)
	if !ok {
		t.Fatalf("missing expanded source %s", libAddr)
	}
	// The exclusion pattern keeps test scripts out of the library sources.
	if len(libSrc.Dependencies) != 0 {
		t.Errorf("sole sibling should have no dependencies, got %v", libSrc.Dependencies)
	}
}

func TestScriptWorkspaceShebangResolution(t *testing.T) {
	t.Parallel()
	fixtureDir := filepath.Join(fixturesDir(), "scripts")

	proj, err := project.LoadFrom(fixtureDir)
	if err != nil {
		t.Fatalf("failed to load scripts workspace: %v", err)
	}
	reg, err := registry.New(proj.Config, "")
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	all, _, err := reg.ExpandAll(snapshot.NewMatcher(proj.Root), false)
	if err != nil {
		t.Fatalf("expansion failed: %v", err)
	}

	tests := []struct {
		file     string
		expected string
	}{
		{"scripts/util_test.sh", "bash"},
		{"scripts/smoke_test.sh", "sh"},
	}

	for _, tt := range tests {
		addr := address.New("", "tests").Generated(tt.file)
		test, ok := all[addr].(*target.Test)
		if !ok {
			t.Fatalf("missing expanded test %s", addr)
		}
		data, err := os.ReadFile(filepath.Join(proj.Root, filepath.FromSlash(test.Source)))
		if err != nil {
			t.Fatalf("failed to read %s: %v", test.Source, err)
		}
		sh, ok := test.ResolveShell(data)
		if !ok {
			t.Fatalf("failed to resolve shell for %s", tt.file)
		}
		if string(sh) != tt.expected {
			t.Errorf("%s: shell = %q, want %q", tt.file, sh, tt.expected)
		}
	}
}
