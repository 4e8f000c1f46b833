package integration

import (
	"path/filepath"
	"reflect"
	"testing"

	"shellbuild/internal/address"
	"shellbuild/internal/config"
	"shellbuild/internal/project"
	"shellbuild/internal/registry"
	"shellbuild/internal/target"
)

func TestCommandWorkspaceYAML(t *testing.T) {
	t.Parallel()
	fixtureDir := filepath.Join(fixturesDir(), "commands")

	proj, err := project.LoadFrom(fixtureDir)
	if err != nil {
		t.Fatalf("failed to load commands workspace: %v", err)
	}
	if filepath.Base(proj.BuildFile) != "shellbuild.yaml" {
		t.Errorf("build file = %q, want shellbuild.yaml", proj.BuildFile)
	}
	if got := proj.Config.Settings.ExecutableSearchPaths; !reflect.DeepEqual(got, []string{"/usr/bin", config.PathSentinel}) {
		t.Errorf("executable search paths = %v", got)
	}

	reg, err := registry.New(proj.Config, "")
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}

	pkg, ok := reg.Get("package")
	if !ok {
		t.Fatal("package target not found")
	}
	cmd, ok := pkg.(*target.ShellCommand)
	if !ok {
		t.Fatalf("package is %T, want ShellCommand", pkg)
	}
	if cmd.Timeout != target.DefaultCommandTimeout {
		t.Errorf("timeout = %d, want default %d", cmd.Timeout, target.DefaultCommandTimeout)
	}
	if cmd.Workdir != target.DefaultWorkdir {
		t.Errorf("workdir = %q, want %q", cmd.Workdir, target.DefaultWorkdir)
	}
	if cmd.LogOutput {
		t.Error("log output should default to false")
	}
	if got := cmd.OutputDirectories(); !reflect.DeepEqual(got, []string{"dist"}) {
		t.Errorf("output directories = %v", got)
	}
	if got := cmd.OutputFiles(); len(got) != 0 {
		t.Errorf("output files = %v, want none", got)
	}

	sum, ok := reg.Get("checksum")
	if !ok {
		t.Fatal("checksum target not found")
	}
	sumCmd := sum.(*target.ShellCommand)
	if sumCmd.Timeout != 120 {
		t.Errorf("checksum timeout = %d, want 120", sumCmd.Timeout)
	}
	if !reflect.DeepEqual(sumCmd.Dependencies, []string{":package"}) {
		t.Errorf("checksum dependencies = %v", sumCmd.Dependencies)
	}
	if !reflect.DeepEqual(sumCmd.OutputFiles(), []string{"bundle.sha256"}) {
		t.Errorf("checksum output files = %v", sumCmd.OutputFiles())
	}

	serve, ok := reg.Get("serve")
	if !ok {
		t.Fatal("serve target not found")
	}
	run, ok := serve.(*target.ShellCommandRun)
	if !ok {
		t.Fatalf("serve is %T, want ShellCommandRun", serve)
	}
	if run.Addr() != address.New("", "serve") {
		t.Errorf("serve address = %s", run.Addr())
	}
}

func TestJSONPreferredOverYAML(t *testing.T) {
	t.Parallel()
	fixtureDir := filepath.Join(fixturesDir(), "scripts")

	proj, err := project.LoadFrom(fixtureDir)
	if err != nil {
		t.Fatalf("failed to load scripts workspace: %v", err)
	}
	if filepath.Base(proj.BuildFile) != "shellbuild.json" {
		t.Errorf("build file = %q, want shellbuild.json", proj.BuildFile)
	}
}
