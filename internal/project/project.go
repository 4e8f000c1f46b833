// Package project provides workspace discovery and loading functionality.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"shellbuild/internal/config"
)

// Declaration file names probed in order at each directory level.
var buildFileNames = []string{"shellbuild.json", "shellbuild.yaml", "shellbuild.yml"}

// ErrNoWorkspaceRoot is returned when no declaration file is found.
var ErrNoWorkspaceRoot = errors.New("shellbuild.json not found: not a shellbuild workspace (or any parent up to the root)")

// FindRoot walks up from the current working directory until it finds a
// declaration file. Returns the workspace root directory.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds a
// declaration file.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if _, ok := buildFileIn(dir); ok {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoWorkspaceRoot
		}
		dir = parent
	}
}

// buildFileIn returns the declaration file path in dir, if any.
func buildFileIn(dir string) (string, bool) {
	for _, name := range buildFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Project represents a loaded shellbuild workspace.
type Project struct {
	Root      string
	BuildFile string
	Config    *config.Config
	Warnings  []string
}

// Load finds and loads a workspace from the current directory.
func Load() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return LoadFrom(root)
}

// LoadFrom loads a workspace from a specified root directory.
func LoadFrom(root string) (*Project, error) {
	buildFile, ok := buildFileIn(root)
	if !ok {
		return nil, ErrNoWorkspaceRoot
	}
	return LoadFile(root, buildFile)
}

// LoadFile loads a workspace from an explicit declaration file, treating
// root as the workspace root.
func LoadFile(root, buildFile string) (*Project, error) {
	cfg, warnings, err := config.LoadAndValidate(buildFile)
	if err != nil {
		return nil, err
	}
	return &Project{
		Root:      root,
		BuildFile: buildFile,
		Config:    cfg,
		Warnings:  warnings,
	}, nil
}
