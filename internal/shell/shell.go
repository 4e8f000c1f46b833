// Package shell provides the closed set of supported shell interpreters
// and shebang-based interpreter detection for shell script targets.
package shell

import (
	"bytes"
	"regexp"
)

// Shell identifies one of the supported Bourne-based shell interpreters.
type Shell string

const (
	Sh    Shell = "sh"
	Bash  Shell = "bash"
	Dash  Shell = "dash"
	Ksh   Shell = "ksh"
	Pdksh Shell = "pdksh"
	Zsh   Shell = "zsh"
)

// shells lists every supported shell in display order.
var shells = []Shell{Sh, Bash, Dash, Ksh, Pdksh, Zsh}

// Shells returns all supported shells.
func Shells() []Shell {
	result := make([]Shell, len(shells))
	copy(result, shells)
	return result
}

// Parse maps a shell name onto the supported set.
func Parse(name string) (Shell, bool) {
	for _, s := range shells {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// shebangPattern matches the first line of a script: "#!", an optional
// interpreter path ending in the program name, and an optional single
// argument (the program name when the interpreter is env).
var shebangPattern = regexp.MustCompile(`^#! *[/\w]*/(\w+) *(\w*)`)

// ParseShebang inspects the leading bytes of a script and reports the shell
// named by its shebang line. Only the first line is considered. An "env"
// interpreter is resolved to its argument, so "#!/usr/bin/env bash" detects
// bash. Returns false for empty input, a line that is not a shebang, or an
// interpreter outside the supported set; detection never fails.
func ParseShebang(shebang []byte) (Shell, bool) {
	if len(shebang) == 0 {
		return "", false
	}
	firstLine := shebang
	if i := bytes.IndexAny(shebang, "\r\n"); i >= 0 {
		firstLine = shebang[:i]
	}
	m := shebangPattern.FindSubmatch(firstLine)
	if m == nil {
		return "", false
	}
	program := m[1]
	if string(program) == "env" {
		program = m[2]
	}
	return Parse(string(program))
}

// BinaryPathTest describes how the execution engine can verify that a
// located interpreter binary exists and responds: run it with Args and
// expect a zero exit code.
type BinaryPathTest struct {
	Args []string
}

// probeArgs maps each shell onto the argument used to sanity-check its
// binary. Shells mapped to "" define no probe. Adding a shell means adding
// one constant above, one entry in shells, and one entry here.
var probeArgs = map[Shell]string{
	Sh:    "",
	Bash:  "--version",
	Dash:  "",
	Ksh:   "--version",
	Pdksh: "",
	Zsh:   "--version",
}

// BinaryPathTest returns the version probe for the shell, or nil if the
// shell defines none.
func (s Shell) BinaryPathTest() *BinaryPathTest {
	arg := probeArgs[s]
	if arg == "" {
		return nil
	}
	return &BinaryPathTest{Args: []string{arg}}
}
