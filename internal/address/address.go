// Package address provides stable identities for build targets. An address
// names either a declared target or a file-level target generated from it.
package address

import "path"

// Address identifies a target within the workspace. Dir is the directory of
// the declaring build file relative to the workspace root (empty for the
// root), Name is the declared target name, and File, when non-empty, is the
// path of the generated file-level target relative to Dir.
//
// Address is comparable and usable as a map key. Two expansions of the same
// generator over the same file produce equal addresses.
type Address struct {
	Dir  string
	Name string
	File string
}

// New creates an address for a declared target.
func New(dir, name string) Address {
	return Address{Dir: dir, Name: name}
}

// Generated creates the address of the file-level target generated from a
// declared target for the given file (relative to the target's directory).
func (a Address) Generated(file string) Address {
	return Address{Dir: a.Dir, Name: a.Name, File: file}
}

// IsGenerated reports whether the address names a generated file-level
// target.
func (a Address) IsGenerated() bool {
	return a.File != ""
}

// GeneratedFrom returns the address of the declared target this address was
// generated from. For a non-generated address it returns the address itself.
func (a Address) GeneratedFrom() Address {
	return Address{Dir: a.Dir, Name: a.Name}
}

// String renders the address as "//dir:name" for declared targets and
// "//dir/file:name" for generated ones.
func (a Address) String() string {
	spec := a.Dir
	if a.File != "" {
		spec = path.Join(a.Dir, a.File)
	}
	return "//" + spec + ":" + a.Name
}
