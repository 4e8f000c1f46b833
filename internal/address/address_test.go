package address

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		addr     Address
		expected string
	}{
		{"declared", New("src/sh", "tests"), "//src/sh:tests"},
		{"root declared", New("", "tests"), "//:tests"},
		{"generated", New("src/sh", "tests").Generated("a_test.sh"), "//src/sh/a_test.sh:tests"},
		{"root generated", New("", "tests").Generated("a_test.sh"), "//a_test.sh:tests"},
		{"generated nested", New("src", "all").Generated("util/b.sh"), "//src/util/b.sh:all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGeneratedFrom(t *testing.T) {
	gen := New("src/sh", "tests")
	file := gen.Generated("a_test.sh")

	if !file.IsGenerated() {
		t.Error("IsGenerated() = false for generated address")
	}
	if gen.IsGenerated() {
		t.Error("IsGenerated() = true for declared address")
	}
	if file.GeneratedFrom() != gen {
		t.Errorf("GeneratedFrom() = %v, want %v", file.GeneratedFrom(), gen)
	}
	if gen.GeneratedFrom() != gen {
		t.Errorf("GeneratedFrom() on declared address = %v, want itself", gen.GeneratedFrom())
	}
}

func TestComparable(t *testing.T) {
	a := New("src", "tests").Generated("a.sh")
	b := New("src", "tests").Generated("a.sh")
	if a != b {
		t.Error("equal addresses compare unequal")
	}

	m := map[Address]bool{a: true}
	if !m[b] {
		t.Error("address not usable as map key")
	}
}
