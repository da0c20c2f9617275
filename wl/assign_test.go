// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import (
	"testing"

	"github.com/kshedden/wldos/wlerrors"
)

// TestNewAssignmentS6 reproduces the error-surface scenario:
// num_proc=7, num_windows=3 is rejected with a ConfigError.
func TestNewAssignmentS6(t *testing.T) {
	_, err := NewAssignment(7, 3)
	if err == nil {
		t.Fatal("expected a ConfigError for num_proc not divisible by num_windows")
	}
	if _, ok := err.(*wlerrors.ConfigError); !ok {
		t.Fatalf("expected *wlerrors.ConfigError, got %T", err)
	}
}

func TestAssignmentLayout(t *testing.T) {
	a, err := NewAssignment(9, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PerWindow != 3 {
		t.Fatalf("PerWindow = %d, want 3", a.PerWindow)
	}
	for w := 0; w < 3; w++ {
		ranks := a.RanksOf(w)
		for _, r := range ranks {
			if a.WindowOf(r) != w {
				t.Errorf("WindowOf(%d) = %d, want %d", r, a.WindowOf(r), w)
			}
		}
		if a.RootOf(w) != ranks[0] {
			t.Errorf("RootOf(%d) = %d, want %d", w, a.RootOf(w), ranks[0])
		}
	}
}
