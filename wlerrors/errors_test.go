// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wlerrors

import (
	"errors"
	"testing"
)

func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigError("num_proc (%d) is not divisible by num_windows (%d)", 7, 3)
	want := "configuration error: num_proc (7) is not divisible by num_windows (3)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStitchErrorMessage(t *testing.T) {
	err := NewStitchError(4, "no qualifying overlap position")
	if err.Window != 4 {
		t.Errorf("Window = %d, want 4", err.Window)
	}
	want := "stitch error at window 4: no qualifying overlap position"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewTransportError("send", cause)
	if !errors.Is(err, cause) {
		t.Error("TransportError does not unwrap to its cause")
	}
}
