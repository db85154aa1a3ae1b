package binary

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindExitCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindUnsupportedPlatform, ExitUnsupportedPlatform},
		{KindNetworkFailure, ExitNetworkFailure},
		{KindArchiveError, ExitArchiveError},
		{KindFilesystemError, ExitFilesystemError},
		{KindUnknown, ExitGenericError},
	}

	for _, tt := range tests {
		if got := tt.kind.ExitCode(); got != tt.want {
			t.Errorf("%v.ExitCode() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestInstallErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(KindNetworkFailure, "download asset", cause)

	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}
	if KindOf(err) != KindNetworkFailure {
		t.Errorf("KindOf = %v", KindOf(err))
	}
	// Wrapping keeps the kind reachable
	wrapped := fmt.Errorf("install: %w", err)
	if KindOf(wrapped) != KindNetworkFailure {
		t.Errorf("KindOf(wrapped) = %v", KindOf(wrapped))
	}
}

func TestKindOfPlainError(t *testing.T) {
	if KindOf(errors.New("boom")) != KindUnknown {
		t.Error("plain errors should map to KindUnknown")
	}
	if KindOf(nil) != KindUnknown {
		t.Error("nil should map to KindUnknown")
	}
}

func TestInstallErrorMessage(t *testing.T) {
	err := NewError(KindArchiveError, "extract executable", errors.New("bad magic"))
	want := "archive error: extract executable: bad magic"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := NewError(KindFilesystemError, "create dest dir", nil)
	if bare.Error() != "filesystem error: create dest dir" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
