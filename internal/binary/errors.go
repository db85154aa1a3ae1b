package binary

import (
	"errors"
	"fmt"
)

// Kind classifies an installation failure by the stage that produced it.
type Kind int

const (
	// KindUnknown is a failure outside the four install stages.
	KindUnknown Kind = iota
	// KindUnsupportedPlatform means the detected (OS, arch) pair has no
	// published binary. Raised before any network access.
	KindUnsupportedPlatform
	// KindNetworkFailure means the release index or the binary download
	// could not be retrieved.
	KindNetworkFailure
	// KindArchiveError means the downloaded payload could not be
	// decompressed or did not contain exactly one executable.
	KindArchiveError
	// KindFilesystemError means the destination could not be created or
	// the file could not be written.
	KindFilesystemError
)

// Exit codes reported by the CLI for each failure kind.
const (
	ExitSuccess             = 0
	ExitGenericError        = 1
	ExitUnsupportedPlatform = 2
	ExitNetworkFailure      = 3
	ExitArchiveError        = 4
	ExitFilesystemError     = 5
)

// String returns the stage name for the failure kind.
func (k Kind) String() string {
	switch k {
	case KindUnsupportedPlatform:
		return "unsupported platform"
	case KindNetworkFailure:
		return "network failure"
	case KindArchiveError:
		return "archive error"
	case KindFilesystemError:
		return "filesystem error"
	default:
		return "unknown error"
	}
}

// ExitCode returns the process exit code for the failure kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindUnsupportedPlatform:
		return ExitUnsupportedPlatform
	case KindNetworkFailure:
		return ExitNetworkFailure
	case KindArchiveError:
		return ExitArchiveError
	case KindFilesystemError:
		return ExitFilesystemError
	default:
		return ExitGenericError
	}
}

// InstallError is a failure in one of the install stages.
type InstallError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *InstallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}

// NewError creates a new InstallError.
func NewError(kind Kind, message string, cause error) *InstallError {
	return &InstallError{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the failure kind of err, or KindUnknown if err is not an
// InstallError.
func KindOf(err error) Kind {
	var ie *InstallError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return KindUnknown
}
