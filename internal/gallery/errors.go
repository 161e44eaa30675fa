package gallery

import (
	"fmt"
	"time"
)

// ExtensionError is the base of the gallery error taxonomy. Transport and
// filesystem failures are not part of it; they propagate as plain wrapped
// errors.
type ExtensionError struct {
	Message   string
	Code      int
	Timestamp time.Time
}

func (e *ExtensionError) Error() string {
	return e.Message
}

func newExtensionError(format string, args ...any) ExtensionError {
	return ExtensionError{
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
	}
}

// ExtensionNotFoundError reports that a query returned zero extensions for a
// publisher/name pair.
type ExtensionNotFoundError struct {
	ExtensionError
	ExtensionID string
}

func newExtensionNotFound(publisher, name string) *ExtensionNotFoundError {
	id := fmt.Sprintf("%s.%s", publisher, name)
	return &ExtensionNotFoundError{
		ExtensionError: newExtensionError("extension not found: %s", id),
		ExtensionID:    id,
	}
}

// VersionNotFoundError reports that the extension exists but no version entry
// matched the requested version string exactly.
type VersionNotFoundError struct {
	ExtensionError
	ExtensionID string
	Version     string
}

func newVersionNotFound(extensionID, version string) *VersionNotFoundError {
	return &VersionNotFoundError{
		ExtensionError: newExtensionError("version %s not found for extension %s", version, extensionID),
		ExtensionID:    extensionID,
		Version:        version,
	}
}

// VsixFileNotFoundError reports that a resolved version's file list has no
// VSIX package asset.
type VsixFileNotFoundError struct {
	ExtensionError
	ExtensionID string
	Version     string
}

func newVsixFileNotFound(extensionID, version string) *VsixFileNotFoundError {
	return &VsixFileNotFoundError{
		ExtensionError: newExtensionError("no VSIX package in version %s of extension %s", version, extensionID),
		ExtensionID:    extensionID,
		Version:        version,
	}
}
