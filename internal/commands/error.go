// Package commands holds the domain errors that commands surface to the user.
// Every one of them can explain itself and, where possible, suggest a fix.
package commands

import "fmt"

const (
	// DefaultManifest is the manifest filename used when none is configured.
	DefaultManifest = "Package.swift"

	// DefaultInitCommand is the package-init command used when none is
	// configured.
	DefaultInitCommand = "pathshim init"
)

// Kind is the variant of an [Error].
type Kind int

const (
	// KindNoManifestFound occurs when no manifest file exists where one is
	// required.
	KindNoManifestFound Kind = iota

	// KindInvalidToolchain occurs when the inferred toolchain is unusable.
	KindInvalidToolchain

	// KindBuildOutputNotFound occurs when an expected build output is
	// missing.
	KindBuildOutputNotFound

	// KindRepositoryHasChanges occurs when a repository that is to be
	// updated has local changes.
	KindRepositoryHasChanges
)

// Error is a domain error. Use the constructors rather than building it
// directly.
type Error struct {
	Kind        Kind
	Value       string
	Manifest    string
	InitCommand string
}

// NoManifestFound returns an [Error] for a missing manifest file with the
// given filename, suggesting initCommand to create one.
func NoManifestFound(manifest, initCommand string) *Error {
	if manifest == "" {
		manifest = DefaultManifest
	}
	if initCommand == "" {
		initCommand = DefaultInitCommand
	}

	return &Error{Kind: KindNoManifestFound, Manifest: manifest, InitCommand: initCommand}
}

// InvalidToolchain returns an [Error] for an unusable inferred toolchain.
func InvalidToolchain() *Error {
	return &Error{Kind: KindInvalidToolchain}
}

// BuildOutputNotFound returns an [Error] for a missing build output.
func BuildOutputNotFound(value string) *Error {
	return &Error{Kind: KindBuildOutputNotFound, Value: value}
}

// RepositoryHasChanges returns an [Error] for a repository with local
// changes.
func RepositoryHasChanges(value string) *Error {
	return &Error{Kind: KindRepositoryHasChanges, Value: value}
}

// Message returns the human readable description.
func (e *Error) Message() string {
	switch e.Kind {
	case KindNoManifestFound:
		return fmt.Sprintf("no %s file found", e.Manifest)
	case KindInvalidToolchain:
		return "invalid inferred toolchain"
	case KindBuildOutputNotFound:
		return "no build output found: " + e.Value
	case KindRepositoryHasChanges:
		return "repository has changes: " + e.Value
	default:
		return fmt.Sprintf("unknown error (%d)", int(e.Kind))
	}
}

// Fix returns the suggested remediation, if there is one.
func (e *Error) Fix() (string, bool) {
	switch e.Kind {
	case KindNoManifestFound:
		return fmt.Sprintf("create a file named %s or run `%s` to initialize a new package", e.Manifest, e.InitCommand), true
	case KindRepositoryHasChanges:
		return "stage the changes and reapply them after updating the repository", true
	case KindInvalidToolchain, KindBuildOutputNotFound:
		return "", false
	default:
		return "", false
	}
}

func (e *Error) Error() string {
	return e.Message()
}
