package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotFound is returned when a selected package name has no
	// entry in the catalog. The error metadata carries the missing name.
	ErrPackageNotFound = zerr.New("package not found in catalog")

	// ErrInvalidRuntimeSpec is returned when a runtime spec does not follow
	// the name@version form.
	ErrInvalidRuntimeSpec = zerr.New("invalid runtime spec")

	// ErrEnvironmentNotFound is returned when a requested environment name
	// is not declared in the manifest.
	ErrEnvironmentNotFound = zerr.New("environment not found in manifest")

	// ErrReservedEnvironmentName is returned when a manifest declares an
	// environment under a name the CLI reserves.
	ErrReservedEnvironmentName = zerr.New("environment name is reserved")

	// ErrNoEnvironmentsSpecified is returned when compose is invoked without
	// any environment names.
	ErrNoEnvironmentsSpecified = zerr.New("no environments specified")
)
