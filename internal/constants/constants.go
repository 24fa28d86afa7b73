package constants

import (
	platformservice "github.com/netemu/emucfg/internal/services/platformService"
)

// DefaultPythonVersion is the interpreter generation the install paths are
// built against when no override is configured.
const DefaultPythonVersion = "3.9"

// InstallProfile holds the platform-specific installation parameters the
// install driver consumes. Values are fixed per family; a profile is built
// once and never mutated.
type InstallProfile struct {
	Family platformservice.Family
	// Where executables land, e.g. "/usr/bin"
	BinDir string
	// Where section-1 man pages land
	ManDir string
	// The python site-packages dir for the configured runtime version
	PkgDir string
	// Name of the python interpreter the installed scripts should invoke
	Interpreter string
}

// ProfileFor returns the install profile for a platform family.
// pythonVersion is the bare version string, e.g. "3.9".
// It calls the family-specific implementation.
func ProfileFor(family platformservice.Family, pythonVersion string) InstallProfile {
	if pythonVersion == "" {
		pythonVersion = DefaultPythonVersion
	}

	switch family {
	case platformservice.FamilyFreeBSD:
		return freebsdProfile(pythonVersion)
	case platformservice.FamilyOpenBSD:
		return openbsdProfile(pythonVersion)
	default:
		return linuxProfile(pythonVersion)
	}
}
