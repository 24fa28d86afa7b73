package constants

import (
	platformservice "github.com/netemu/emucfg/internal/services/platformService"
)

const openbsdPrefix = "/usr/local"

// The OpenBSD ports tree installs no unversioned "python" link, so the
// interpreter name carries the version pin.
func openbsdProfile(pythonVersion string) InstallProfile {
	return InstallProfile{
		Family:      platformservice.FamilyOpenBSD,
		BinDir:      openbsdPrefix + "/bin",
		ManDir:      openbsdPrefix + "/share/man/man1",
		PkgDir:      openbsdPrefix + "/lib/python" + pythonVersion + "/site-packages",
		Interpreter: "python" + pythonVersion,
	}
}
