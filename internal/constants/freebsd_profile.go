package constants

import (
	platformservice "github.com/netemu/emucfg/internal/services/platformService"
)

// Everything on FreeBSD hangs off the ports prefix, man pages included.
const freebsdPrefix = "/usr/local"

func freebsdProfile(pythonVersion string) InstallProfile {
	return InstallProfile{
		Family:      platformservice.FamilyFreeBSD,
		BinDir:      freebsdPrefix + "/bin",
		ManDir:      freebsdPrefix + "/man/man1",
		PkgDir:      freebsdPrefix + "/lib/python" + pythonVersion + "/site-packages",
		Interpreter: "python",
	}
}
