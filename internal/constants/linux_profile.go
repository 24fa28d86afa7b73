package constants

import (
	platformservice "github.com/netemu/emucfg/internal/services/platformService"
)

func linuxProfile(pythonVersion string) InstallProfile {
	return InstallProfile{
		Family:      platformservice.FamilyLinux,
		BinDir:      "/usr/bin",
		ManDir:      "/usr/share/man/man1",
		PkgDir:      "/usr/lib/python" + pythonVersion + "/site-packages",
		Interpreter: "python",
	}
}
