package resolverservice

import (
	"github.com/netemu/emucfg/internal/constants"
	platformservice "github.com/netemu/emucfg/internal/services/platformService"
)

// The closed set of parameter names the install driver may request.
const (
	QueryBinDir = "bindir"
	QueryManDir = "mandir"
	QueryPkgDir = "pkgdir"
	QueryPython = "python"
)

// QueryNames lists the recognized parameter names, in presentation order.
func QueryNames() []string {
	return []string{QueryBinDir, QueryManDir, QueryPkgDir, QueryPython}
}

// Options tune how profiles are materialized.
type Options struct {
	// Python runtime version used in site-packages paths and the OpenBSD
	// interpreter pin. Empty means constants.DefaultPythonVersion.
	PythonVersion string
}

// Resolve maps a detected platform family to its install profile.
// Pure: same family and options always yield an identical profile.
func Resolve(family platformservice.Family, opts Options) constants.InstallProfile {
	return constants.ProfileFor(family, opts.PythonVersion)
}

// Lookup returns the parameter value for name from an already-resolved
// profile. Unknown names report ok=false instead of an error: install
// drivers probe several candidate names and treat absence as "not
// applicable", so the command surface must stay silent on a miss.
func Lookup(profile constants.InstallProfile, name string) (value string, ok bool) {
	switch name {
	case QueryBinDir:
		return profile.BinDir, true
	case QueryManDir:
		return profile.ManDir, true
	case QueryPkgDir:
		return profile.PkgDir, true
	case QueryPython:
		return profile.Interpreter, true
	default:
		return "", false
	}
}
