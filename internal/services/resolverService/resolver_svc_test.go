package resolverservice

import (
	"strings"
	"testing"

	"github.com/netemu/emucfg/internal/constants"
	platformservice "github.com/netemu/emucfg/internal/services/platformService"

	"github.com/stretchr/testify/assert"
)

func TestResolveIsDeterministic(t *testing.T) {
	for _, family := range platformservice.Families() {
		t.Run(family.String(), func(t *testing.T) {
			first := Resolve(family, Options{})
			second := Resolve(family, Options{})

			assert.Equal(t, first, second)
		})
	}
}

func TestResolveBinDir(t *testing.T) {
	scenarios := map[string]struct {
		family platformservice.Family
		binDir string
	}{
		"test linux bindir": {
			family: platformservice.FamilyLinux,
			binDir: "/usr/bin",
		},
		"test freebsd bindir": {
			family: platformservice.FamilyFreeBSD,
			binDir: "/usr/local/bin",
		},
		"test openbsd bindir": {
			family: platformservice.FamilyOpenBSD,
			binDir: "/usr/local/bin",
		},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			profile := Resolve(data.family, Options{})

			value, ok := Lookup(profile, QueryBinDir)
			assert.True(t, ok)
			assert.Equal(t, data.binDir, value)
		})
	}
}

func TestFreeBSDManDirDerivesFromPrefix(t *testing.T) {
	profile := Resolve(platformservice.FamilyFreeBSD, Options{})

	value, ok := Lookup(profile, QueryManDir)
	assert.True(t, ok)
	// Rooted at the FreeBSD prefix, never the Linux man root
	assert.Equal(t, "/usr/local/man/man1", value)
	assert.True(t, strings.HasPrefix(value, "/usr/local"))
	assert.NotEqual(t, "/usr/share/man/man1", value)
}

func TestOpenBSDInterpreterIsVersionPinned(t *testing.T) {
	openbsd := Resolve(platformservice.FamilyOpenBSD, Options{})
	linux := Resolve(platformservice.FamilyLinux, Options{})

	assert.Equal(t, "python"+constants.DefaultPythonVersion, openbsd.Interpreter)
	assert.Equal(t, "python", linux.Interpreter)
}

func TestPythonVersionOption(t *testing.T) {
	profile := Resolve(platformservice.FamilyOpenBSD, Options{PythonVersion: "3.11"})

	assert.Equal(t, "python3.11", profile.Interpreter)
	assert.Equal(t, "/usr/local/lib/python3.11/site-packages", profile.PkgDir)
}

func TestLookupEveryQueryNonEmpty(t *testing.T) {
	for _, family := range platformservice.Families() {
		for _, name := range QueryNames() {
			value, ok := Lookup(Resolve(family, Options{}), name)

			assert.True(t, ok, "%s/%s", family, name)
			assert.NotEmpty(t, value, "%s/%s", family, name)
		}
	}
}

func TestLookupUnknownName(t *testing.T) {
	for _, family := range platformservice.Families() {
		profile := Resolve(family, Options{})

		value, ok := Lookup(profile, "prefix")
		assert.False(t, ok)
		assert.Empty(t, value)
	}
}
