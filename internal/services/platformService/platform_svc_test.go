package platformservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFamily(t *testing.T) {
	scenarios := map[string]struct {
		identity string
		family   Family
	}{
		"test bare linux": {
			identity: "Linux",
			family:   FamilyLinux,
		},
		"test full linux kernel string": {
			identity: "Linux 6.8.0-45-generic x86_64",
			family:   FamilyLinux,
		},
		"test gopsutil style lowercase": {
			identity: "linux 6.8.0-45-generic x86_64",
			family:   FamilyLinux,
		},
		"test freebsd release string": {
			identity: "FreeBSD 14.1-RELEASE amd64",
			family:   FamilyFreeBSD,
		},
		"test lowercase freebsd": {
			identity: "freebsd",
			family:   FamilyFreeBSD,
		},
		"test openbsd release string": {
			identity: "OpenBSD 7.4 GENERIC.MP amd64",
			family:   FamilyOpenBSD,
		},
		"test shouty openbsd": {
			identity: "OPENBSD",
			family:   FamilyOpenBSD,
		},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			family, err := DetectFamily(data.identity)

			assert.NoError(t, err)
			assert.Equal(t, data.family, family)
		})
	}
}

func TestDetectFamilyUnsupported(t *testing.T) {
	scenarios := map[string]string{
		"test sunos":   "SunOS 5.11 i86pc",
		"test darwin":  "Darwin 23.6.0 arm64",
		"test windows": "Windows_NT",
		"test empty":   "",
	}

	for scenario, identity := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			_, err := DetectFamily(identity)

			assert.Error(t, err)

			var unsupported *UnsupportedPlatformError
			assert.ErrorAs(t, err, &unsupported)
			// Diagnostic carries the raw identity verbatim
			assert.Equal(t, identity, unsupported.Identity)
			assert.Contains(t, err.Error(), identity)
		})
	}
}

func TestParseFamily(t *testing.T) {
	scenarios := map[string]struct {
		name   string
		family Family
	}{
		"test lowercase linux": {name: "linux", family: FamilyLinux},
		"test mixed case":      {name: "FreeBSD", family: FamilyFreeBSD},
		"test uppercase":       {name: "OPENBSD", family: FamilyOpenBSD},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			family, err := ParseFamily(data.name)

			assert.NoError(t, err)
			assert.Equal(t, data.family, family)
		})
	}
}

func TestParseFamilyRejectsInexactNames(t *testing.T) {
	// A flag value must name a family exactly; no substring sniffing
	for _, name := range []string{"my-linux-box", "plan9", ""} {
		_, err := ParseFamily(name)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown family")
	}
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "Linux", FamilyLinux.String())
	assert.Equal(t, "FreeBSD", FamilyFreeBSD.String())
	assert.Equal(t, "OpenBSD", FamilyOpenBSD.String())
}

func TestFamiliesOrder(t *testing.T) {
	// Detection priority order is part of the contract
	assert.Equal(t, []Family{FamilyLinux, FamilyFreeBSD, FamilyOpenBSD}, Families())
}
