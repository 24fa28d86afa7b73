package platformservice

import (
	"fmt"
	"strings"
)

// Family is one of the operating system families the install tooling knows
// how to lay files out for. It is decided once, at the detection boundary;
// everything downstream switches on the enum, never on raw identity strings.
type Family int

const (
	FamilyLinux Family = iota
	FamilyFreeBSD
	FamilyOpenBSD
)

// Controls how the enum displays when printed directly.
func (f Family) String() string {
	switch f {
	case FamilyLinux:
		return "Linux"
	case FamilyFreeBSD:
		return "FreeBSD"
	case FamilyOpenBSD:
		return "OpenBSD"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Families lists every supported family, in detection priority order.
func Families() []Family {
	return []Family{FamilyLinux, FamilyFreeBSD, FamilyOpenBSD}
}

// UnsupportedPlatformError is returned when the host identity string matches
// none of the recognized family markers. It carries the raw identity so the
// caller can report exactly what the host claimed to be.
type UnsupportedPlatformError struct {
	Identity string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Identity)
}

// Markers checked in fixed order; first match wins.
var familyMarkers = []struct {
	marker string
	family Family
}{
	{"linux", FamilyLinux},
	{"freebsd", FamilyFreeBSD},
	{"openbsd", FamilyOpenBSD},
}

// DetectFamily maps a uname-style identity string to a Family.
// Matching is a case-insensitive substring check, so both a bare "Linux" and
// a full "Linux 6.8.0-45-generic x86_64" kernel string resolve.
func DetectFamily(identity string) (Family, error) {
	probe := strings.ToLower(identity)

	for _, m := range familyMarkers {
		if strings.Contains(probe, m.marker) {
			return m.family, nil
		}
	}

	return 0, &UnsupportedPlatformError{Identity: identity}
}

// ParseFamily resolves a user-supplied family name, e.g. from a --family
// flag. Unlike DetectFamily it requires an exact (case-insensitive) name:
// a flag value is a deliberate choice, not a kernel string to be sniffed.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(name) {
	case "linux":
		return FamilyLinux, nil
	case "freebsd":
		return FamilyFreeBSD, nil
	case "openbsd":
		return FamilyOpenBSD, nil
	default:
		return 0, fmt.Errorf("unknown family: %s", name)
	}
}
