package platformservice

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// HostIdentity returns a uname-style identity string for the running host,
// i.e. "linux 6.8.0-45-generic x86_64". This is the single ambient read the
// resolver performs; callers that want a synthetic identity (tests, the
// --uname flag) skip this and pass their own string to DetectFamily.
func HostIdentity(ctx context.Context) string {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		// Fall back to the compile-time OS name
		return runtime.GOOS
	}

	return fmt.Sprintf("%s %s %s", info.OS, info.KernelVersion, info.KernelArch)
}
