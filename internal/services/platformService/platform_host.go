package platformservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo holds diagnostic information about the current host system.
// It exists so an "unsupported platform" report can be accompanied by what
// the host actually looks like.
type HostInfo struct {
	// e.g. "linux", "freebsd", "openbsd"
	OS string
	// e.g. "amd64", "arm64"
	Arch string
	// e.g. "6.8.0-45-generic"
	KernelVersion string
	Hostname      string
	Uptime        time.Duration

	CPUModel string
	// physical cores
	CPUCores int
	// logical cores (threads)
	CPUThreads int
}

// GatherHostInfo collects host diagnostics in a cross-platform way.
func GatherHostInfo(ctx context.Context) (*HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("gathering host info: %w", err)
	}

	hi := &HostInfo{
		OS:            info.OS,
		Arch:          info.KernelArch,
		KernelVersion: info.KernelVersion,
		Hostname:      info.Hostname,
		Uptime:        time.Duration(info.Uptime) * time.Second,
		CPUModel:      cpuid.CPU.BrandName,
		CPUCores:      cpuid.CPU.PhysicalCores,
		CPUThreads:    cpuid.CPU.LogicalCores,
	}

	return hi, nil
}

func (h HostInfo) Format() string {
	var builder strings.Builder

	builder.WriteString("Host Information:\n")
	builder.WriteString(fmt.Sprintf("  OS:             %s\n", h.OS))
	builder.WriteString(fmt.Sprintf("  Architecture:   %s\n", h.Arch))
	builder.WriteString(fmt.Sprintf("  Kernel Version: %s\n", h.KernelVersion))
	builder.WriteString(fmt.Sprintf("  Hostname:       %s\n", h.Hostname))
	builder.WriteString(fmt.Sprintf("  Uptime:         %s\n", h.Uptime.String()))
	builder.WriteString(fmt.Sprintf("  CPU Model:      %s\n", h.CPUModel))
	builder.WriteString(fmt.Sprintf("  CPU Cores:      %d\n", h.CPUCores))
	builder.WriteString(fmt.Sprintf("  CPU Threads:    %d\n", h.CPUThreads))

	return builder.String()
}
