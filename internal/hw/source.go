package hw

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/jaypipes/ghw"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// CPUIdentity is the raw CPU identification gathered from the host.
// Zero values mean the field could not be determined.
type CPUIdentity struct {
	Model         string
	Vendor        string
	PhysicalCores int
	CurrentHz     int64
	MaxHz         int64
	Architecture  string
}

// Source is the set of OS queries the probes are built on.
type Source interface {
	Check(ctx context.Context, c Capability) error
	CPU(ctx context.Context) (*CPUIdentity, error)
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	Usage(ctx context.Context, path string) (*disk.UsageStat, error)
	Host(ctx context.Context) (*host.InfoStat, error)
	KernelBuild(ctx context.Context) (string, error)
}

// Runner runs an external command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type hostSource struct{}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (hostSource) Check(ctx context.Context, c Capability) error {
	switch c {
	case CapCPUIdentification:
		if _, err := cpu.InfoWithContext(ctx); err != nil {
			return fmt.Errorf("failed to query CPU identification: %w", err)
		}
	case CapSystemStats:
		if _, err := mem.VirtualMemoryWithContext(ctx); err != nil {
			return fmt.Errorf("failed to query memory statistics: %w", err)
		}
		if _, err := disk.PartitionsWithContext(ctx, false); err != nil {
			return fmt.Errorf("failed to query disk partitions: %w", err)
		}
	default:
		return fmt.Errorf("unknown capability %q", c)
	}
	return nil
}

func (hostSource) CPU(ctx context.Context) (*CPUIdentity, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}

	id := &CPUIdentity{}
	if len(infos) > 0 {
		id.Model = infos[0].ModelName
		id.Vendor = infos[0].VendorID
		id.MaxHz = int64(infos[0].Mhz * 1e6)
	}
	if id.Model == "" {
		id.Model = cpuid.CPU.BrandName
	}
	if id.Vendor == "" {
		id.Vendor = cpuid.CPU.VendorString
	}

	id.CurrentHz = cpuid.CPU.Hz
	if id.CurrentHz <= 0 {
		id.CurrentHz = id.MaxHz
	}
	if cpuid.CPU.BoostFreq > 0 {
		id.MaxHz = cpuid.CPU.BoostFreq
	}

	id.PhysicalCores = physicalCores(ctx)

	id.Architecture, err = host.KernelArch()
	if err != nil || id.Architecture == "" {
		id.Architecture = runtime.GOARCH
	}

	return id, nil
}

// topologyCores reports the physical core count from ghw's topology view.
// Warnings about partial topology are suppressed so they do not reach stderr.
var topologyCores = func() (int, error) {
	info, err := ghw.CPU(ghw.WithDisableWarnings())
	if err != nil {
		return 0, err
	}
	return int(info.TotalCores), nil
}

// countCores reports the physical core count from gopsutil.
var countCores = func(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, false)
}

// physicalCores prefers ghw's topology view and falls back to gopsutil.
func physicalCores(ctx context.Context) int {
	if n, err := topologyCores(); err == nil && n > 0 {
		return n
	}
	if n, err := countCores(ctx); err == nil {
		return n
	}
	return 0
}

func (hostSource) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get memory statistics: %w", err)
	}
	return vm, nil
}

func (hostSource) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}
	return parts, nil
}

func (hostSource) Usage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (hostSource) Host(ctx context.Context) (*host.InfoStat, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}
	return info, nil
}

func (hostSource) KernelBuild(ctx context.Context) (string, error) {
	return kernelBuild()
}
