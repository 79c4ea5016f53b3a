package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/hiveden/hwprobe/internal/hw"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	checkErr map[hw.Capability]error
	queried  []string
}

func (m *mockSource) Check(ctx context.Context, c hw.Capability) error {
	return m.checkErr[c]
}

func (m *mockSource) CPU(ctx context.Context) (*hw.CPUIdentity, error) {
	m.queried = append(m.queried, "cpu")
	return &hw.CPUIdentity{
		Model:         "Intel(R) Xeon(R) Gold 6248",
		Vendor:        "GenuineIntel",
		PhysicalCores: 20,
		CurrentHz:     2_500_000_000,
		MaxHz:         3_900_000_000,
		Architecture:  "x86_64",
	}, nil
}

func (m *mockSource) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	m.queried = append(m.queried, "memory")
	return &mem.VirtualMemoryStat{Total: 64 << 30, Available: 32 << 30, Used: 32 << 30, UsedPercent: 50}, nil
}

func (m *mockSource) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	m.queried = append(m.queried, "partitions")
	return []disk.PartitionStat{{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"}}, nil
}

func (m *mockSource) Usage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return &disk.UsageStat{Total: 100 << 30, Used: 25 << 30, Free: 75 << 30, UsedPercent: 25}, nil
}

func (m *mockSource) Host(ctx context.Context) (*host.InfoStat, error) {
	m.queried = append(m.queried, "host")
	return &host.InfoStat{OS: "linux", KernelVersion: "6.8.0"}, nil
}

func (m *mockSource) KernelBuild(ctx context.Context) (string, error) {
	return "#1 SMP PREEMPT_DYNAMIC", nil
}

type mockRunner struct{}

func (mockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return []byte("00:02.0 VGA compatible controller: Matrox Electronics Systems Ltd. G200eR2\n"), nil
}

func runWith(t *testing.T, src *mockSource, args ...string) (int, string, string) {
	t.Helper()
	color.NoColor = true
	var stdout, stderr bytes.Buffer
	prober := hw.NewProberWithSource(src, mockRunner{}, "linux", logr.Discard())
	code := run(args, prober, &stdout, &stderr, logr.Discard())
	return code, stdout.String(), stderr.String()
}

func TestRunMissingCapability(t *testing.T) {
	src := &mockSource{checkErr: map[hw.Capability]error{hw.CapSystemStats: errors.New("/proc not mounted")}}

	code, stdout, stderr := runWith(t, src)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: required capability 'system-statistics' is unavailable: /proc not mounted")
	assert.Contains(t, stderr, "Please make it available: "+hw.CapSystemStats.Remediation())
	assert.Empty(t, src.queried, "no hardware query may run after a failed startup check")
}

func TestRunMissingCapabilityJSON(t *testing.T) {
	src := &mockSource{checkErr: map[hw.Capability]error{hw.CapCPUIdentification: errors.New("no cpuinfo")}}

	code, stdout, stderr := runWith(t, src, "--json")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "'cpu-identification'")
}

func TestRunJSON(t *testing.T) {
	code, stdout, stderr := runWith(t, &mockSource{}, "--json")

	require.Equal(t, 0, code, stderr)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	for _, key := range []string{"cpu", "memory", "gpu", "disks", "compiler_flags", "system"} {
		assert.Contains(t, decoded, key)
	}
	assert.Contains(t, string(decoded["gpu"]), "Matrox Electronics Systems Ltd. G200eR2")
}

func TestRunText(t *testing.T) {
	code, stdout, _ := runWith(t, &mockSource{})

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "export CFLAGS=\"-march=native -mtune=native -O3 -flto\"")
	assert.Contains(t, stdout, "export MAKEFLAGS=\"-j20\"")
}

func TestRunRejectsArguments(t *testing.T) {
	code, stdout, stderr := runWith(t, &mockSource{}, "extra")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.NotEmpty(t, stderr)
}
