package report

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/hiveden/hwprobe/internal/hw"
	"github.com/hiveden/hwprobe/internal/optflags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProber struct {
	cpu   hw.CPUInfo
	gpu   []hw.GPUInfo
	calls []string
}

func (m *mockProber) CPU(ctx context.Context) hw.CPUInfo {
	m.calls = append(m.calls, "cpu")
	return m.cpu
}

func (m *mockProber) Memory(ctx context.Context) hw.MemoryInfo {
	m.calls = append(m.calls, "memory")
	return hw.MemoryInfo{Error: "Could not retrieve memory info: denied"}
}

func (m *mockProber) GPU(ctx context.Context) []hw.GPUInfo {
	m.calls = append(m.calls, "gpu")
	return m.gpu
}

func (m *mockProber) Disks(ctx context.Context) hw.DiskList {
	m.calls = append(m.calls, "disks")
	return hw.DiskList{Disks: []hw.DiskInfo{{Device: "/dev/sda1", Mountpoint: "/"}}}
}

func (m *mockProber) System(ctx context.Context) hw.SystemInfo {
	m.calls = append(m.calls, "system")
	return hw.SystemInfo{OS: "Linux", Release: "6.8.0", Version: "ubuntu 24.04"}
}

func TestAssemble(t *testing.T) {
	stamp := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	p := &mockProber{cpu: hw.CPUInfo{Architecture: "x86_64", Vendor: "GenuineIntel", Cores: "4 physical"}}
	a := &Assembler{prober: p, now: func() time.Time { return stamp }}

	r := a.Assemble(context.Background())

	require.NotNil(t, r)
	assert.Equal(t, []string{"cpu", "memory", "gpu", "disks", "system"}, p.calls)
	assert.Equal(t, optflags.Generate(p.cpu), r.CompilerFlags)
	assert.True(t, r.Memory.IsError())
	assert.Len(t, r.Disks.Disks, 1)
	assert.Equal(t, stamp, r.Generated)
}

func TestAssembleNilGPUBecomesEmptyList(t *testing.T) {
	a := NewAssembler(&mockProber{cpu: hw.CPUInfo{Error: "boom"}}, logr.Discard())

	r := a.Assemble(context.Background())

	assert.NotNil(t, r.GPU)
	assert.Empty(t, r.GPU)
	assert.False(t, r.CompilerFlags.Determined())
	assert.False(t, r.Generated.IsZero())
}
