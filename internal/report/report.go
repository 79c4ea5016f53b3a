package report

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/hiveden/hwprobe/internal/hw"
	"github.com/hiveden/hwprobe/internal/optflags"
)

// Report is the aggregate hardware report. Every field is always populated,
// possibly with a probe's error variant.
type Report struct {
	CPU           hw.CPUInfo     `json:"cpu" yaml:"cpu"`
	Memory        hw.MemoryInfo  `json:"memory" yaml:"memory"`
	GPU           []hw.GPUInfo   `json:"gpu" yaml:"gpu"`
	Disks         hw.DiskList    `json:"disks" yaml:"disks"`
	CompilerFlags optflags.Flags `json:"compiler_flags" yaml:"compiler_flags"`
	System        hw.SystemInfo  `json:"system" yaml:"system"`
	Generated     time.Time      `json:"generated" yaml:"generated"`
}

// Prober is the set of probes a report is assembled from.
type Prober interface {
	CPU(ctx context.Context) hw.CPUInfo
	Memory(ctx context.Context) hw.MemoryInfo
	GPU(ctx context.Context) []hw.GPUInfo
	Disks(ctx context.Context) hw.DiskList
	System(ctx context.Context) hw.SystemInfo
}

// Assembler runs the probes one after another and composes a Report.
type Assembler struct {
	prober Prober
	now    func() time.Time
	log    logr.Logger
}

// NewAssembler creates an Assembler over prober.
func NewAssembler(prober Prober, log logr.Logger) *Assembler {
	return &Assembler{prober: prober, now: time.Now, log: log}
}

// Assemble gathers a full report. Probes are not retried.
func (a *Assembler) Assemble(ctx context.Context) *Report {
	cpu := a.prober.CPU(ctx)

	r := &Report{
		CPU:           cpu,
		Memory:        a.prober.Memory(ctx),
		GPU:           a.prober.GPU(ctx),
		Disks:         a.prober.Disks(ctx),
		CompilerFlags: optflags.Generate(cpu),
		System:        a.prober.System(ctx),
		Generated:     a.now(),
	}
	if r.GPU == nil {
		r.GPU = []hw.GPUInfo{}
	}

	a.log.V(1).Info("report assembled",
		"cpuError", r.CPU.IsError(),
		"memoryError", r.Memory.IsError(),
		"gpus", len(r.GPU),
		"disks", len(r.Disks.Disks),
		"flagsDetermined", r.CompilerFlags.Determined(),
	)

	return r
}
