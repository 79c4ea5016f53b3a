package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hiveden/hwprobe/internal/hw"
	"github.com/hiveden/hwprobe/internal/optflags"
	"github.com/hiveden/hwprobe/internal/report"
)

var (
	titleColor   = color.New(color.FgHiWhite, color.Bold)
	sectionColor = color.New(color.FgCyan, color.Bold)
	bannerColor  = color.New(color.FgYellow)
	exportColor  = color.New(color.FgGreen)
)

const (
	ruleWidth    = 80
	sectionWidth = 40
)

// Text writes r as a human-readable report followed by shell export lines.
func Text(w io.Writer, r *report.Report) error {
	var b strings.Builder

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(&b, rule)
	titleColor.Fprintln(&b, "HARDWARE ENUMERATION & COMPILER OPTIMIZATION REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Generated: %s\n", r.Generated.Format(time.RFC3339))

	banner(&b, "HARDWARE LISTING")

	section(&b, "CPU INFORMATION")
	writeCPU(&b, r.CPU)

	section(&b, "MEMORY INFORMATION")
	writeMemory(&b, r.Memory)

	section(&b, "GRAPHICS CARDS")
	writeGPUs(&b, r.GPU)

	section(&b, "STORAGE DEVICES")
	writeDisks(&b, r.Disks)

	banner(&b, "OPTIMAL COMPILER FLAGS")
	section(&b, "GCC/G++ OPTIMIZATION")
	for _, e := range r.CompilerFlags.Entries() {
		fmt.Fprintf(&b, "  %s: %s\n", e.Key, e.Value)
	}

	banner(&b, "QUICK COPY COMMANDS")
	fmt.Fprintln(&b, "\n# General Purpose Optimization")
	exportColor.Fprintf(&b, "export CFLAGS=\"%s\"\n", CFlags(r.CompilerFlags))
	exportColor.Fprintln(&b, `export CXXFLAGS="$CFLAGS"`)
	if n, ok := ParallelJobs(r.CPU); ok {
		fmt.Fprintf(&b, "\n# Parallel Build (using %d cores)\n", n)
		exportColor.Fprintf(&b, "export MAKEFLAGS=\"-j%d\"\n", n)
	}

	fmt.Fprintln(&b, "\n"+rule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// CFlags joins the Architecture, Tune and Optimization categories into a
// CFLAGS value. Missing categories leave empty segments; the ends are trimmed.
func CFlags(f optflags.Flags) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", f.Architecture, f.Tune, f.Optimization))
}

// ParallelJobs parses the leading number of the CPU core-count string,
// e.g. 8 from "8 physical".
func ParallelJobs(cpu hw.CPUInfo) (int, bool) {
	if cpu.IsError() {
		return 0, false
	}
	fields := strings.Fields(cpu.Cores)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

func banner(b *strings.Builder, title string) {
	bar := strings.Repeat("=", 20)
	bannerColor.Fprintf(b, "\n%s %s %s\n", bar, title, bar)
}

func section(b *strings.Builder, title string) {
	fmt.Fprintln(b)
	sectionColor.Fprintln(b, title)
	fmt.Fprintln(b, strings.Repeat(".", sectionWidth))
}

func writeCPU(b *strings.Builder, cpu hw.CPUInfo) {
	if cpu.IsError() {
		fmt.Fprintf(b, "  Error: %s\n", cpu.Error)
		return
	}
	fmt.Fprintf(b, "  Model: %s\n", cpu.Model)
	fmt.Fprintf(b, "  Vendor: %s\n", cpu.Vendor)
	fmt.Fprintf(b, "  Cores: %s\n", cpu.Cores)
	fmt.Fprintln(b, "  Frequency:")
	fmt.Fprintf(b, "    Current: %s\n", cpu.Frequency.Current)
	fmt.Fprintf(b, "    Max: %s\n", cpu.Frequency.Max)
	fmt.Fprintf(b, "  Architecture: %s\n", cpu.Architecture)
}

func writeMemory(b *strings.Builder, m hw.MemoryInfo) {
	if m.IsError() {
		fmt.Fprintf(b, "  Error: %s\n", m.Error)
		return
	}
	fmt.Fprintf(b, "  Total: %s\n", m.Total)
	fmt.Fprintf(b, "  Available: %s\n", m.Available)
	fmt.Fprintf(b, "  Used: %s\n", m.Used)
}

func writeGPUs(b *strings.Builder, gpus []hw.GPUInfo) {
	if len(gpus) == 0 {
		fmt.Fprintln(b, "  No GPUs detected or an error occurred.")
		return
	}
	for i, gpu := range gpus {
		fmt.Fprintf(b, "  GPU %d:\n", i+1)
		if gpu.Error != "" {
			fmt.Fprintf(b, "    Error: %s\n", gpu.Error)
			continue
		}
		fmt.Fprintf(b, "    Name: %s\n", gpu.Name)
	}
}

func writeDisks(b *strings.Builder, disks hw.DiskList) {
	if disks.IsError() {
		fmt.Fprintf(b, "  Error: %s\n", disks.Error)
		return
	}
	if len(disks.Disks) == 0 {
		fmt.Fprintln(b, "  No disks detected or an error occurred.")
		return
	}
	for i, d := range disks.Disks {
		fmt.Fprintf(b, "  Disk %d:\n", i+1)
		fmt.Fprintf(b, "    Device: %s\n", d.Device)
		fmt.Fprintf(b, "    Mountpoint: %s\n", d.Mountpoint)
		fmt.Fprintf(b, "    FileSystem: %s\n", d.FileSystem)
		fmt.Fprintf(b, "    TotalSize: %s\n", d.TotalSize)
		fmt.Fprintf(b, "    Used: %s\n", d.Used)
		fmt.Fprintf(b, "    Free: %s\n", d.Free)
		fmt.Fprintf(b, "    UsagePercentage: %s\n", d.UsagePercentage)
	}
}
