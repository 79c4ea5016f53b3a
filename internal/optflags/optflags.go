// Package optflags derives GCC/G++ optimization flags from CPU identification.
//
// The mapping is a coarse substring heuristic over the architecture and vendor
// strings, not a CPU feature database.
package optflags

import (
	"strings"

	"github.com/hiveden/hwprobe/internal/hw"
)

const (
	NotDetermined = "Not determined for this architecture."

	x86Comment = "Using -march=native is often best for local builds."
	armComment = "Generic ARM flags. Specifics depend on the core (e.g., cortex-a72)."
)

// Flags is a compiler flag recommendation. Empty categories are omitted when
// serialized; Flags is only set when no recommendation could be made.
type Flags struct {
	Architecture  string `json:"Architecture,omitempty" yaml:"Architecture,omitempty"`
	Tune          string `json:"Tune,omitempty" yaml:"Tune,omitempty"`
	Optimization  string `json:"Optimization,omitempty" yaml:"Optimization,omitempty"`
	Vectorization string `json:"Vectorization,omitempty" yaml:"Vectorization,omitempty"`
	Comment       string `json:"Comment,omitempty" yaml:"Comment,omitempty"`
	Flags         string `json:"Flags,omitempty" yaml:"Flags,omitempty"`
}

// Entry is one named flag category.
type Entry struct {
	Key   string
	Value string
}

// Entries returns the set categories in display order.
func (f Flags) Entries() []Entry {
	all := []Entry{
		{"Architecture", f.Architecture},
		{"Tune", f.Tune},
		{"Optimization", f.Optimization},
		{"Vectorization", f.Vectorization},
		{"Comment", f.Comment},
		{"Flags", f.Flags},
	}
	entries := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.Value != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// Determined reports whether a recommendation was made.
func (f Flags) Determined() bool {
	return f.Flags == ""
}

// Generate returns the recommended flags for cpu. x86 is matched before ARM,
// and an x86 CPU from a vendor other than Intel or AMD gets no recommendation.
func Generate(cpu hw.CPUInfo) Flags {
	arch := strings.ToLower(cpu.Architecture)
	vendor := strings.ToLower(cpu.Vendor)

	switch {
	case strings.Contains(arch, "x86") || strings.Contains(arch, "amd64"):
		if strings.Contains(vendor, "intel") || strings.Contains(vendor, "amd") {
			return x86Flags()
		}
	case strings.Contains(arch, "aarch64") || strings.Contains(arch, "arm"):
		return Flags{
			Architecture: "-march=native",
			Tune:         "-mtune=native",
			Optimization: "-O3 -flto",
			Comment:      armComment,
		}
	}

	return Flags{Flags: NotDetermined}
}

func x86Flags() Flags {
	return Flags{
		Architecture:  "-march=native",
		Tune:          "-mtune=native",
		Optimization:  "-O3 -flto",
		Vectorization: "-ftree-vectorize",
		Comment:       x86Comment,
	}
}
