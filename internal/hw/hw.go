package hw

import (
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
)

const gb = 1024 * 1024 * 1024

// Prober gathers hardware information from the host. Each probe isolates its
// own failures and reports them inside its result instead of returning an error.
type Prober struct {
	src  Source
	run  Runner
	goos string
	caps *Capabilities
	log  logr.Logger
}

// NewProber creates a Prober backed by the running host.
func NewProber(log logr.Logger) *Prober {
	return &Prober{
		src:  hostSource{},
		run:  execRunner{},
		goos: runtime.GOOS,
		log:  log,
	}
}

// NewProberWithSource creates a Prober over the given source and command
// runner, probing as if running on goos.
func NewProberWithSource(src Source, run Runner, goos string, log logr.Logger) *Prober {
	return &Prober{src: src, run: run, goos: goos, log: log}
}

// Capabilities returns the result of the last CheckCapabilities call, or nil.
func (p *Prober) Capabilities() *Capabilities {
	return p.caps
}

func formatGB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/gb)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
