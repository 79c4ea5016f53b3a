package hw

import (
	"context"
	"fmt"
)

const notAvailable = "N/A"

// CPU identifies the host processor.
func (p *Prober) CPU(ctx context.Context) CPUInfo {
	if !p.caps.Available(CapCPUIdentification) {
		return CPUInfo{Error: unavailable(CapCPUIdentification)}
	}

	id, err := p.src.CPU(ctx)
	if err != nil {
		p.log.V(1).Info("cpu probe degraded", "error", err.Error())
		return CPUInfo{Error: fmt.Sprintf("Could not retrieve CPU info: %v", err)}
	}

	cores := notAvailable
	if id.PhysicalCores > 0 {
		cores = fmt.Sprint(id.PhysicalCores)
	}

	return CPUInfo{
		Model:  orNA(id.Model),
		Vendor: orNA(id.Vendor),
		Cores:  cores + " physical",
		Frequency: Frequency{
			Current: formatHz(id.CurrentHz),
			Max:     formatHz(id.MaxHz),
		},
		Architecture: orNA(id.Architecture),
	}
}

func formatHz(hz int64) string {
	if hz <= 0 {
		return notAvailable
	}
	return fmt.Sprintf("%.4f GHz", float64(hz)/1e9)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
