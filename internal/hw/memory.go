package hw

import (
	"context"
	"fmt"
)

// Memory reports total, available and used RAM. The used percentage is the
// one reported by the OS.
func (p *Prober) Memory(ctx context.Context) MemoryInfo {
	if !p.caps.Available(CapSystemStats) {
		return MemoryInfo{Error: unavailable(CapSystemStats)}
	}

	vm, err := p.src.VirtualMemory(ctx)
	if err != nil {
		p.log.V(1).Info("memory probe degraded", "error", err.Error())
		return MemoryInfo{Error: fmt.Sprintf("Could not retrieve memory info: %v", err)}
	}

	return MemoryInfo{
		Total:     formatGB(vm.Total),
		Available: formatGB(vm.Available),
		Used:      fmt.Sprintf("%s (%s)", formatGB(vm.Used), formatPercent(vm.UsedPercent)),
	}
}
