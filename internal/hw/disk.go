package hw

import (
	"context"
	"fmt"
)

// Disks reports usage for every mounted partition. Partitions whose usage
// cannot be read (e.g. an optical drive with no media) are left out.
func (p *Prober) Disks(ctx context.Context) DiskList {
	if !p.caps.Available(CapSystemStats) {
		return DiskList{Error: unavailable(CapSystemStats)}
	}

	parts, err := p.src.Partitions(ctx)
	if err != nil {
		p.log.V(1).Info("disk probe degraded", "error", err.Error())
		return DiskList{Error: fmt.Sprintf("Could not retrieve disk info: %v", err)}
	}

	disks := make([]DiskInfo, 0, len(parts))
	for _, part := range parts {
		usage, err := p.src.Usage(ctx, part.Mountpoint)
		if err != nil || usage == nil {
			continue
		}
		disks = append(disks, DiskInfo{
			Device:          part.Device,
			Mountpoint:      part.Mountpoint,
			FileSystem:      part.Fstype,
			TotalSize:       formatGB(usage.Total),
			Used:            formatGB(usage.Used),
			Free:            formatGB(usage.Free),
			UsagePercentage: formatPercent(usage.UsedPercent),
		})
	}

	return DiskList{Disks: disks}
}
