package hw

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	msgNoGPUTool      = "No standard GPU detection tool found for this OS."
	msgGPUToolMissing = "A command-line tool for GPU detection (like 'lspci' or 'wmic') was not found."
)

// GPU lists display adapters using the platform's inventory command:
// lspci on Linux and wmic on Windows.
func (p *Prober) GPU(ctx context.Context) []GPUInfo {
	var (
		name  string
		args  []string
		parse func(string) []string
	)
	switch p.goos {
	case "linux":
		name, parse = "lspci", parseLspci
	case "windows":
		name, args, parse = "wmic", []string{"path", "win32_videocontroller", "get", "caption"}, parseWmic
	default:
		return []GPUInfo{{Name: msgNoGPUTool}}
	}

	out, err := p.run.Output(ctx, name, args...)
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound):
			p.log.V(1).Info("gpu probe degraded", "tool", name, "error", err.Error())
			return []GPUInfo{{Error: msgGPUToolMissing}}
		case errors.As(err, &exitErr):
			// A failing exit status still leaves usable output behind.
		default:
			p.log.V(1).Info("gpu probe degraded", "tool", name, "error", err.Error())
			return []GPUInfo{{Error: fmt.Sprintf("An error occurred while detecting GPUs: %v", err)}}
		}
	}

	gpus := []GPUInfo{}
	for _, n := range parse(string(out)) {
		gpus = append(gpus, GPUInfo{Name: n})
	}
	return gpus
}

func parseLspci(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "VGA compatible controller") && !strings.Contains(line, "3D controller") {
			continue
		}
		name := strings.TrimSpace(line)
		if _, after, found := strings.Cut(name, ": "); found {
			name = after
		}
		names = append(names, name)
	}
	return names
}

func parseWmic(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "Caption") {
			continue
		}
		names = append(names, line)
	}
	return names
}
