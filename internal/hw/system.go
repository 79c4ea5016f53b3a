package hw

import (
	"context"
	"runtime"
	"strings"
)

var osNames = map[string]string{
	"linux":   "Linux",
	"windows": "Windows",
	"darwin":  "Darwin",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
	"netbsd":  "NetBSD",
	"solaris": "SunOS",
	"aix":     "AIX",
}

// System retrieves the OS name, kernel release and kernel build version of
// the host. Version falls back to the distribution name and version where
// uname is unavailable. If the host cannot be queried, the OS name falls back
// to the build target and the other fields are reported as unknown.
func (p *Prober) System(ctx context.Context) SystemInfo {
	sysInfo := SystemInfo{
		OS:      osName(p.goos),
		Release: notAvailable,
		Version: notAvailable,
	}

	info, err := p.src.Host(ctx)
	if err != nil {
		p.log.V(1).Info("system probe degraded", "error", err.Error())
		return sysInfo
	}

	if info.OS != "" {
		sysInfo.OS = osName(info.OS)
	}
	sysInfo.Release = orNA(info.KernelVersion)
	sysInfo.Version = orNA(strings.TrimSpace(info.Platform + " " + info.PlatformVersion))
	if build, err := p.src.KernelBuild(ctx); err == nil && build != "" {
		sysInfo.Version = build
	}

	return sysInfo
}

func osName(goos string) string {
	if goos == "" {
		goos = runtime.GOOS
	}
	if name, ok := osNames[goos]; ok {
		return name
	}
	return goos
}
