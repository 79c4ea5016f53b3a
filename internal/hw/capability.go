package hw

import (
	"context"
	"fmt"
)

// Capability names an external facility the probes depend on.
type Capability string

const (
	CapCPUIdentification Capability = "cpu-identification"
	CapSystemStats       Capability = "system-statistics"
)

// Required lists the capabilities checked at startup, in reporting order.
var Required = []Capability{CapCPUIdentification, CapSystemStats}

var remediations = map[Capability]string{
	CapCPUIdentification: "CPU identification needs a readable /proc/cpuinfo on Linux, sysctl on BSD/macOS or WMI on Windows.",
	CapSystemStats:       "Memory and disk statistics need a readable /proc and /sys on Linux, sysctl on BSD/macOS or WMI on Windows.",
}

// Remediation returns the operator instruction for obtaining c.
func (c Capability) Remediation() string {
	if r, ok := remediations[c]; ok {
		return r
	}
	return fmt.Sprintf("Make %s available on this host.", c)
}

// MissingCapabilityError is returned when a required capability is unavailable.
type MissingCapabilityError struct {
	Capability Capability
	Err        error
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("required capability '%s' is unavailable: %v", e.Capability, e.Err)
}

func (e *MissingCapabilityError) Unwrap() error { return e.Err }

// Remediation returns the instruction for fixing the missing capability.
func (e *MissingCapabilityError) Remediation() string { return e.Capability.Remediation() }

// Capabilities records the outcome of a single capability check.
type Capabilities struct {
	missing map[Capability]error
}

// Available reports whether c passed the check. Unchecked capabilities count
// as available.
func (c *Capabilities) Available(capability Capability) bool {
	if c == nil {
		return true
	}
	_, missing := c.missing[capability]
	return !missing
}

// Err returns the first missing capability in Required order, or nil.
func (c *Capabilities) Err() error {
	if c == nil {
		return nil
	}
	for _, capability := range Required {
		if err, ok := c.missing[capability]; ok {
			return &MissingCapabilityError{Capability: capability, Err: err}
		}
	}
	return nil
}

// unavailable builds the error-variant message a probe reports for c.
func unavailable(c Capability) string {
	return fmt.Sprintf("%s capability is unavailable. %s", c, c.Remediation())
}

// CheckCapabilities queries every required capability once and records the
// result on p so later probes can degrade without querying again.
func (p *Prober) CheckCapabilities(ctx context.Context) *Capabilities {
	caps := &Capabilities{missing: map[Capability]error{}}
	for _, capability := range Required {
		if err := p.src.Check(ctx, capability); err != nil {
			p.log.V(1).Info("capability unavailable", "capability", capability, "error", err.Error())
			caps.missing[capability] = err
		}
	}
	p.caps = caps
	return caps
}
