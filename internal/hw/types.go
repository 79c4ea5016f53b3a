package hw

import "encoding/json"

// Frequency holds the human-scaled clock speeds of the CPU.
type Frequency struct {
	Current string `json:"Current" yaml:"Current"`
	Max     string `json:"Max" yaml:"Max"`
}

// CPUInfo contains identification data about the host CPU. When Error is set
// the probe could not run and the other fields carry no meaning.
type CPUInfo struct {
	Model        string    `json:"Model" yaml:"Model"`
	Vendor       string    `json:"Vendor" yaml:"Vendor"`
	Cores        string    `json:"Cores" yaml:"Cores"`
	Frequency    Frequency `json:"Frequency" yaml:"Frequency"`
	Architecture string    `json:"Architecture" yaml:"Architecture"`
	Error        string    `json:"-" yaml:"-"`
}

// MemoryInfo contains system memory statistics, scaled to GB.
type MemoryInfo struct {
	Total     string `json:"Total" yaml:"Total"`
	Available string `json:"Available" yaml:"Available"`
	Used      string `json:"Used" yaml:"Used"`
	Error     string `json:"-" yaml:"-"`
}

// GPUInfo is a single detected display adapter, or a detection error.
type GPUInfo struct {
	Name  string `json:"Name,omitempty" yaml:"Name,omitempty"`
	Error string `json:"Error,omitempty" yaml:"Error,omitempty"`
}

// DiskInfo holds usage details for one mounted partition.
type DiskInfo struct {
	Device          string `json:"Device" yaml:"Device"`
	Mountpoint      string `json:"Mountpoint" yaml:"Mountpoint"`
	FileSystem      string `json:"FileSystem" yaml:"FileSystem"`
	TotalSize       string `json:"TotalSize" yaml:"TotalSize"`
	Used            string `json:"Used" yaml:"Used"`
	Free            string `json:"Free" yaml:"Free"`
	UsagePercentage string `json:"UsagePercentage" yaml:"UsagePercentage"`
}

// DiskList is the result of the disk probe: either the readable partitions or
// a single error when partitions could not be enumerated at all.
type DiskList struct {
	Disks []DiskInfo
	Error string
}

// SystemInfo holds details about the host operating system.
type SystemInfo struct {
	OS      string `json:"OS" yaml:"OS"`
	Release string `json:"Release" yaml:"Release"`
	Version string `json:"Version" yaml:"Version"`
}

type errorInfo struct {
	Error string `json:"Error" yaml:"Error"`
}

// IsError reports whether the probe degraded to an error.
func (c CPUInfo) IsError() bool { return c.Error != "" }

// MarshalJSON encodes the error variant as {"Error": ...}.
func (c CPUInfo) MarshalJSON() ([]byte, error) {
	if c.IsError() {
		return json.Marshal(errorInfo{Error: c.Error})
	}
	type plain CPUInfo
	return json.Marshal(plain(c))
}

// MarshalYAML implements yaml.Marshaler.
func (c CPUInfo) MarshalYAML() (interface{}, error) {
	if c.IsError() {
		return errorInfo{Error: c.Error}, nil
	}
	type plain CPUInfo
	return plain(c), nil
}

// IsError reports whether the probe degraded to an error.
func (m MemoryInfo) IsError() bool { return m.Error != "" }

// MarshalJSON encodes the error variant as {"Error": ...}.
func (m MemoryInfo) MarshalJSON() ([]byte, error) {
	if m.IsError() {
		return json.Marshal(errorInfo{Error: m.Error})
	}
	type plain MemoryInfo
	return json.Marshal(plain(m))
}

// MarshalYAML implements yaml.Marshaler.
func (m MemoryInfo) MarshalYAML() (interface{}, error) {
	if m.IsError() {
		return errorInfo{Error: m.Error}, nil
	}
	type plain MemoryInfo
	return plain(m), nil
}

// IsError reports whether partition enumeration itself failed.
func (d DiskList) IsError() bool { return d.Error != "" }

// MarshalJSON encodes the list as an array, or the error variant as an object.
func (d DiskList) MarshalJSON() ([]byte, error) {
	if d.IsError() {
		return json.Marshal(errorInfo{Error: d.Error})
	}
	if d.Disks == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Disks)
}

// MarshalYAML implements yaml.Marshaler.
func (d DiskList) MarshalYAML() (interface{}, error) {
	if d.IsError() {
		return errorInfo{Error: d.Error}, nil
	}
	if d.Disks == nil {
		return []DiskInfo{}, nil
	}
	return d.Disks, nil
}
