package optflags

import (
	"encoding/json"
	"testing"

	"github.com/hiveden/hwprobe/internal/hw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIntel(t *testing.T) {
	f := Generate(hw.CPUInfo{Architecture: "x86_64", Vendor: "GenuineIntel"})

	assert.Equal(t, "-march=native", f.Architecture)
	assert.Equal(t, "-mtune=native", f.Tune)
	assert.Equal(t, "-O3 -flto", f.Optimization)
	assert.Equal(t, "-ftree-vectorize", f.Vectorization)
	assert.NotEmpty(t, f.Comment)
	assert.True(t, f.Determined())
}

func TestGenerateAMDMatchesIntel(t *testing.T) {
	intel := Generate(hw.CPUInfo{Architecture: "x86_64", Vendor: "GenuineIntel"})
	amd := Generate(hw.CPUInfo{Architecture: "x86_64", Vendor: "AuthenticAMD"})

	assert.Equal(t, intel, amd)
}

func TestGenerateARM(t *testing.T) {
	for _, arch := range []string{"aarch64", "arm64", "ARM_8", "armv7l"} {
		t.Run(arch, func(t *testing.T) {
			f := Generate(hw.CPUInfo{Architecture: arch, Vendor: "ARM"})

			assert.Equal(t, "-march=native", f.Architecture)
			assert.Equal(t, "-mtune=native", f.Tune)
			assert.Equal(t, "-O3 -flto", f.Optimization)
			assert.Empty(t, f.Vectorization)
			assert.Contains(t, f.Comment, "ARM")
		})
	}
}

func TestGenerateNotDetermined(t *testing.T) {
	tests := []struct {
		name string
		cpu  hw.CPUInfo
	}{
		{"riscv", hw.CPUInfo{Architecture: "riscv64", Vendor: "SiFive"}},
		{"x86 unknown vendor", hw.CPUInfo{Architecture: "x86_64", Vendor: "CentaurHauls"}},
		{"error variant", hw.CPUInfo{Error: "cpuinfo unreadable"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Generate(tt.cpu)

			assert.Equal(t, Flags{Flags: NotDetermined}, f)
			assert.False(t, f.Determined())

			out, err := json.Marshal(f)
			require.NoError(t, err)
			assert.JSONEq(t, `{"Flags": "Not determined for this architecture."}`, string(out))
		})
	}
}

func TestGenerateCaseInsensitive(t *testing.T) {
	f := Generate(hw.CPUInfo{Architecture: "AMD64", Vendor: "GENUINEINTEL"})

	assert.Equal(t, "-ftree-vectorize", f.Vectorization)
}

func TestEntriesOrder(t *testing.T) {
	var keys []string
	for _, e := range Generate(hw.CPUInfo{Architecture: "aarch64"}).Entries() {
		keys = append(keys, e.Key)
	}

	assert.Equal(t, []string{"Architecture", "Tune", "Optimization", "Comment"}, keys)
}
