package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hiveden/hwprobe/internal/hw"
	"github.com/hiveden/hwprobe/internal/report"
	"gopkg.in/yaml.v2"
)

// Assembler builds hardware reports.
type Assembler interface {
	Assemble(ctx context.Context) *report.Report
}

// CPUProber identifies the host CPU.
type CPUProber interface {
	CPU(ctx context.Context) hw.CPUInfo
}

// APIHandler serves hardware reports over HTTP.
type APIHandler struct {
	assembler Assembler
	cpu       CPUProber
}

// NewAPIHandler creates a new APIHandler. Full reports come from a; the
// flags endpoint only needs cpu.
func NewAPIHandler(a Assembler, cpu CPUProber) *APIHandler {
	return &APIHandler{assembler: a, cpu: cpu}
}

// RegisterRoutes mounts the hardware endpoints on r.
func (h *APIHandler) RegisterRoutes(r gin.IRouter) {
	hwGroup := r.Group("/hw")
	{
		hwGroup.GET("", h.GetHardwareInfo)
		hwGroup.GET("/flags", h.GetCompilerFlags)
	}
}

// respond writes v as JSON, or as YAML when the request asks for ?format=yaml.
func respond(c *gin.Context, v interface{}) {
	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, v)
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/x-yaml; charset=utf-8", out)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format: " + c.Query("format")})
	}
}
