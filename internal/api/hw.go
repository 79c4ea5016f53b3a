package api

import (
	"github.com/gin-gonic/gin"
	"github.com/hiveden/hwprobe/internal/optflags"
)

// GetHardwareInfo handles the GET /hw endpoint.
func (h *APIHandler) GetHardwareInfo(c *gin.Context) {
	respond(c, h.assembler.Assemble(c.Request.Context()))
}

// GetCompilerFlags handles the GET /hw/flags endpoint.
func (h *APIHandler) GetCompilerFlags(c *gin.Context) {
	respond(c, optflags.Generate(h.cpu.CPU(c.Request.Context())))
}
