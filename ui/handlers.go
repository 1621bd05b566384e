package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gomonte/adapters/report"
	"gomonte/app"
	"gomonte/domain/core"
	"gomonte/domain/montecarlo"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListFunctions(c *gin.Context) {
	names := montecarlo.FunctionNames()
	c.JSON(http.StatusOK, gin.H{
		"functions": names,
		"count":     len(names),
	})
}

func (s *Server) handleListCriteria(c *gin.Context) {
	names := montecarlo.CriterionNames()
	c.JSON(http.StatusOK, gin.H{
		"criteria": names,
		"count":    len(names),
	})
}

func (s *Server) handleSimulate(c *gin.Context) {
	run, ok := s.runSimulation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) handleSimulatePlot(c *gin.Context) {
	run, ok := s.runSimulation(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "image/png")
	if err := s.renderer.WritePNG(c.Writer, run.Simulation); err != nil {
		s.logger.Error("Plot rendering failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render plot"})
	}
}

func (s *Server) handleSimulateReport(c *gin.Context) {
	run, ok := s.runSimulation(c)
	if !ok {
		return
	}

	html, err := report.HTML(run.Simulation)
	if err != nil {
		s.logger.Error("Report rendering failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (s *Server) handleSweep(c *gin.Context) {
	var req app.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.sweeps.Run(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// runSimulation binds the request, runs the engine and writes the error
// response on failure. The bool reports whether a run is available.
func (s *Server) runSimulation(c *gin.Context) (*app.SimulationRun, bool) {
	var req app.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	run, err := s.simulations.Run(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return nil, false
	}
	return run, true
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if core.IsFunctionContractError(err) || core.IsConfigurationError(err) || core.IsUsageError(err) {
		status = http.StatusBadRequest
	}
	s.logger.Warn("Simulation request failed: %v", err)
	c.JSON(status, gin.H{"error": err.Error()})
}
