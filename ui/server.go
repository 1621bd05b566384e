package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gomonte/adapters/plot"
	"gomonte/app"
	"gomonte/internal"
	"gomonte/internal/config"
)

// Server exposes the simulation engine over HTTP: JSON results, PNG plots and
// HTML reports.
type Server struct {
	router      *gin.Engine
	simulations *app.SimulationService
	sweeps      *app.SweepService
	renderer    *plot.Renderer
	logger      *internal.Logger
	port        string
}

// NewServer creates the web server and wires its routes
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)

	simulations := app.NewSimulationService(cfg.Simulation)
	s := &Server{
		router:      gin.Default(),
		simulations: simulations,
		sweeps:      app.NewSweepService(simulations),
		renderer:    plot.NewRenderer(cfg.Output.Dir),
		logger:      internal.DefaultLogger,
		port:        cfg.Server.Port,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/functions", s.handleListFunctions)
		api.GET("/criteria", s.handleListCriteria)
		api.POST("/simulations", s.handleSimulate)
		api.POST("/simulations/plot", s.handleSimulatePlot)
		api.POST("/simulations/report", s.handleSimulateReport)
		api.POST("/sweeps", s.handleSweep)
	}
}

// Router returns the underlying handler, for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the server on the configured port
func (s *Server) Run() error {
	s.logger.Info("Starting server on port %s", s.port)
	return s.router.Run(":" + s.port)
}
