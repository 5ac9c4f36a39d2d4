package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rustyeddy/breakeven/report"
	"github.com/rustyeddy/breakeven/risk"
	"github.com/rustyeddy/breakeven/scenario"
)

// Server is a stateless HTTP front end to the calculator. Each request
// carries its own inputs; missing values take the configured defaults.
type Server struct {
	defaults scenario.Input
	log      zerolog.Logger
	engine   *gin.Engine
}

func New(defaults scenario.Input, l zerolog.Logger) *Server {
	s := &Server{defaults: defaults, log: l}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/matrix", s.handleMatrix)
	api.GET("/breakeven", s.handleBreakeven)
	api.GET("/curves/profit", s.handleProfitCurve)
	api.GET("/curves/euro", s.handleEuroCurve)
	api.GET("/scenario", s.handleScenario)

	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// BreakevenResponse is the body of /api/breakeven.
type BreakevenResponse struct {
	RiskReward   float64 `json:"risk_reward"`
	FeePct       float64 `json:"fee_percent"`
	BreakevenPct float64 `json:"breakeven_percent"`
	Message      string  `json:"message"`
	FeeNote      string  `json:"fee_note,omitempty"`
}

// ScenarioResponse is the body of /api/scenario.
type ScenarioResponse struct {
	Input       scenario.Input    `json:"input"`
	Breakeven   BreakevenResponse `json:"breakeven"`
	ProfitChart report.Chart      `json:"profit_chart"`
	EuroChart   report.Chart      `json:"euro_chart"`
	Matrix      risk.Matrix       `json:"matrix"`
	Legend      []string          `json:"legend"`
}

func (s *Server) bind(c *gin.Context) (scenario.Input, risk.Params, bool) {
	in := s.defaults
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed query: " + err.Error()})
		return in, risk.Params{}, false
	}

	p, err := in.Resolve()
	if err != nil {
		body := gin.H{"error": err.Error()}
		var ve *scenario.ValidationError
		if errors.As(err, &ve) {
			body["violations"] = ve.Violations
		}
		c.JSON(http.StatusBadRequest, body)
		return in, risk.Params{}, false
	}
	return in.Normalize(), p, true
}

func breakevenResponse(in scenario.Input, p risk.Params) BreakevenResponse {
	be := risk.ComputeBreakeven(p.RiskReward, p.FeePct)
	return BreakevenResponse{
		RiskReward:   p.RiskReward,
		FeePct:       p.FeePct,
		BreakevenPct: be,
		Message:      report.BreakevenSentence(p.RiskReward, p.FeePct, be),
		FeeNote:      report.FeeNote(in),
	}
}

func (s *Server) handleMatrix(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"matrix": risk.ComputeBreakevenMatrix(),
		"legend": report.Legend,
	})
}

func (s *Server) handleBreakeven(c *gin.Context) {
	in, p, ok := s.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, breakevenResponse(in, p))
}

func (s *Server) handleProfitCurve(c *gin.Context) {
	_, p, ok := s.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.ProfitChart(risk.ComputeProfitCurve(p.RiskReward, p.FeePct)))
}

func (s *Server) handleEuroCurve(c *gin.Context) {
	_, p, ok := s.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.EuroChart(risk.ComputeEuroCurve(p.RiskReward, p.FeePct, p.Stake, p.Trades)))
}

func (s *Server) handleScenario(c *gin.Context) {
	in, p, ok := s.bind(c)
	if !ok {
		return
	}
	rep := scenario.Compute(in, p)
	profit, euro := report.Charts(rep)
	c.JSON(http.StatusOK, ScenarioResponse{
		Input:       in,
		Breakeven:   breakevenResponse(in, p),
		ProfitChart: profit,
		EuroChart:   euro,
		Matrix:      rep.BreakevenMatrix,
		Legend:      report.Legend,
	})
}
