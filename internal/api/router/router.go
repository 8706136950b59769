package router

import (
	"bytes"
	"math"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/heaviside/internal/apperr"
	"github.com/DjordjeVuckovic/heaviside/internal/plot"
	"github.com/DjordjeVuckovic/heaviside/internal/scenario"
	"github.com/DjordjeVuckovic/heaviside/internal/step"
	"github.com/DjordjeVuckovic/heaviside/internal/sweep"
	"github.com/DjordjeVuckovic/heaviside/internal/temperature"
	"github.com/labstack/echo/v4"
)

// HeavisideRouter serves the step function, its sweep and the temperature
// converter. Query parameters that are omitted fall back to the scenario.
type HeavisideRouter struct {
	e        *echo.Echo
	scenario *scenario.Scenario
}

func NewHeavisideRouter(e *echo.Echo, sc *scenario.Scenario) *HeavisideRouter {
	return &HeavisideRouter{
		e:        e,
		scenario: sc,
	}
}

func (r *HeavisideRouter) Bind() {
	r.e.GET("/theta", r.thetaHandler)
	r.e.GET("/sweep", r.sweepHandler)
	r.e.GET("/sweep/plot.png", r.plotHandler)
	r.e.GET("/temperatures", r.temperaturesHandler)
	r.e.POST("/temperatures", r.convertHandler)
}

type ThetaResponse struct {
	step.Evaluation
	Text string `json:"text"`
}

func (r *HeavisideRouter) thetaHandler(c echo.Context) error {
	raw := c.QueryParam("x")
	if raw == "" {
		return apperr.NewFieldValidation("x", "query parameter is required", nil)
	}
	x, err := parseFloat("x", raw)
	if err != nil {
		return err
	}

	ev := step.Evaluate(x)
	return c.JSON(http.StatusOK, ThetaResponse{Evaluation: ev, Text: ev.String()})
}

type SweepResponse struct {
	Range  sweep.Range  `json:"range"`
	Points sweep.Points `json:"points"`
}

func (r *HeavisideRouter) sweepHandler(c echo.Context) error {
	rng, pts, err := r.sample(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SweepResponse{Range: rng, Points: pts})
}

func (r *HeavisideRouter) plotHandler(c echo.Context) error {
	_, pts, err := r.sample(c)
	if err != nil {
		return err
	}

	pl, err := plot.New(pts, r.scenario.Plot.Style, r.scenario.Plot.Title)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pl.Render(&buf, "png", plot.DefaultWidth, plot.DefaultHeight); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (r *HeavisideRouter) sample(c echo.Context) (sweep.Range, sweep.Points, error) {
	rng := r.scenario.Sweep
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"start", &rng.Start},
		{"stop", &rng.Stop},
		{"step", &rng.Step},
	} {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		v, err := parseFloat(p.name, raw)
		if err != nil {
			return rng, nil, err
		}
		*p.dst = v
	}

	if err := rng.Validate(); err != nil {
		return rng, nil, apperr.NewValidationWrap("invalid sweep range", err)
	}
	pts, err := sweep.Sample(rng, step.Theta)
	return rng, pts, err
}

type ConvertRequest struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Values []float64 `json:"values"`
}

type ConvertResponse struct {
	From    string    `json:"from"`
	To      string    `json:"to"`
	Inputs  []float64 `json:"inputs"`
	Outputs []float64 `json:"outputs"`
}

func (r *HeavisideRouter) temperaturesHandler(c echo.Context) error {
	req := ConvertRequest{
		From:   c.QueryParam("from"),
		To:     c.QueryParam("to"),
		Values: r.scenario.Temperatures.Values,
	}
	return r.convert(c, req)
}

func (r *HeavisideRouter) convertHandler(c echo.Context) error {
	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Values) == 0 {
		return apperr.NewFieldValidation("values", "at least one value is required", nil)
	}
	return r.convert(c, req)
}

func (r *HeavisideRouter) convert(c echo.Context, req ConvertRequest) error {
	if req.From == "" {
		req.From = r.scenario.Temperatures.From
	}
	if req.To == "" {
		req.To = r.scenario.Temperatures.To
	}

	from, err := temperature.ParseUnit(req.From)
	if err != nil {
		return apperr.NewFieldValidation("from", "unsupported unit", err)
	}
	to, err := temperature.ParseUnit(req.To)
	if err != nil {
		return apperr.NewFieldValidation("to", "unsupported unit", err)
	}

	out, err := temperature.ConvertAll(req.Values, from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ConvertResponse{
		From:    from.String(),
		To:      to.String(),
		Inputs:  req.Values,
		Outputs: out,
	})
}

func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.NewFieldValidation(field, "must be a number", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperr.NewFieldValidation(field, "must be finite", nil)
	}
	return v, nil
}
