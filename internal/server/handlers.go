// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdiddy/keyword-discovery/internal/discovery"
	"github.com/pdiddy/keyword-discovery/internal/expand"
	"github.com/pdiddy/keyword-discovery/internal/report"
	"github.com/pdiddy/keyword-discovery/internal/suggest"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

const emptyKeywordWarning = "Enter a keyword to start discovery."

func (s *Server) routes() {
	s.App.Get("/", s.handleIndex)
	s.App.Get("/run", s.handleRun)
	s.App.Get("/api/run", s.handleAPIRun)
	s.App.Get("/download.csv", s.handleDownload)
	s.App.Get("/healthz", s.handleHealth)

	if s.deps.Metrics != nil {
		h := promhttp.HandlerFor(s.deps.Metrics.Registry, promhttp.HandlerOpts{})
		s.App.Get("/metrics", adaptor.HTTPHandler(h))
	}
}

type serviceOption struct {
	Value    string
	Label    string
	Selected bool
}

type tallyRow struct {
	Intent     types.Intent
	Count      int
	Classified float64
	Overall    float64

	// Bucketed is false for the unclassified row, which has no
	// classified share.
	Bucketed bool
}

type pageData struct {
	Services []serviceOption
	Keyword  string
	Deep     bool
	Warnings []string

	Run             *types.Run
	Tally           []tallyRow
	Recommendations []string
	Failures        int
}

// page returns the form state echoed from the request query.
func (s *Server) page(c *fiber.Ctx, warning string) pageData {
	selected, _ := suggest.ParseService(c.Query("service"))
	data := pageData{
		Keyword: c.Query("keyword"),
		Deep:    parseBool(c.Query("deep")),
	}
	for _, svc := range suggest.Services {
		data.Services = append(data.Services, serviceOption{
			Value:    string(svc),
			Label:    svc.String(),
			Selected: svc == selected,
		})
	}
	if warning != "" {
		data.Warnings = append(data.Warnings, warning)
	}
	return data
}

func (d *pageData) setRun(run types.Run) {
	d.Run = &run
	d.Warnings = append(d.Warnings, run.Warnings...)
	d.Recommendations = report.Recommendations(run.Service, run.Tally)
	d.Failures = run.FailureCount()

	classified, overall := run.Tally.ClassifiedShare(), run.Tally.OverallShare()
	for _, i := range types.Intents {
		d.Tally = append(d.Tally, tallyRow{
			Intent:     i,
			Count:      run.Tally.Count(i),
			Classified: classified.Get(i),
			Overall:    overall.Get(i),
			Bucketed:   i != types.IntentUnclassified,
		})
	}
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return c.Render("index", s.page(c, ""))
}

func (s *Server) handleRun(c *fiber.Ctx) error {
	if strings.TrimSpace(c.Query("keyword")) == "" {
		return c.Render("index", s.page(c, emptyKeywordWarning))
	}
	run, err := s.discover(c)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, fmt.Sprintf("discovery interrupted: %v", err))
	}
	data := s.page(c, "")
	data.setRun(run)
	return c.Render("index", data)
}

type apiRun struct {
	report.RunJSON
	Recommendations []string `json:"recommendations"`
}

func (s *Server) handleAPIRun(c *fiber.Ctx) error {
	run, err := s.discover(c)
	switch {
	case errors.Is(err, expand.ErrEmptySeed):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case err != nil:
		return fiber.NewError(fiber.StatusServiceUnavailable, fmt.Sprintf("discovery interrupted: %v", err))
	}
	return c.JSON(apiRun{
		RunJSON:         report.NewRunJSON(run),
		Recommendations: report.Recommendations(run.Service, run.Tally),
	})
}

// handleDownload streams a run as CSV. With ?id= it serves a finished run;
// otherwise it runs a discovery from ?keyword= and &service=.
func (s *Server) handleDownload(c *fiber.Ctx) error {
	var (
		run types.Run
		err error
	)
	if id := c.Query("id"); id != "" {
		var ok bool
		if run, ok = s.lookup(c.UserContext(), id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "run not found")
		}
	} else {
		run, err = s.discover(c)
		switch {
		case errors.Is(err, expand.ErrEmptySeed):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case err != nil:
			return fiber.NewError(fiber.StatusServiceUnavailable, fmt.Sprintf("discovery interrupted: %v", err))
		}
	}

	c.Attachment(report.CSVFilename(run.Seed, run.Service))
	return report.WriteCSV(c, run.KeywordStrings())
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// discover runs one discovery from the request query and remembers it.
func (s *Server) discover(c *fiber.Ctx) (types.Run, error) {
	opts := s.deps.Options
	opts.Deep = parseBool(c.Query("deep"))
	opts.Logger = s.deps.Logger

	var rec discovery.RunRecorder
	if s.deps.Metrics != nil {
		opts.Recorder = s.deps.Metrics
		rec = s.deps.Metrics
	}

	req := discovery.Request{
		Seed:    c.Query("keyword"),
		Service: c.Query("service"),
		Options: opts,
	}
	run, err := discovery.Run(c.UserContext(), s.deps.Suggester, req, rec)
	if err != nil {
		return run, err
	}

	s.log.Info().
		Str("run", run.ID).
		Str("seed", run.Seed).
		Str("service", run.Service).
		Int("kept", len(run.Keywords)).
		Msg("discovery finished")
	s.remember(c.UserContext(), &run)
	return run, nil
}

func (s *Server) remember(ctx context.Context, run *types.Run) {
	if s.deps.Store != nil {
		if err := s.deps.Store.SaveRun(ctx, *run); err != nil {
			s.log.Error().Err(err).Str("run", run.ID).Msg("saving run")
			run.Warnings = append(run.Warnings, "run was not saved to history")
		}
	}
	s.recent.put(*run)
}

func (s *Server) lookup(ctx context.Context, id string) (types.Run, bool) {
	if run, ok := s.recent.get(id); ok {
		return run, true
	}
	if s.deps.Store == nil {
		return types.Run{}, false
	}
	run, err := s.deps.Store.GetRun(ctx, id)
	if err != nil {
		s.log.Debug().Err(err).Str("run", id).Msg("run lookup")
		return types.Run{}, false
	}
	return run, true
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
