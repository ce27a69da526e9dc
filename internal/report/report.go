// Package report folds per-module results into one pass/fail signal and
// prints the failure narratives as it goes.
package report

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrz1836/verdict/internal/result"
	"github.com/mrz1836/verdict/internal/tui"
)

// ModuleSummary is the evaluated outcome of one module.
type ModuleSummary struct {
	Path      string `json:"path"`
	Type      string `json:"type"`
	Failed    bool   `json:"failed"`
	Narrative string `json:"narrative,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Reporter evaluates results for one flavor and prints their narratives.
type Reporter struct {
	out       tui.Output
	flavor    result.Flavor
	env       result.Env
	summaries []ModuleSummary
}

// New creates a Reporter that writes narratives to out.
func New(out tui.Output, flavor result.Flavor, env result.Env) *Reporter {
	return &Reporter{out: out, flavor: flavor, env: env}
}

// NewEnv returns the rendering environment for a run. Deep links are only
// rendered when inCI is set; failure headers use the error style.
func NewEnv(inCI bool, links result.LinkResolver) result.Env {
	return result.Env{
		InCI:      inCI,
		Links:     links,
		Emphasize: tui.Emphasize,
	}
}

// Process evaluates one result. It returns true when the module passed and
// false after printing its narrative when it failed. A result that cannot be
// classified counts as failed; the error is logged and printed, and never
// stops the caller from processing the next module.
func (r *Reporter) Process(ctx context.Context, res result.Result) bool {
	if isNil(res) {
		return true
	}

	failed, narrative, err := result.Evaluate(res, r.flavor, r.env)
	summary := ModuleSummary{
		Path:      res.Path(),
		Type:      res.Type(),
		Failed:    failed,
		Narrative: narrative,
	}

	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("module", res.Path()).
			Str("result_type", res.Type()).
			Msg("failed to classify result")

		if narrative == "" {
			narrative = r.header(res) + "\n"
		}
		summary.Failed = true
		summary.Narrative = narrative
		summary.Error = err.Error()
		r.summaries = append(r.summaries, summary)
		r.out.Narrative(narrative + err.Error())
		return false
	}

	r.summaries = append(r.summaries, summary)
	if !failed {
		zerolog.Ctx(ctx).Debug().Str("module", res.Path()).Str("result_type", res.Type()).Msg("module passed")
		return true
	}

	zerolog.Ctx(ctx).Info().Str("module", res.Path()).Str("result_type", res.Type()).Msg("module failed")
	r.out.Narrative(narrative)
	return false
}

func (r *Reporter) header(res result.Result) string {
	header := fmt.Sprintf("%s failed (%s flavor)", res.Type(), r.flavor)
	if r.env.Emphasize != nil {
		header = r.env.Emphasize(header)
	}
	return header
}

// Reduce processes every result in order and returns true only if all of
// them passed. A failure does not stop later results from being processed.
func (r *Reporter) Reduce(ctx context.Context, results ...result.Result) bool {
	success := true
	for _, res := range results {
		if !r.Process(ctx, res) {
			success = false
		}
	}
	return success
}

func isNil(res result.Result) bool {
	switch v := res.(type) {
	case nil:
		return true
	case *result.LintResult:
		return v == nil
	case *result.TestResult:
		return v == nil
	default:
		return false
	}
}

// Summary returns the outcome of every processed module in processing order.
func (r *Reporter) Summary() []ModuleSummary {
	return append([]ModuleSummary(nil), r.summaries...)
}

// Rows converts the summary into rows for the summary table.
func (r *Reporter) Rows() []tui.SummaryRow {
	rows := make([]tui.SummaryRow, 0, len(r.summaries))
	for _, s := range r.summaries {
		rows = append(rows, tui.SummaryRow{Module: s.Path, Check: s.Type, Failed: s.Failed})
	}
	return rows
}
