// Package summarizer defines the abstraction for generating executive project
// summaries with an external language-model provider. Callers fall back to a
// locally composed summary when no provider is configured or the call fails.
package summarizer

import (
	"context"
)

// Delay is one schedule deviation handed to the provider.
type Delay struct {
	Module  string // Module names the slipping module.
	Gateway string // Gateway is the gateway key the slip was measured at.
	Days    int    // Days is the slip behind the project plan.
}

// Request carries the project facts the summary is generated from.
type Request struct {
	ProjectName string  // ProjectName is the project display name.
	ProjectType string  // ProjectType is the project type label.
	Readiness   float64 // Readiness is the deliverables readiness percentage.
	Delays      []Delay // Delays lists the active schedule deviations, worst first.
}

// Client is the abstraction for summary providers. Implementations turn the
// request into a short executive summary.
//
//go:generate mockgen -package mocksummarizer -source=interface.go -destination=mock/mocksummarizer.go *
type Client interface {
	// Summarize generates an executive summary for the given project facts.
	Summarize(ctx context.Context, req Request) (string, error)
}
