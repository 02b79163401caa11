package screen

import (
	"context"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/aggregate"
	"golang.org/x/sync/errgroup"
)

// DashboardSource is the part of the domain client the dashboard reads.
type DashboardSource interface {
	ListSelfAssessments(ctx context.Context) ([]internal.SelfAssessment, error)
	ListRecommendations(ctx context.Context) ([]internal.Recommendation, error)
	ListWearableReadings(ctx context.Context) ([]internal.WearableReading, error)
}

// LoadDashboard fetches the three lists concurrently and summarizes them. The
// first failure cancels the other fetches.
func LoadDashboard(ctx context.Context, src DashboardSource) (aggregate.Summary, error) {
	var (
		assessments []internal.SelfAssessment
		recs        []internal.Recommendation
		readings    []internal.WearableReading
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assessments, err = src.ListSelfAssessments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recs, err = src.ListRecommendations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		readings, err = src.ListWearableReadings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return aggregate.Summary{}, err
	}
	return aggregate.Summarize(assessments, recs, readings), nil
}

// NewDashboardLoader wraps LoadDashboard so focus reloads of the dashboard
// do not overlap.
func NewDashboardLoader(src DashboardSource, observer Observer[aggregate.Summary], logger internal.Logger) *Loader[aggregate.Summary] {
	return NewLoader("dashboard", func(ctx context.Context) (aggregate.Summary, error) {
		return LoadDashboard(ctx, src)
	}, observer, logger)
}
