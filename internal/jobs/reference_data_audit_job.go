package jobs

import (
	"context"
	"log/slog"

	"geodelivery/internal/core/domain/model/geo"

	"github.com/robfig/cron/v3"
)

// ReferenceDataAuditJob periodically re-checks the shipped reference tables
// for data quality issues: duplicate prefixes resolved by the loader and
// one-way rows in the border table. The tables are static, so findings never
// change between runs; the job exists to keep them visible in the logs until
// the data owners fix the source.
type ReferenceDataAuditJob struct {
	directory *geo.Directory
	borders   *geo.AdjacencyGraph
	cron      *cron.Cron
	spec      string
	logger    *slog.Logger
}

// NewReferenceDataAuditJob creates an audit job with the given cron spec.
// A nightly spec such as "0 3 * * *" is typical.
func NewReferenceDataAuditJob(
	directory *geo.Directory,
	borders *geo.AdjacencyGraph,
	spec string,
	logger *slog.Logger,
) *ReferenceDataAuditJob {
	return &ReferenceDataAuditJob{
		directory: directory,
		borders:   borders,
		cron:      cron.New(),
		spec:      spec,
		logger:    logger.With("component", "reference_data_audit_job"),
	}
}

// Start schedules the audit and runs one audit pass immediately so data
// issues surface at startup rather than at the first scheduled run.
func (j *ReferenceDataAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.audit(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reference data audit job started", "spec", j.spec)
	j.audit(context.Background())
	return nil
}

// Stop stops the audit job.
func (j *ReferenceDataAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reference data audit job stopped")
}

func (j *ReferenceDataAuditJob) audit(ctx context.Context) {
	conflicts := j.directory.Conflicts()
	for _, c := range conflicts {
		j.logger.WarnContext(ctx, "Duplicate prefix in reference table",
			"table", c.Table,
			"prefix", c.Prefix,
			"kept", c.Kept,
			"shadowed", c.Shadowed,
		)
	}

	edges := j.borders.AsymmetricEdges()
	for _, e := range edges {
		j.logger.WarnContext(ctx, "One-way border row in adjacency table",
			"from", e.From.String(),
			"to", e.To.String(),
		)
	}

	j.logger.InfoContext(ctx, "Reference data audit completed",
		"conflicts", len(conflicts),
		"asymmetric_edges", len(edges),
	)
}
