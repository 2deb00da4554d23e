// Package query contains the read side of the application layer: the
// reporting handlers. Each handler validates its query, delegates the
// aggregation to the report repository, and applies the presentation
// arithmetic (percentages, averages) in one place so the numbers are
// identical regardless of the storage backend.
package query

import (
	"context"
	"math"

	"github.com/campus-hub/campus-event-hub/internal/domain/report"
)

// ReportCache is an optional read-through cache in front of the two
// ranking reports. Handlers tolerate a nil cache and treat every cache
// error as a miss; the store remains the source of truth.
type ReportCache interface {
	GetPopularity(ctx context.Context, key string) ([]report.PopularityRow, bool)
	SetPopularity(ctx context.Context, key string, rows []report.PopularityRow)

	GetTopStudents(ctx context.Context, key string) ([]report.ActiveStudentRow, bool)
	SetTopStudents(ctx context.Context, key string, rows []report.ActiveStudentRow)
}

// round2 rounds to two decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
