package redis

import (
	"context"
	"errors"
	"time"

	"github.com/campus-hub/campus-event-hub/internal/domain/report"
	"github.com/campus-hub/campus-event-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT CACHE
// Read-through cache for the two ranking reports. Entries live only for
// the configured TTL; writers never invalidate, so a report may lag the
// store by up to one TTL. Errors are logged and treated as misses.
// ══════════════════════════════════════════════════════════════════════════════

// ReportCache caches popularity and top-student rankings with a short TTL.
// It satisfies the query layer's cache contract.
type ReportCache struct {
	cache *Cache
	ttl   time.Duration
	log   *logger.Logger
}

// NewReportCache creates a new ReportCache.
func NewReportCache(cache *Cache, ttl time.Duration, log *logger.Logger) *ReportCache {
	return &ReportCache{cache: cache, ttl: ttl, log: log}
}

// GetPopularity returns a cached popularity ranking, if present.
func (rc *ReportCache) GetPopularity(ctx context.Context, key string) ([]report.PopularityRow, bool) {
	var rows []report.PopularityRow
	if err := rc.cache.Get(ctx, PrefixReport+key, &rows); err != nil {
		rc.logMiss(key, err)
		return nil, false
	}
	return rows, true
}

// SetPopularity stores a popularity ranking for the configured TTL.
func (rc *ReportCache) SetPopularity(ctx context.Context, key string, rows []report.PopularityRow) {
	if err := rc.cache.Set(ctx, PrefixReport+key, rows, rc.ttl); err != nil {
		rc.logWriteFailure(key, err)
	}
}

// GetTopStudents returns a cached top-student ranking, if present.
func (rc *ReportCache) GetTopStudents(ctx context.Context, key string) ([]report.ActiveStudentRow, bool) {
	var rows []report.ActiveStudentRow
	if err := rc.cache.Get(ctx, PrefixReport+key, &rows); err != nil {
		rc.logMiss(key, err)
		return nil, false
	}
	return rows, true
}

// SetTopStudents stores a top-student ranking for the configured TTL.
func (rc *ReportCache) SetTopStudents(ctx context.Context, key string, rows []report.ActiveStudentRow) {
	if err := rc.cache.Set(ctx, PrefixReport+key, rows, rc.ttl); err != nil {
		rc.logWriteFailure(key, err)
	}
}

func (rc *ReportCache) logMiss(key string, err error) {
	if rc.log == nil || errors.Is(err, ErrCacheMiss) {
		return
	}
	rc.log.Warn("report cache read failed, falling through to store",
		logger.String("key", key),
		logger.Err(err),
	)
}

func (rc *ReportCache) logWriteFailure(key string, err error) {
	if rc.log == nil {
		return
	}
	rc.log.Warn("report cache write failed",
		logger.String("key", key),
		logger.Err(err),
	)
}
