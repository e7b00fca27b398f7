package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bluele/gcache"

	"github.com/vbb-change-positions/internal/common/logger"
	"github.com/vbb-change-positions/internal/directory"
	"github.com/vbb-change-positions/pkg/positions/models"
)

// Directory memoises lookups of an underlying directory. Autocomplete
// fires a search per keystroke, and the same hub station is asked for its
// lines twice per run.
type Directory struct {
	next   directory.Directory
	cache  gcache.Cache
	logger logger.Logger
}

func New(next directory.Directory, size int, ttl time.Duration, logger logger.Logger) *Directory {
	return &Directory{
		next: next,
		cache: gcache.New(size).
			LRU().
			Expiration(ttl).
			Build(),
		logger: logger,
	}
}

func (d *Directory) StationByID(ctx context.Context, id string) (models.Station, error) {
	key := "station:" + id
	if v, err := d.cache.Get(key); err == nil {
		d.logger.Debug("Cache hit", "key", key)
		return v.(models.Station), nil
	}

	s, err := d.next.StationByID(ctx, id)
	if err != nil {
		return models.Station{}, err
	}
	d.set(key, s)
	return s, nil
}

func (d *Directory) SearchStations(ctx context.Context, query string, limit int) ([]models.Station, error) {
	key := fmt.Sprintf("search:%d:%s", limit, query)
	if v, err := d.cache.Get(key); err == nil {
		d.logger.Debug("Cache hit", "key", key)
		return v.([]models.Station), nil
	}

	stations, err := d.next.SearchStations(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	d.set(key, stations)
	for _, s := range stations {
		d.set("station:"+s.ID, s)
	}
	return stations, nil
}

func (d *Directory) LinesAt(ctx context.Context, stationID string) ([]models.Line, error) {
	key := "lines:" + stationID
	if v, err := d.cache.Get(key); err == nil {
		d.logger.Debug("Cache hit", "key", key)
		return v.([]models.Line), nil
	}

	lines, err := d.next.LinesAt(ctx, stationID)
	if err != nil {
		return nil, err
	}
	d.set(key, lines)
	return lines, nil
}

func (d *Directory) set(key string, value interface{}) {
	if err := d.cache.Set(key, value); err != nil {
		d.logger.Warn("Failed to cache value", "key", key, "error", err)
	}
}
