package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yixianOu/movie-review/internal/biz"
	"github.com/yixianOu/movie-review/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewMovieRepo,
	NewReviewRepo,
	NewRatingRepo,
	NewActorRepo,
	NewCatalogRepo,
	NewBoxOfficeClient,
)

const cacheTTL = 15 * time.Minute

// Data encapsulates database and cache connections
type Data struct {
	db  *gorm.DB
	rdb *redis.Client
	log *log.Helper
}

// NewData creates Data instance with database and Redis connections
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)

	dialector, err := openDialector(c.Database)
	if err != nil {
		return nil, nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		l.Errorf("failed to connect to database: %v", err)
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		l.Errorf("failed to get database instance: %v", err)
		return nil, nil, err
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	l.Info("database connected successfully")

	data := &Data{
		db:  db,
		log: l,
	}
	if err := data.migrate(context.Background(), c.RatingStars); err != nil {
		l.Errorf("failed to migrate database: %v", err)
		_ = sqlDB.Close()
		return nil, nil, err
	}

	if c.Redis != nil && c.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         c.Redis.Addr,
			ReadTimeout:  c.Redis.ReadTimeout.AsDuration(),
			WriteTimeout: c.Redis.WriteTimeout.AsDuration(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			// Redis is optional, continue without it
			l.Warnf("failed to connect to redis: %v", err)
			_ = rdb.Close()
		} else {
			l.Info("redis connected successfully")
			data.rdb = rdb
			if err := data.rebuildRankings(ctx); err != nil {
				l.Warnf("failed to rebuild rankings: %v", err)
			}
		}
	}

	cleanup := func() {
		l.Info("closing data resources")
		if data.rdb != nil {
			if err := data.rdb.Close(); err != nil {
				l.Errorf("failed to close redis: %v", err)
			}
		}
		if err := sqlDB.Close(); err != nil {
			l.Errorf("failed to close database: %v", err)
		}
	}

	return data, cleanup, nil
}

func openDialector(c *conf.Data_Database) (gorm.Dialector, error) {
	if c == nil || c.Source == "" {
		return nil, errors.New("data.database.source is required")
	}
	switch c.Driver {
	case "", "postgres":
		return postgres.Open(c.Source), nil
	case "sqlite":
		return sqlite.Open(c.Source), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// migrate creates the schema and seeds the star levels into an empty table.
func (d *Data) migrate(ctx context.Context, stars []int32) error {
	db := d.db.WithContext(ctx)
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	var count int64
	if err := db.Model(&RatingStar{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count rating stars: %w", err)
	}
	if count > 0 || len(stars) == 0 {
		return nil
	}
	rows := make([]RatingStar, 0, len(stars))
	for _, v := range stars {
		rows = append(rows, RatingStar{Value: v})
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed rating stars: %w", err)
	}
	d.log.Infof("seeded %d rating stars", len(rows))
	return nil
}

// convertError maps driver-level errors onto biz errors.
func convertError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return biz.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", biz.ErrConflict, err)
	default:
		return err
	}
}

func (d *Data) cacheGet(ctx context.Context, key string, v interface{}) bool {
	if d.rdb == nil {
		return false
	}
	cached, err := d.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, v); err != nil {
		d.log.Warnf("dropping undecodable cache entry %s: %v", key, err)
		return false
	}
	d.log.Debugf("cache hit: %s", key)
	return true
}

func (d *Data) cacheSet(ctx context.Context, key string, v interface{}) {
	if d.rdb == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := d.rdb.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		d.log.Warnf("failed to cache %s: %v", key, err)
	}
}

func (d *Data) cacheDel(ctx context.Context, keys ...string) {
	if d.rdb == nil || len(keys) == 0 {
		return
	}
	if err := d.rdb.Del(ctx, keys...).Err(); err != nil {
		d.log.Warnf("failed to invalidate %v: %v", keys, err)
	}
}

func movieDetailKey(id uint) string {
	return fmt.Sprintf("movie:detail:%d", id)
}
