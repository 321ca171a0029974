package data

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yixianOu/movie-review/internal/biz"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	rankTopKey     = "rank:movies:top"
	rankPopularKey = "rank:movies:popular"
)

func (r *ratingRepo) TopRated(ctx context.Context, limit int) ([]*biz.RankedMovie, error) {
	if ranked, ok := r.fromRanking(ctx, rankTopKey, limit); ok {
		return ranked, nil
	}
	return r.rankFromDB(ctx, "average DESC, count DESC, movies.id", limit, func(row rankingRow) float64 {
		return row.Average
	})
}

func (r *ratingRepo) Popular(ctx context.Context, limit int) ([]*biz.RankedMovie, error) {
	if ranked, ok := r.fromRanking(ctx, rankPopularKey, limit); ok {
		return ranked, nil
	}
	return r.rankFromDB(ctx, "count DESC, average DESC, movies.id", limit, func(row rankingRow) float64 {
		return float64(row.Count)
	})
}

func (r *ratingRepo) rankFromDB(ctx context.Context, order string, limit int, score func(rankingRow) float64) ([]*biz.RankedMovie, error) {
	var rows []rankingRow
	if err := r.data.rankingAggregate(ctx).Order(order).Limit(limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to rank movies: %w", err)
	}
	ranked := make([]*biz.RankedMovie, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, &biz.RankedMovie{MovieID: row.MovieID, Title: row.Title, Score: score(row)})
	}
	return ranked, nil
}

// fromRanking pages through a ZSET until limit published movies are found or
// the set is exhausted. Members that are no longer published are skipped.
func (r *ratingRepo) fromRanking(ctx context.Context, key string, limit int) ([]*biz.RankedMovie, bool) {
	if r.data.rdb == nil || limit <= 0 {
		return nil, false
	}

	page := int64(limit)
	ranked := make([]*biz.RankedMovie, 0, limit)
	for start := int64(0); len(ranked) < limit; start += page {
		entries, err := r.data.rdb.ZRevRangeWithScores(ctx, key, start, start+page-1).Result()
		if err != nil {
			r.log.Warnf("failed to read ranking %s: %v", key, err)
			return nil, false
		}
		if start == 0 && len(entries) == 0 {
			return nil, false
		}

		resolved, err := r.resolveRanked(ctx, entries)
		if err != nil {
			r.log.Warnf("failed to resolve ranking %s: %v", key, err)
			return nil, false
		}
		for _, m := range resolved {
			if len(ranked) == limit {
				break
			}
			ranked = append(ranked, m)
		}
		if int64(len(entries)) < page {
			break
		}
	}
	return ranked, true
}

// resolveRanked attaches titles to ZSET entries, keeping their order and
// dropping members that are unknown or drafts.
func (r *ratingRepo) resolveRanked(ctx context.Context, entries []redis.Z) ([]*biz.RankedMovie, error) {
	type scored struct {
		id    uint
		score float64
	}
	members := make([]scored, 0, len(entries))
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		member, _ := e.Member.(string)
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		members = append(members, scored{id: uint(id), score: e.Score})
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var movies []Movie
	if err := r.data.db.WithContext(ctx).Select("id", "title").
		Where("id IN ? AND draft = ?", ids, false).Find(&movies).Error; err != nil {
		return nil, err
	}
	titles := make(map[uint]string, len(movies))
	for _, m := range movies {
		titles[m.ID] = m.Title
	}

	ranked := make([]*biz.RankedMovie, 0, len(members))
	for _, m := range members {
		title, ok := titles[m.id]
		if !ok {
			continue
		}
		ranked = append(ranked, &biz.RankedMovie{MovieID: m.id, Title: title, Score: m.score})
	}
	return ranked, nil
}

// rankingAggregate is the per-movie mean and count over published movies.
func (d *Data) rankingAggregate(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Table("ratings").
		Select("movies.id AS movie_id, movies.title AS title, AVG(rating_stars.value * 1.0) AS average, COUNT(ratings.id) AS count").
		Joins("JOIN movies ON movies.id = ratings.movie_id").
		Joins("JOIN rating_stars ON rating_stars.id = ratings.star_id").
		Where("movies.draft = ?", false).
		Group("movies.id, movies.title")
}

// refreshRankings rewrites one movie's scores. A movie without published
// ratings leaves both rankings.
func (d *Data) refreshRankings(ctx context.Context, movieID uint) {
	if d.rdb == nil {
		return
	}

	var rows []rankingRow
	if err := d.rankingAggregate(ctx).Where("movies.id = ?", movieID).Scan(&rows).Error; err != nil {
		d.log.Warnf("failed to get aggregate for ranking update: %v", err)
		return
	}
	if len(rows) == 0 || rows[0].Count == 0 {
		d.removeFromRankings(ctx, movieID)
		return
	}

	member := strconv.FormatUint(uint64(movieID), 10)
	pipe := d.rdb.TxPipeline()
	pipe.ZAdd(ctx, rankPopularKey, redis.Z{Score: float64(rows[0].Count), Member: member})
	pipe.ZAdd(ctx, rankTopKey, redis.Z{Score: rows[0].Average, Member: member})
	if _, err := pipe.Exec(ctx); err != nil {
		d.log.Warnf("failed to update rankings for movie %d: %v", movieID, err)
	}
}

func (d *Data) removeFromRankings(ctx context.Context, movieID uint) {
	if d.rdb == nil {
		return
	}
	member := strconv.FormatUint(uint64(movieID), 10)
	pipe := d.rdb.TxPipeline()
	pipe.ZRem(ctx, rankTopKey, member)
	pipe.ZRem(ctx, rankPopularKey, member)
	if _, err := pipe.Exec(ctx); err != nil {
		d.log.Warnf("failed to drop movie %d from rankings: %v", movieID, err)
	}
}

// rebuildRankings replaces both rankings from the database, picking up
// ratings written while Redis was unavailable.
func (d *Data) rebuildRankings(ctx context.Context) error {
	if d.rdb == nil {
		return nil
	}

	var rows []rankingRow
	if err := d.rankingAggregate(ctx).Scan(&rows).Error; err != nil {
		return fmt.Errorf("aggregate rankings: %w", err)
	}

	pipe := d.rdb.TxPipeline()
	pipe.Del(ctx, rankTopKey, rankPopularKey)
	for _, row := range rows {
		member := strconv.FormatUint(uint64(row.MovieID), 10)
		pipe.ZAdd(ctx, rankPopularKey, redis.Z{Score: float64(row.Count), Member: member})
		pipe.ZAdd(ctx, rankTopKey, redis.Z{Score: row.Average, Member: member})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write rankings: %w", err)
	}
	return nil
}
