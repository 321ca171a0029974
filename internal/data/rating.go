package data

import (
	"context"
	"fmt"

	"github.com/yixianOu/movie-review/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ratingRepo struct {
	data *Data
	log  *log.Helper
}

// NewRatingRepo creates a new rating repository
func NewRatingRepo(data *Data, logger log.Logger) biz.RatingRepo {
	return &ratingRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *ratingRepo) FindStar(ctx context.Context, value int32) (*biz.RatingStar, error) {
	var star RatingStar
	if err := r.data.db.WithContext(ctx).Where("value = ?", value).First(&star).Error; err != nil {
		return nil, convertError(err)
	}
	return &biz.RatingStar{ID: star.ID, Value: star.Value}, nil
}

func (r *ratingRepo) ListStars(ctx context.Context) ([]*biz.RatingStar, error) {
	var rows []RatingStar
	if err := r.data.db.WithContext(ctx).Order("value DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	stars := make([]*biz.RatingStar, 0, len(rows))
	for _, s := range rows {
		stars = append(stars, &biz.RatingStar{ID: s.ID, Value: s.Value})
	}
	return stars, nil
}

func (r *ratingRepo) CreateStar(ctx context.Context, star *biz.RatingStar) error {
	row := &RatingStar{Value: star.Value}
	if err := r.data.db.WithContext(ctx).Create(row).Error; err != nil {
		return convertError(err)
	}
	star.ID = row.ID
	return nil
}

// UpsertRating writes the (ip, movie) row in a single INSERT ... ON CONFLICT statement,
// so concurrent submissions for the same key can never produce two rows.
func (r *ratingRepo) UpsertRating(ctx context.Context, rating *biz.Rating) (bool, error) {
	var stored Rating
	isNew := false
	err := r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&Rating{}).
			Where("ip = ? AND movie_id = ?", rating.IP, rating.MovieID).
			Count(&existing).Error; err != nil {
			return err
		}
		isNew = existing == 0

		// Use GORM's ON CONFLICT clause for upsert
		row := &Rating{
			IP:      rating.IP,
			StarID:  rating.StarID,
			MovieID: rating.MovieID,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ip"}, {Name: "movie_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"star_id", "updated_at"}),
		}).Create(row).Error; err != nil {
			return err
		}

		return tx.Where("ip = ? AND movie_id = ?", rating.IP, rating.MovieID).First(&stored).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert rating: %w", convertError(err))
	}
	rating.ID = stored.ID

	r.data.refreshRankings(ctx, rating.MovieID)

	return isNew, nil
}

