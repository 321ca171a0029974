package data

import (
	"context"

	"github.com/yixianOu/movie-review/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

type reviewRepo struct {
	data *Data
	log  *log.Helper
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(data *Data, logger log.Logger) biz.ReviewRepo {
	return &reviewRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *reviewRepo) GetReview(ctx context.Context, id uint) (*biz.Review, error) {
	var row Review
	if err := r.data.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, convertError(err)
	}
	return reviewToBiz(&row), nil
}

func (r *reviewRepo) CreateReview(ctx context.Context, review *biz.Review) error {
	row := &Review{
		Email:    review.Email,
		Name:     review.Name,
		Text:     review.Text,
		MovieID:  review.MovieID,
		ParentID: review.ParentID,
	}
	if err := r.data.db.WithContext(ctx).Create(row).Error; err != nil {
		return convertError(err)
	}
	review.ID = row.ID
	r.data.cacheDel(ctx, movieDetailKey(review.MovieID))
	return nil
}

// DeleteReview detaches the review's replies before removing it.
func (r *reviewRepo) DeleteReview(ctx context.Context, id uint) error {
	var row Review
	err := r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			return convertError(err)
		}
		if err := tx.Model(&Review{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&Review{}, id).Error
	})
	if err != nil {
		return err
	}
	r.data.cacheDel(ctx, movieDetailKey(row.MovieID))
	return nil
}

func reviewToBiz(r *Review) *biz.Review {
	return &biz.Review{
		ID:       r.ID,
		Email:    r.Email,
		Name:     r.Name,
		Text:     r.Text,
		MovieID:  r.MovieID,
		ParentID: r.ParentID,
	}
}
