package data

import (
	"context"

	"github.com/yixianOu/movie-review/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

type catalogRepo struct {
	data *Data
	log  *log.Helper
}

// NewCatalogRepo creates a repository for categories and genres
func NewCatalogRepo(data *Data, logger log.Logger) biz.CatalogRepo {
	return &catalogRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *catalogRepo) CreateCategory(ctx context.Context, category *biz.Category) error {
	row := &Category{Name: category.Name, Description: category.Description, URL: category.URL}
	if err := r.data.db.WithContext(ctx).Create(row).Error; err != nil {
		return convertError(err)
	}
	category.ID = row.ID
	return nil
}

// DeleteCategory nulls the category of its movies; it never deletes movies.
func (r *catalogRepo) DeleteCategory(ctx context.Context, id uint) error {
	var movieIDs []uint
	err := r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Movie{}).Where("category_id = ?", id).Pluck("id", &movieIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&Movie{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return biz.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(movieIDs))
	for _, movieID := range movieIDs {
		keys = append(keys, movieDetailKey(movieID))
	}
	r.data.cacheDel(ctx, keys...)
	return nil
}

func (r *catalogRepo) CreateGenre(ctx context.Context, genre *biz.Genre) error {
	row := &Genre{Name: genre.Name, Description: genre.Description, URL: genre.URL}
	if err := r.data.db.WithContext(ctx).Create(row).Error; err != nil {
		return convertError(err)
	}
	genre.ID = row.ID
	return nil
}
