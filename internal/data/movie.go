package data

import (
	"context"
	"fmt"

	"github.com/yixianOu/movie-review/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

type movieRepo struct {
	data *Data
	log  *log.Helper
}

// NewMovieRepo creates a new movie repository
func NewMovieRepo(data *Data, logger log.Logger) biz.MovieRepo {
	return &movieRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// movieSummaryRow is one aggregated row of the movie list query
type movieSummaryRow struct {
	ID           uint
	Title        string
	Tagline      string
	CategoryName *string
	UserRatings  int64
	MiddleStar   *float64
}

func (r *movieRepo) ListMovies(ctx context.Context, clientIP string) ([]*biz.MovieSummary, error) {
	var rows []movieSummaryRow
	err := r.data.db.WithContext(ctx).
		Table("movies").
		Select(`movies.id, movies.title, movies.tagline, categories.name AS category_name,
			COUNT(CASE WHEN ratings.ip = ? THEN 1 END) AS user_ratings,
			AVG(rating_stars.value * 1.0) AS middle_star`, clientIP).
		Joins("LEFT JOIN categories ON categories.id = movies.category_id").
		Joins("LEFT JOIN ratings ON ratings.movie_id = movies.id").
		Joins("LEFT JOIN rating_stars ON rating_stars.id = ratings.star_id").
		Where("movies.draft = ?", false).
		Group("movies.id, movies.title, movies.tagline, categories.name").
		Order("movies.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	movies := make([]*biz.MovieSummary, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, &biz.MovieSummary{
			ID:         row.ID,
			Title:      row.Title,
			Tagline:    row.Tagline,
			Category:   row.CategoryName,
			RatingUser: row.UserRatings > 0,
			MiddleStar: row.MiddleStar,
		})
	}
	return movies, nil
}

func (r *movieRepo) GetMovieDetail(ctx context.Context, id uint) (*biz.MovieDetail, error) {
	key := movieDetailKey(id)
	var cached biz.MovieDetail
	if r.data.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	var m Movie
	err := r.data.db.WithContext(ctx).
		Preload("Category").
		Preload("Directors", orderByID).
		Preload("Actors", orderByID).
		Preload("Genres", orderByID).
		Preload("Reviews", orderByID).
		Where("draft = ?", false).
		First(&m, id).Error
	if err != nil {
		return nil, convertError(err)
	}

	detail := movieToDetail(&m)
	r.data.cacheSet(ctx, key, detail)
	return detail, nil
}

func (r *movieRepo) GetPublishedMovie(ctx context.Context, id uint) (*biz.Movie, error) {
	var m Movie
	if err := r.data.db.WithContext(ctx).Where("draft = ?", false).First(&m, id).Error; err != nil {
		return nil, convertError(err)
	}
	return movieToBiz(&m), nil
}

func (r *movieRepo) CreateMovie(ctx context.Context, movie *biz.Movie) error {
	return r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := movieFromBiz(movie)
		ve := &biz.ValidationError{}

		if movie.CategoryID != nil {
			var n int64
			if err := tx.Model(&Category{}).Where("id = ?", *movie.CategoryID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				ve.Add("category", fmt.Sprintf("category %d does not exist", *movie.CategoryID))
			}
		}
		var err error
		if m.Actors, err = loadActors(tx, movie.ActorIDs, "actors", ve); err != nil {
			return err
		}
		if m.Directors, err = loadActors(tx, movie.DirectorIDs, "directors", ve); err != nil {
			return err
		}
		if len(movie.GenreIDs) > 0 {
			if err := tx.Find(&m.Genres, movie.GenreIDs).Error; err != nil {
				return err
			}
			if len(m.Genres) != len(uniqueIDs(movie.GenreIDs)) {
				ve.Add("genres", "unknown genre id")
			}
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		// Omit upserting the referenced rows; only the join tables are written.
		if err := tx.Omit("Actors.*", "Directors.*", "Genres.*").Create(m).Error; err != nil {
			return convertError(err)
		}
		movie.ID = m.ID
		return nil
	})
}

func loadActors(tx *gorm.DB, ids []uint, field string, ve *biz.ValidationError) ([]Actor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var actors []Actor
	if err := tx.Find(&actors, ids).Error; err != nil {
		return nil, err
	}
	if len(actors) != len(uniqueIDs(ids)) {
		ve.Add(field, "unknown actor id")
	}
	return actors, nil
}

func (r *movieRepo) SetDraft(ctx context.Context, id uint, draft bool) error {
	result := r.data.db.WithContext(ctx).Model(&Movie{}).Where("id = ?", id).Update("draft", draft)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var n int64
		if err := r.data.db.WithContext(ctx).Model(&Movie{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return biz.ErrNotFound
		}
	}
	r.data.cacheDel(ctx, movieDetailKey(id))
	if draft {
		r.data.removeFromRankings(ctx, id)
	} else {
		r.data.refreshRankings(ctx, id)
	}
	return nil
}

// DeleteMovie cascades to shots, ratings and reviews, and clears the join tables.
func (r *movieRepo) DeleteMovie(ctx context.Context, id uint) error {
	err := r.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"movie_actors", "movie_directors", "movie_genres"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE movie_id = ?", id).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("movie_id = ?", id).Delete(&MovieShot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&Review{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Movie{}, id)
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
	r.data.cacheDel(ctx, movieDetailKey(id))
	r.data.removeFromRankings(ctx, id)
	return nil
}

func (r *movieRepo) ListShots(ctx context.Context, movieID uint) ([]*biz.MovieShot, error) {
	var rows []MovieShot
	if err := r.data.db.WithContext(ctx).Where("movie_id = ?", movieID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	shots := make([]*biz.MovieShot, 0, len(rows))
	for i := range rows {
		shots = append(shots, shotToBiz(&rows[i]))
	}
	return shots, nil
}

func (r *movieRepo) CreateShot(ctx context.Context, shot *biz.MovieShot) error {
	var n int64
	if err := r.data.db.WithContext(ctx).Model(&Movie{}).Where("id = ?", shot.MovieID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return biz.ErrNotFound
	}
	row := &MovieShot{
		Title:       shot.Title,
		Description: shot.Description,
		Image:       shot.Image,
		MovieID:     shot.MovieID,
	}
	if err := r.data.db.WithContext(ctx).Create(row).Error; err != nil {
		return convertError(err)
	}
	shot.ID = row.ID
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func uniqueIDs(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func movieFromBiz(m *biz.Movie) *Movie {
	return &Movie{
		Title:         m.Title,
		Tagline:       m.Tagline,
		Description:   m.Description,
		Poster:        m.Poster,
		Year:          m.Year,
		Country:       m.Country,
		WorldPremiere: m.WorldPremiere,
		Budget:        m.Budget,
		FeesInUSA:     m.FeesInUSA,
		FeesInWorld:   m.FeesInWorld,
		URL:           m.URL,
		Draft:         m.Draft,
		CategoryID:    m.CategoryID,
	}
}

func movieToBiz(m *Movie) *biz.Movie {
	return &biz.Movie{
		ID:            m.ID,
		Title:         m.Title,
		Tagline:       m.Tagline,
		Description:   m.Description,
		Poster:        m.Poster,
		Year:          m.Year,
		Country:       m.Country,
		WorldPremiere: m.WorldPremiere,
		Budget:        m.Budget,
		FeesInUSA:     m.FeesInUSA,
		FeesInWorld:   m.FeesInWorld,
		URL:           m.URL,
		Draft:         m.Draft,
		CategoryID:    m.CategoryID,
	}
}

func movieToDetail(m *Movie) *biz.MovieDetail {
	detail := &biz.MovieDetail{
		ID:            m.ID,
		Title:         m.Title,
		Tagline:       m.Tagline,
		Description:   m.Description,
		Poster:        m.Poster,
		Year:          m.Year,
		Country:       m.Country,
		WorldPremiere: m.WorldPremiere,
		Budget:        m.Budget,
		FeesInUSA:     m.FeesInUSA,
		FeesInWorld:   m.FeesInWorld,
		URL:           m.URL,
		Directors:     make([]*biz.ActorSummary, 0, len(m.Directors)),
		Actors:        make([]*biz.ActorSummary, 0, len(m.Actors)),
		Genres:        make([]string, 0, len(m.Genres)),
		Reviews:       make([]*biz.Review, 0, len(m.Reviews)),
	}
	if m.Category != nil {
		name := m.Category.Name
		detail.Category = &name
	}
	for i := range m.Directors {
		detail.Directors = append(detail.Directors, actorToSummary(&m.Directors[i]))
	}
	for i := range m.Actors {
		detail.Actors = append(detail.Actors, actorToSummary(&m.Actors[i]))
	}
	for _, g := range m.Genres {
		detail.Genres = append(detail.Genres, g.Name)
	}
	for i := range m.Reviews {
		detail.Reviews = append(detail.Reviews, reviewToBiz(&m.Reviews[i]))
	}
	return detail
}

func shotToBiz(s *MovieShot) *biz.MovieShot {
	return &biz.MovieShot{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Image:       s.Image,
		MovieID:     s.MovieID,
	}
}
