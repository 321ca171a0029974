package data

import (
	"time"
)

// Category represents the categories table
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;size:150"`
	Description string `gorm:"type:text"`
	URL         string `gorm:"column:url;not null;size:160;uniqueIndex"`
}

// TableName overrides the table name
func (Category) TableName() string {
	return "categories"
}

// Genre represents the genres table
type Genre struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;size:150"`
	Description string `gorm:"type:text"`
	URL         string `gorm:"column:url;not null;size:160;uniqueIndex"`
}

func (Genre) TableName() string {
	return "genres"
}

// Actor represents the actors table; directors live here too
type Actor struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;size:100"`
	Age         int32  `gorm:"not null;default:0;check:age >= 0"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:255"`
}

func (Actor) TableName() string {
	return "actors"
}

// Movie represents the movies table
type Movie struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"not null;size:100"`
	Tagline       string    `gorm:"not null;size:100;default:''"`
	Description   string    `gorm:"type:text"`
	Poster        string    `gorm:"size:255"`
	Year          int32     `gorm:"not null;default:2019;check:year >= 0"`
	Country       string    `gorm:"size:30"`
	WorldPremiere time.Time `gorm:"not null;type:date"`
	Budget        int64     `gorm:"not null;default:0;check:budget >= 0"`
	FeesInUSA     int64     `gorm:"column:fees_in_usa;not null;default:0;check:fees_in_usa >= 0"`
	FeesInWorld   int64     `gorm:"column:fees_in_world;not null;default:0;check:fees_in_world >= 0"`
	URL           string    `gorm:"column:url;not null;size:160;uniqueIndex"`
	Draft         bool      `gorm:"not null;default:false;index"`

	CategoryID *uint     `gorm:"index"`
	Category   *Category `gorm:"constraint:OnDelete:SET NULL"`
	Directors  []Actor   `gorm:"many2many:movie_directors"`
	Actors     []Actor   `gorm:"many2many:movie_actors"`
	Genres     []Genre   `gorm:"many2many:movie_genres"`

	Shots   []MovieShot `gorm:"constraint:OnDelete:CASCADE"`
	Ratings []Rating    `gorm:"constraint:OnDelete:CASCADE"`
	Reviews []Review    `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieShot represents the movie_shots table
type MovieShot struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null;size:100"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:255"`
	MovieID     uint   `gorm:"not null;index"`
}

func (MovieShot) TableName() string {
	return "movie_shots"
}

// RatingStar represents the rating_stars table
type RatingStar struct {
	ID      uint     `gorm:"primaryKey"`
	Value   int32    `gorm:"not null;default:0;uniqueIndex"`
	Ratings []Rating `gorm:"foreignKey:StarID;constraint:OnDelete:CASCADE"`
}

func (RatingStar) TableName() string {
	return "rating_stars"
}

// Rating represents the ratings table
type Rating struct {
	ID        uint      `gorm:"primaryKey"`
	IP        string    `gorm:"column:ip;not null;size:45;uniqueIndex:uq_rating_ip_movie"`
	StarID    uint      `gorm:"not null"`
	MovieID   uint      `gorm:"not null;uniqueIndex:uq_rating_ip_movie;index:idx_ratings_movie_id"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}

// Review represents the reviews table
type Review struct {
	ID       uint     `gorm:"primaryKey"`
	Email    string   `gorm:"not null;size:254"`
	Name     string   `gorm:"not null;size:100"`
	Text     string   `gorm:"not null;size:5000"`
	MovieID  uint     `gorm:"not null;index"`
	ParentID *uint    `gorm:"index"`
	Children []Review `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Review) TableName() string {
	return "reviews"
}

// models lists every table in migration order
var models = []interface{}{
	&Category{},
	&Genre{},
	&Actor{},
	&Movie{},
	&MovieShot{},
	&RatingStar{},
	&Rating{},
	&Review{},
}

// rankingRow is the result of a per-movie rating aggregate
type rankingRow struct {
	MovieID uint
	Title   string
	Average float64
	Count   int64
}
