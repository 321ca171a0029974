package data

import (
	"context"

	"github.com/yixianOu/movie-review/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type actorRepo struct {
	data *Data
	log  *log.Helper
}

// NewActorRepo creates a new actor repository
func NewActorRepo(data *Data, logger log.Logger) biz.ActorRepo {
	return &actorRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *actorRepo) ListActors(ctx context.Context) ([]*biz.ActorSummary, error) {
	var rows []Actor
	if err := r.data.db.WithContext(ctx).Select("id", "name", "image").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	actors := make([]*biz.ActorSummary, 0, len(rows))
	for i := range rows {
		actors = append(actors, actorToSummary(&rows[i]))
	}
	return actors, nil
}

func (r *actorRepo) GetActor(ctx context.Context, id uint) (*biz.Actor, error) {
	var row Actor
	if err := r.data.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, convertError(err)
	}
	return &biz.Actor{
		ID:          row.ID,
		Name:        row.Name,
		Age:         row.Age,
		Description: row.Description,
		Image:       row.Image,
	}, nil
}

func (r *actorRepo) CreateActor(ctx context.Context, actor *biz.Actor) error {
	row := &Actor{
		Name:        actor.Name,
		Age:         actor.Age,
		Description: actor.Description,
		Image:       actor.Image,
	}
	if err := r.data.db.WithContext(ctx).Create(row).Error; err != nil {
		return convertError(err)
	}
	actor.ID = row.ID
	return nil
}

func actorToSummary(a *Actor) *biz.ActorSummary {
	return &biz.ActorSummary{ID: a.ID, Name: a.Name, Image: a.Image}
}
