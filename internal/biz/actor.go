package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// ActorUseCase serves actor and director lookups
type ActorUseCase struct {
	repo ActorRepo
	log  *log.Helper
}

func NewActorUseCase(repo ActorRepo, logger log.Logger) *ActorUseCase {
	return &ActorUseCase{repo: repo, log: log.NewHelper(logger)}
}

func (uc *ActorUseCase) ListActors(ctx context.Context) ([]*ActorSummary, error) {
	actors, err := uc.repo.ListActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	return actors, nil
}

func (uc *ActorUseCase) GetActor(ctx context.Context, id uint) (*Actor, error) {
	actor, err := uc.repo.GetActor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get actor %d: %w", id, err)
	}
	return actor, nil
}
