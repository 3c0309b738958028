package heroes

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/JaimeStill/hero-catalog/pkg/pagination"
	"github.com/google/uuid"
)

var snapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

type service struct {
	gw         Gateway
	logger     *slog.Logger
	pagination pagination.Config
}

// New returns the hero System over gw.
func New(gw Gateway, logger *slog.Logger, pagination pagination.Config) System {
	return &service{
		gw:         gw,
		logger:     logger.With("system", "heroes"),
		pagination: pagination,
	}
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (*Hero, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	fields := cmd.fields()
	urls := CleanURLs(cmd.Images)

	var hero Hero
	err := s.gw.WithinTx(ctx, nil, func(q Queries) error {
		created, err := q.Insert(ctx, fields)
		if err != nil {
			return err
		}

		created.Images, err = q.InsertImages(ctx, created.ID, urls)
		if err != nil {
			return err
		}

		hero = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("hero created", "id", hero.ID, "nickname", hero.Nickname, "images", len(hero.Images))
	return &hero, nil
}

func (s *service) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Hero], error) {
	page.Normalize(s.pagination)

	var (
		total  int
		heroes []Hero
	)

	err := s.gw.WithinTx(ctx, snapshot, func(q Queries) error {
		var err error
		if total, err = q.Count(ctx, page.Search); err != nil {
			return err
		}
		if heroes, err = q.FindPage(ctx, page); err != nil {
			return err
		}
		return attachImages(ctx, q, heroes)
	})
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(heroes, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *service) Find(ctx context.Context, id uuid.UUID) (*Hero, error) {
	var hero Hero
	err := s.gw.WithinTx(ctx, snapshot, func(q Queries) error {
		var err error
		hero, err = load(ctx, q, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Hero, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	patch := cmd.patch()
	urls, replaceImages := cmd.Images.Get()

	var hero Hero
	err := s.gw.WithinTx(ctx, nil, func(q Queries) error {
		exists, err := q.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if replaceImages {
			if err := q.DeleteImages(ctx, id); err != nil {
				return err
			}
		}

		if err := q.UpdateFields(ctx, id, patch); err != nil {
			return err
		}

		if replaceImages {
			if _, err := q.InsertImages(ctx, id, CleanURLs(urls)); err != nil {
				return err
			}
		}

		hero, err = load(ctx, q, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("hero updated", "id", hero.ID, "images_replaced", replaceImages)
	return &hero, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.gw.WithinTx(ctx, nil, func(q Queries) error {
		return q.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("hero deleted", "id", id)
	return nil
}

func load(ctx context.Context, q Queries, id uuid.UUID) (Hero, error) {
	hero, err := q.FindByID(ctx, id)
	if err != nil {
		return Hero{}, err
	}

	images, err := q.ImagesFor(ctx, id)
	if err != nil {
		return Hero{}, err
	}

	hero.Images = imagesOrEmpty(images[id])
	return hero, nil
}

func attachImages(ctx context.Context, q Queries, heroes []Hero) error {
	if len(heroes) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(heroes))
	for i, h := range heroes {
		ids[i] = h.ID
	}

	images, err := q.ImagesFor(ctx, ids...)
	if err != nil {
		return err
	}

	for i := range heroes {
		heroes[i].Images = imagesOrEmpty(images[heroes[i].ID])
	}
	return nil
}

func imagesOrEmpty(images []Image) []Image {
	if images == nil {
		return []Image{}
	}
	return images
}
