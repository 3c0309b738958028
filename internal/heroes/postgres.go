package heroes

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/JaimeStill/hero-catalog/pkg/pagination"
	"github.com/JaimeStill/hero-catalog/pkg/query"
	"github.com/JaimeStill/hero-catalog/pkg/repository"
	"github.com/google/uuid"
)

type conn interface {
	repository.Querier
	repository.Executor
}

type pgQueries struct {
	conn conn
}

type pgGateway struct {
	*pgQueries
	db *sql.DB
}

// NewGateway returns the PostgreSQL hero store backed by db.
func NewGateway(db *sql.DB) Gateway {
	return &pgGateway{
		pgQueries: &pgQueries{conn: db},
		db:        db,
	}
}

// TxQueries binds the hero queries to an open transaction.
func TxQueries(tx *sql.Tx) Queries {
	return &pgQueries{conn: tx}
}

func (g *pgGateway) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(q Queries) error) error {
	_, err := repository.WithTxOptions(ctx, g.db, opts, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, fn(&pgQueries{conn: tx})
	})
	return err
}

func (q *pgQueries) Count(ctx context.Context, search *string) (int, error) {
	countSQL, args := query.
		NewBuilder(heroProjection).
		WhereSearch(search, "Nickname").
		BuildCount()

	var total int
	if err := q.conn.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count heroes: %w", err)
	}
	return total, nil
}

func (q *pgQueries) FindPage(ctx context.Context, page pagination.PageRequest) ([]Hero, error) {
	pageSQL, args := query.
		NewBuilder(heroProjection, defaultSort...).
		WhereSearch(page.Search, "Nickname").
		BuildPage(page.PageSize, page.Offset())

	heroes, err := repository.QueryMany(ctx, q.conn, pageSQL, args, scanHero)
	if err != nil {
		return nil, fmt.Errorf("query heroes: %w", err)
	}
	return heroes, nil
}

func (q *pgQueries) FindByID(ctx context.Context, id uuid.UUID) (Hero, error) {
	findSQL, args := query.NewBuilder(heroProjection).BuildSingle("ID", id)

	hero, err := repository.QueryOne(ctx, q.conn, findSQL, args, scanHero)
	if err != nil {
		return Hero{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return hero, nil
}

func (q *pgQueries) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := q.conn.
		QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM heroes WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check hero: %w", err)
	}
	return exists, nil
}

func (q *pgQueries) Insert(ctx context.Context, f HeroFields) (Hero, error) {
	insertSQL := `
		INSERT INTO heroes (nickname, real_name, origin_description, superpowers, catch_phrase)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nickname, real_name, origin_description, superpowers, catch_phrase, created_at, updated_at`

	hero, err := repository.QueryOne(ctx, q.conn, insertSQL, []any{
		f.Nickname, f.RealName, f.OriginDescription, f.Superpowers, f.CatchPhrase,
	}, scanHero)
	if err != nil {
		return Hero{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return hero, nil
}

func (q *pgQueries) UpdateFields(ctx context.Context, id uuid.UUID, p FieldPatch) error {
	sets := make([]string, 0, 6)
	args := []any{id}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Nickname.Set {
		set("nickname", p.Nickname.Value)
	}
	if p.RealName.Set {
		set("real_name", p.RealName.Value)
	}
	if p.OriginDescription.Set {
		set("origin_description", p.OriginDescription.Value)
	}
	if p.Superpowers.Set {
		set("superpowers", p.Superpowers.Value)
	}
	if p.CatchPhrase.Set {
		set("catch_phrase", p.CatchPhrase.Value)
	}
	sets = append(sets, "updated_at = now()")

	updateSQL := fmt.Sprintf("UPDATE heroes SET %s WHERE id = $1", strings.Join(sets, ", "))
	if err := repository.ExecExpectOne(ctx, q.conn, updateSQL, args...); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func (q *pgQueries) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, q.conn, `DELETE FROM heroes WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func (q *pgQueries) DeleteImages(ctx context.Context, heroID uuid.UUID) error {
	if _, err := q.conn.ExecContext(ctx, `DELETE FROM images WHERE hero_id = $1`, heroID); err != nil {
		return fmt.Errorf("delete images: %w", err)
	}
	return nil
}

func (q *pgQueries) InsertImages(ctx context.Context, heroID uuid.UUID, urls []string) ([]Image, error) {
	if len(urls) == 0 {
		return []Image{}, nil
	}

	values := make([]string, len(urls))
	args := make([]any, 0, len(urls)*2+1)
	args = append(args, heroID)
	for i, u := range urls {
		args = append(args, u, i)
		values[i] = fmt.Sprintf("($1, $%d, $%d)", len(args)-1, len(args))
	}

	insertSQL := fmt.Sprintf(`
		INSERT INTO images (hero_id, url, position)
		VALUES %s
		RETURNING id, hero_id, url, position`, strings.Join(values, ", "))

	images, err := repository.QueryMany(ctx, q.conn, insertSQL, args, scanImage)
	if err != nil {
		return nil, fmt.Errorf("insert images: %w", err)
	}

	sortImages(images)
	return images, nil
}

func (q *pgQueries) ImagesFor(ctx context.Context, heroIDs ...uuid.UUID) (map[uuid.UUID][]Image, error) {
	result := make(map[uuid.UUID][]Image, len(heroIDs))
	if len(heroIDs) == 0 {
		return result, nil
	}

	ids := make([]any, len(heroIDs))
	for i, id := range heroIDs {
		ids[i] = id
	}

	imagesSQL, args := query.
		NewBuilder(imageProjection, imageSort...).
		WhereIn("HeroID", ids).
		Build()

	images, err := repository.QueryMany(ctx, q.conn, imagesSQL, args, scanImage)
	if err != nil {
		return nil, fmt.Errorf("query images: %w", err)
	}

	for _, img := range images {
		result[img.HeroID] = append(result[img.HeroID], img)
	}
	return result, nil
}
