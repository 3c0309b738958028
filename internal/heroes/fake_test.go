package heroes_test

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/JaimeStill/hero-catalog/internal/heroes"
	"github.com/JaimeStill/hero-catalog/pkg/pagination"
	"github.com/google/uuid"
)

var errStore = errors.New("store unavailable")

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type heroRow struct {
	hero heroes.Hero
	seq  int
}

// memGateway keeps heroes in memory. WithinTx restores a snapshot when fn
// fails, so callers observe all-or-nothing writes.
type memGateway struct {
	mu     sync.Mutex
	heroes map[uuid.UUID]heroRow
	images map[uuid.UUID][]heroes.Image
	seq    int
	ticks  int

	// failOn names a Queries method that returns errStore.
	failOn string
}

func newMemGateway() *memGateway {
	return &memGateway{
		heroes: make(map[uuid.UUID]heroRow),
		images: make(map[uuid.UUID][]heroes.Image),
	}
}

func (g *memGateway) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(q heroes.Queries) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	heroSnap := maps.Clone(g.heroes)
	imageSnap := make(map[uuid.UUID][]heroes.Image, len(g.images))
	for id, imgs := range g.images {
		imageSnap[id] = slices.Clone(imgs)
	}
	seq, ticks := g.seq, g.ticks

	if err := fn(g); err != nil {
		g.heroes, g.images, g.seq, g.ticks = heroSnap, imageSnap, seq, ticks
		return err
	}
	return nil
}

func (g *memGateway) fail(method string) error {
	if g.failOn == method {
		return errStore
	}
	return nil
}

func (g *memGateway) matching(search *string) []heroRow {
	rows := make([]heroRow, 0, len(g.heroes))
	for _, row := range g.heroes {
		if search != nil && !strings.Contains(strings.ToLower(row.hero.Nickname), strings.ToLower(*search)) {
			continue
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b heroRow) int {
		if c := b.hero.CreatedAt.Compare(a.hero.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})
	return rows
}

func (g *memGateway) Count(ctx context.Context, search *string) (int, error) {
	if err := g.fail("Count"); err != nil {
		return 0, err
	}
	return len(g.matching(search)), nil
}

func (g *memGateway) FindPage(ctx context.Context, page pagination.PageRequest) ([]heroes.Hero, error) {
	if err := g.fail("FindPage"); err != nil {
		return nil, err
	}
	rows := g.matching(page.Search)
	start := min(page.Offset(), len(rows))
	end := min(start+page.PageSize, len(rows))

	result := make([]heroes.Hero, 0, end-start)
	for _, row := range rows[start:end] {
		result = append(result, row.hero)
	}
	return result, nil
}

func (g *memGateway) FindByID(ctx context.Context, id uuid.UUID) (heroes.Hero, error) {
	if err := g.fail("FindByID"); err != nil {
		return heroes.Hero{}, err
	}
	row, ok := g.heroes[id]
	if !ok {
		return heroes.Hero{}, heroes.ErrNotFound
	}
	return row.hero, nil
}

func (g *memGateway) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := g.fail("Exists"); err != nil {
		return false, err
	}
	_, ok := g.heroes[id]
	return ok, nil
}

func (g *memGateway) Insert(ctx context.Context, f heroes.HeroFields) (heroes.Hero, error) {
	if err := g.fail("Insert"); err != nil {
		return heroes.Hero{}, err
	}
	g.seq++
	hero := heroes.Hero{
		ID:                uuid.New(),
		Nickname:          f.Nickname,
		RealName:          f.RealName,
		OriginDescription: f.OriginDescription,
		Superpowers:       f.Superpowers,
		CatchPhrase:       f.CatchPhrase,
		CreatedAt:         epoch,
		UpdatedAt:         epoch,
	}
	g.heroes[hero.ID] = heroRow{hero: hero, seq: g.seq}
	return hero, nil
}

func (g *memGateway) UpdateFields(ctx context.Context, id uuid.UUID, p heroes.FieldPatch) error {
	if err := g.fail("UpdateFields"); err != nil {
		return err
	}
	row, ok := g.heroes[id]
	if !ok {
		return heroes.ErrNotFound
	}
	if p.Nickname.Set {
		row.hero.Nickname = p.Nickname.Value
	}
	if p.RealName.Set {
		row.hero.RealName = p.RealName.Value
	}
	if p.OriginDescription.Set {
		row.hero.OriginDescription = p.OriginDescription.Value
	}
	if p.Superpowers.Set {
		row.hero.Superpowers = p.Superpowers.Value
	}
	if p.CatchPhrase.Set {
		row.hero.CatchPhrase = p.CatchPhrase.Value
	}
	g.ticks++
	row.hero.UpdatedAt = epoch.Add(time.Duration(g.ticks) * time.Second)
	g.heroes[id] = row
	return nil
}

func (g *memGateway) Delete(ctx context.Context, id uuid.UUID) error {
	if err := g.fail("Delete"); err != nil {
		return err
	}
	if _, ok := g.heroes[id]; !ok {
		return heroes.ErrNotFound
	}
	delete(g.heroes, id)
	delete(g.images, id)
	return nil
}

func (g *memGateway) DeleteImages(ctx context.Context, heroID uuid.UUID) error {
	if err := g.fail("DeleteImages"); err != nil {
		return err
	}
	delete(g.images, heroID)
	return nil
}

func (g *memGateway) InsertImages(ctx context.Context, heroID uuid.UUID, urls []string) ([]heroes.Image, error) {
	if err := g.fail("InsertImages"); err != nil {
		return nil, err
	}
	images := make([]heroes.Image, len(urls))
	for i, u := range urls {
		images[i] = heroes.Image{ID: uuid.New(), HeroID: heroID, URL: u, Position: i}
	}
	g.images[heroID] = append(g.images[heroID], images...)
	return images, nil
}

func (g *memGateway) ImagesFor(ctx context.Context, heroIDs ...uuid.UUID) (map[uuid.UUID][]heroes.Image, error) {
	if err := g.fail("ImagesFor"); err != nil {
		return nil, err
	}
	result := make(map[uuid.UUID][]heroes.Image, len(heroIDs))
	for _, id := range heroIDs {
		if imgs, ok := g.images[id]; ok {
			result[id] = slices.Clone(imgs)
		}
	}
	return result, nil
}

// storedImages returns the image URLs currently stored for id.
func (g *memGateway) storedImages(id uuid.UUID) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	urls := make([]string, 0, len(g.images[id]))
	for _, img := range g.images[id] {
		urls = append(urls, img.URL)
	}
	return urls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPagination() pagination.Config {
	return pagination.Config{DefaultPageSize: 5, MaxPageSize: 100}
}

func newTestSystem() (heroes.System, *memGateway) {
	gw := newMemGateway()
	return heroes.New(gw, discardLogger(), testPagination()), gw
}

func ptr(s string) *string {
	return &s
}

func urlsOf(h *heroes.Hero) []string {
	urls := make([]string, len(h.Images))
	for i, img := range h.Images {
		urls[i] = img.URL
	}
	return urls
}
