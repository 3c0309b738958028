package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/hero-catalog/internal/heroes"
)

//go:embed seeds/*.json
var seedFiles embed.FS

const embeddedSeed = "seeds/heroes.json"

func init() {
	registerTask(&SeedTask{})
}

// SeedData is the JSON layout of a hero seed file.
type SeedData struct {
	Heroes []heroes.CreateCommand `json:"heroes"`
}

// SeedTask inserts sample heroes. Heroes whose nickname already exists,
// compared case-insensitively, are skipped so the task can be rerun.
type SeedTask struct {
	file string
}

func (s *SeedTask) Name() string { return "seed" }

func (s *SeedTask) Description() string {
	return "Inserts sample heroes and their images"
}

// SetFile replaces the embedded seed data with an external file.
func (s *SeedTask) SetFile(path string) {
	s.file = path
}

func (s *SeedTask) Run(ctx context.Context, tx *sql.Tx) (int64, error) {
	data, err := s.load()
	if err != nil {
		return 0, err
	}

	q := heroes.TxQueries(tx)
	var inserted int64

	for _, cmd := range data.Heroes {
		nickname := strings.TrimSpace(cmd.Nickname)
		if nickname == "" {
			return inserted, fmt.Errorf("seed entry without nickname")
		}

		exists, err := nicknameExists(ctx, tx, nickname)
		if err != nil {
			return inserted, fmt.Errorf("check %s: %w", nickname, err)
		}
		if exists {
			continue
		}

		hero, err := q.Insert(ctx, heroes.HeroFields{
			Nickname:          nickname,
			RealName:          cmd.RealName,
			OriginDescription: cmd.OriginDescription,
			Superpowers:       cmd.Superpowers,
			CatchPhrase:       cmd.CatchPhrase,
		})
		if err != nil {
			return inserted, fmt.Errorf("insert %s: %w", nickname, err)
		}

		if _, err := q.InsertImages(ctx, hero.ID, heroes.CleanURLs(cmd.Images)); err != nil {
			return inserted, fmt.Errorf("images for %s: %w", nickname, err)
		}
		inserted++
	}

	return inserted, nil
}

func (s *SeedTask) load() (*SeedData, error) {
	var (
		content []byte
		err     error
	)

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile(embeddedSeed)
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	return parseSeed(content)
}

func parseSeed(content []byte) (*SeedData, error) {
	var data SeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

func nicknameExists(ctx context.Context, tx *sql.Tx, nickname string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM heroes WHERE lower(nickname) = lower($1))`

	var exists bool
	err := tx.QueryRowContext(ctx, query, nickname).Scan(&exists)
	return exists, err
}
