package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/JaimeStill/hero-catalog/pkg/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func TestMapError(t *testing.T) {
	other := errors.New("some other error")
	otherPg := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, errNotFound},
		{"wrapped no rows", fmt.Errorf("find hero: %w", sql.ErrNoRows), errNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other pg error", otherPg, otherPg},
		{"other error", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errNotFound, errDuplicate)
			if got != tt.want {
				t.Errorf("MapError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

type fakeScanner struct {
	values []any
	err    error
}

func (s fakeScanner) Scan(dest ...any) error {
	if s.err != nil {
		return s.err
	}
	for i, d := range dest {
		*(d.(*string)) = s.values[i].(string)
	}
	return nil
}

func TestScanFunc(t *testing.T) {
	scan := repository.ScanFunc[string](func(s repository.Scanner) (string, error) {
		var v string
		err := s.Scan(&v)
		return v, err
	})

	got, err := scan(fakeScanner{values: []any{"Batman"}})
	if err != nil {
		t.Fatalf("scan() error = %v", err)
	}
	if got != "Batman" {
		t.Errorf("scan() = %q, want %q", got, "Batman")
	}

	if _, err := scan(fakeScanner{err: sql.ErrNoRows}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("scan() error = %v, want sql.ErrNoRows", err)
	}
}
