// Package main provides the maintenance command for catalog data upkeep:
// seeding sample heroes and purging unusable image records. Tasks run
// individually or together within a single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/JaimeStill/hero-catalog/pkg/repository"
)

// Task is a named unit of maintenance work.
type Task interface {
	Name() string
	Description() string

	// Run executes the task within tx and reports the number of rows it changed.
	Run(ctx context.Context, tx *sql.Tx) (int64, error)
}

// Result records the outcome of one task.
type Result struct {
	Task string
	Rows int64
}

var tasks = map[string]Task{}

func registerTask(t Task) {
	tasks[t.Name()] = t
}

func getTask(name string) (Task, bool) {
	t, ok := tasks[name]
	return t, ok
}

// listTasks returns the registered tasks ordered by name.
func listTasks() []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, t)
	}
	slices.SortFunc(result, func(a, b Task) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

// runTasks executes the named tasks in order within one transaction.
// Any failure rolls back every task.
func runTasks(ctx context.Context, db *sql.DB, names ...string) ([]Result, error) {
	selected := make([]Task, 0, len(names))
	for _, name := range names {
		t, ok := getTask(name)
		if !ok {
			return nil, fmt.Errorf("task not found: %s", name)
		}
		selected = append(selected, t)
	}

	return repository.WithTx(ctx, db, func(tx *sql.Tx) ([]Result, error) {
		results := make([]Result, 0, len(selected))
		for _, t := range selected {
			rows, err := t.Run(ctx, tx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", t.Name(), err)
			}
			results = append(results, Result{Task: t.Name(), Rows: rows})
		}
		return results, nil
	})
}

func taskNames(ts []Task) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name()
	}
	return names
}
