package main

import (
	"context"
	"database/sql"
)

func init() {
	registerTask(&PurgeImagesTask{})
}

// PurgeImagesTask deletes image records whose URL is blank or points at a
// placeholder host.
type PurgeImagesTask struct{}

func (PurgeImagesTask) Name() string { return "purge-images" }

func (PurgeImagesTask) Description() string {
	return "Deletes blank and placeholder image URLs"
}

func (PurgeImagesTask) Run(ctx context.Context, tx *sql.Tx) (int64, error) {
	const query = `
		DELETE FROM images
		WHERE btrim(url) = ''
		   OR url ILIKE '%placeholder.com%'`

	res, err := tx.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
