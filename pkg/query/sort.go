package query

// SortField names a view field and its direction.
type SortField struct {
	Field      string
	Descending bool
}
