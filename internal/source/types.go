package source

import "context"

// Tabular supplies the raw feed as a two-dimensional table of strings. The first
// row is the header; every cell is untrusted human-entered text.
type Tabular interface {
	Fetch(ctx context.Context) ([][]string, error)
}

// Appender is implemented by sources that accept write-back of new rows.
type Appender interface {
	Append(ctx context.Context, row []string) error
}

// Static serves a fixed table. It backs the offline fallback and tests.
type Static struct {
	Table [][]string
}

func (s Static) Fetch(ctx context.Context) ([][]string, error) {
	if len(s.Table) == 0 {
		return FallbackTable(), nil
	}
	return s.Table, nil
}
