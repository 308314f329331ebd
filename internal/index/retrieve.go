// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pdiddy/rustmark/pkg/types"
)

// QueryOptions holds parameters for object index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string, matched against object
	// names and index entry text.
	Query string

	// Kind filters by object kind (role name: crate, mod, struct, enum,
	// evar, type, static).
	Kind string

	// Doc filters by source page path.
	Doc string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Kind == "" && q.Doc == ""
}

// Retrieve queries the object index with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// filter-only queries are sorted by doc, then name.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.ObjectEntry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT o.id, o.name, o.kind, o.display, o.doc, o.anchor, o.signature
			FROM objects_fts
			JOIN objects o ON o.rowid = objects_fts.rowid
			WHERE objects_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT o.id, o.name, o.kind, o.display, o.doc, o.anchor, o.signature
			FROM objects o
			WHERE 1=1`)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND o.kind = ?`)
		args = append(args, opts.Kind)
	}

	if opts.Doc != "" {
		qb.WriteString(` AND o.doc = ?`)
		args = append(args, opts.Doc)
	}

	if useFTS {
		qb.WriteString(` ORDER BY objects_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY o.doc, o.name`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying object index: %w", err)
	}
	defer rows.Close()

	var results []types.ObjectEntry
	for rows.Next() {
		var (
			entry     types.ObjectEntry
			signature sql.NullString
		)
		if err := rows.Scan(
			&entry.ID, &entry.Name, &entry.Kind, &entry.Display,
			&entry.Doc, &entry.Anchor, &signature,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if signature.Valid {
			entry.Signature = signature.String
		}
		results = append(results, entry)
	}

	return results, rows.Err()
}
