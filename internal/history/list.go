// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/convert-hub/pkg/types"
)

// QueryOptions filters List and Export.
type QueryOptions struct {
	Status     types.ConversionStatus
	SourceLang types.Language
	TargetLang types.Language

	// MaxResults limits result count. Zero uses the store default; a
	// negative value means no limit.
	MaxResults int
}

// List returns recorded runs matching opts, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.HistoryEntry, error) {
	limit := opts.MaxResults
	if limit == 0 {
		limit = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT id, created_at, source_path, output_path, source_lang, target_lang,
			preserve_comments, convert_oop, optimize, include_metadata,
			status, message, input_bytes, output_bytes
		FROM runs WHERE 1=1`)

	if opts.Status != "" {
		qb.WriteString(` AND status = ?`)
		args = append(args, string(opts.Status))
	}
	if opts.SourceLang != "" {
		qb.WriteString(` AND source_lang = ?`)
		args = append(args, string(opts.SourceLang))
	}
	if opts.TargetLang != "" {
		qb.WriteString(` AND target_lang = ?`)
		args = append(args, string(opts.TargetLang))
	}
	qb.WriteString(` ORDER BY created_at DESC, rowid DESC`)
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var (
			e                 types.HistoryEntry
			createdAt         string
			srcLang, dstLang  string
			status            string
			srcPath, outPath  *string
			message           *string
			inBytes, outBytes *int
		)
		if err := rows.Scan(&e.ID, &createdAt, &srcPath, &outPath, &srcLang, &dstLang,
			&e.Settings.PreserveComments, &e.Settings.ConvertOOP, &e.Settings.Optimize, &e.Settings.IncludeMetadata,
			&status, &message, &inBytes, &outBytes); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		e.SourceLang = types.Language(srcLang)
		e.TargetLang = types.Language(dstLang)
		e.Status = types.ConversionStatus(status)
		if srcPath != nil {
			e.SourcePath = *srcPath
		}
		if outPath != nil {
			e.OutputPath = *outPath
		}
		if message != nil {
			e.Message = *message
		}
		if inBytes != nil {
			e.InputBytes = *inBytes
		}
		if outBytes != nil {
			e.OutputBytes = *outBytes
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
