// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Export writes the runs matching opts to w as "yaml" or "json". Unlike
// List, a zero MaxResults exports everything.
func (s *Store) Export(ctx context.Context, opts QueryOptions, format string, w io.Writer) error {
	if opts.MaxResults == 0 {
		opts.MaxResults = -1
	}
	entries, err := s.List(ctx, opts)
	if err != nil {
		return err
	}

	switch format {
	case "", "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported export format %q: use yaml or json", format)
}
