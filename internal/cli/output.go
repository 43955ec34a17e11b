package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// writeRanked renders the ranked feed, one freet per line in text format.
func writeRanked(w io.Writer, format string, freets []domain.RankedFreet) error {
	if freets == nil {
		freets = []domain.RankedFreet{}
	}
	if format == "json" {
		return writeJSON(w, freets)
	}

	if len(freets) == 0 {
		_, err := fmt.Fprintln(w, "no freets")
		return err
	}

	for i, f := range freets {
		author := "(unregistered)"
		if f.Author != "" {
			author = "@" + f.Author
		}
		content := strings.Join(strings.Fields(f.Content), " ")
		if _, err := fmt.Fprintf(w, "%2d. [%+d] %s by %s: %s\n", i+1, f.Score, f.ID, author, content); err != nil {
			return err
		}
	}
	return nil
}

func writeCascadeResult(w io.Writer, format, subject string, result domain.CascadeResult) error {
	if format == "json" {
		return writeJSON(w, result)
	}

	_, err := fmt.Fprintf(w, "%s: removed %d reactions, %d bookmarks, %d statuses, %d freets\n",
		subject, result.Reactions, result.Bookmarks, result.Statuses, result.Freets)
	return err
}
