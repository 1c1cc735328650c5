package vault

import (
	"fmt"
	"os"
	"strings"
)

// CursorMarker marks the insertion point inside a note file. The host editor
// tracks a live cursor; for a note on disk the marker stands in for it.
const CursorMarker = "%%cursor%%"

// Note is the document-editing collaborator backed by a markdown file.
type Note struct {
	path string
}

// OpenNote opens an existing note file for editing.
func OpenNote(path string) (*Note, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open note: %w", err)
	}
	return &Note{path: path}, nil
}

// Path returns the note's file path.
func (n *Note) Path() string { return n.path }

// InsertAtCursor inserts text at the cursor marker, keeping the marker so
// later inserts land at the same spot. Without a marker the text is appended
// to the end of the note.
func (n *Note) InsertAtCursor(text string) error {
	content, err := os.ReadFile(n.path)
	if err != nil {
		return fmt.Errorf("failed to read note: %w", err)
	}

	body := string(content)
	if i := strings.Index(body, CursorMarker); i >= 0 {
		body = body[:i] + text + body[i:]
	} else {
		if body != "" && !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		body += text
	}

	if err := os.WriteFile(n.path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}

	return nil
}
