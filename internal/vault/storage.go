package vault

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Dir is the persistent-storage collaborator: a directory tree holding the
// vault's files. Paths passed to it are vault-relative and slash-separated,
// matching the strings used in embed references.
type Dir struct {
	root string
}

// NewDir creates storage rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the vault root directory.
func (d *Dir) Root() string { return d.root }

// WriteFile persists data at the vault-relative path, creating parent
// directories as needed. An existing file at the same path is overwritten.
// It returns the absolute path written.
func (d *Dir) WriteFile(relPath string, data []byte) (string, error) {
	full := filepath.Join(d.root, filepath.FromSlash(relPath))

	if dir := filepath.Dir(full); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return full, nil
}

// AudioPath derives the vault-relative storage path for a pronunciation:
// <base>/<word>_<id>.mp3. The same string doubles as the embed target, so
// the stored file and the reference can never drift apart.
func AudioPath(base, word string, id int64) string {
	return path.Join(base, fmt.Sprintf("%s_%d.mp3", word, id))
}

// EmbedReference renders the in-document marker for a stored file.
func EmbedReference(relPath string) string {
	return "![[" + relPath + "]]"
}
