package pronounce

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"codeberg.org/ashren/forvault/internal/forvo"
	"codeberg.org/ashren/forvault/internal/history"
	"codeberg.org/ashren/forvault/internal/vault"
)

// ErrEmptyWord is returned before any network call when the word to look up
// is empty; the caller should prompt for a selection instead.
var ErrEmptyWord = errors.New("no word selected")

// Storage is the persistent-storage collaborator: it writes binary files at
// vault-relative paths with create-or-overwrite semantics.
type Storage interface {
	WriteFile(relPath string, data []byte) (string, error)
}

// Editor is the document-editing collaborator; InsertAtCursor places text at
// the current cursor position.
type Editor interface {
	InsertAtCursor(text string) error
}

// Notifier carries the user-visible notices: success, "not found" and the
// failure messages.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }

// Config wires the downloader's collaborators and settings.
type Config struct {
	BaseURL  string // lookup service endpoint; forvo.DefaultBaseURL when empty
	APIKey   string
	BasePath string // vault-relative directory for stored audio

	Client   *forvo.Client
	Storage  Storage
	Editor   Editor         // optional; no embed reference is inserted when nil
	Notifier Notifier       // optional
	History  *history.Store // optional
}

// Downloader runs the lookup, fetch, persist and embed pipeline for a single
// word per invocation. Invocations are independent; nothing is shared
// between them except the final file writes.
type Downloader struct {
	cfg Config
}

// New creates a downloader from cfg, filling in the default client and
// endpoint when unset.
func New(cfg Config) *Downloader {
	if cfg.BaseURL == "" {
		cfg.BaseURL = forvo.DefaultBaseURL
	}
	if cfg.Client == nil {
		cfg.Client = forvo.NewClient()
	}
	return &Downloader{cfg: cfg}
}

// Result reports what an invocation produced. Found is false when the lookup
// succeeded but returned no items, which is a normal outcome rather than an
// error.
type Result struct {
	Found bool
	Item  forvo.Pronunciation
	Path  string // vault-relative stored path, empty when not found
}

// Download looks up word, fetches the first result's audio, persists it
// under the configured base path and inserts the embed reference when an
// editor is configured. Every failure is surfaced once, via the notifier,
// and never retried. There is no rollback: a failed embed insert leaves the
// stored audio file in place.
func (d *Downloader) Download(ctx context.Context, word string, opts forvo.SearchOptions) (*Result, error) {
	if strings.TrimSpace(word) == "" {
		return nil, ErrEmptyWord
	}

	lookupURL := forvo.BuildURL(d.cfg.BaseURL, word, d.cfg.APIKey, opts)
	env, err := d.cfg.Client.Lookup(ctx, lookupURL)
	if err != nil {
		d.notify(fmt.Sprintf("Failed to download pronunciation for %q: %v", word, err))
		return nil, err
	}

	if len(env.Items) == 0 {
		d.notify(fmt.Sprintf("No pronunciation found for %q", word))
		return &Result{Found: false}, nil
	}

	// Always the first item; the order segment already asked the server for
	// the ranking the caller wanted.
	item := env.Items[0]

	data, err := d.cfg.Client.FetchAudio(ctx, item.PathMP3)
	if err != nil {
		d.notify(fmt.Sprintf("Failed to download pronunciation for %q: %v", word, err))
		return nil, err
	}

	relPath := vault.AudioPath(d.cfg.BasePath, word, item.ID)
	if _, err := d.cfg.Storage.WriteFile(relPath, data); err != nil {
		d.notify(fmt.Sprintf("Failed to save pronunciation for %q: %v", word, err))
		return nil, err
	}

	d.recordHistory(word, item, relPath, opts)

	result := &Result{Found: true, Item: item, Path: relPath}

	if d.cfg.Editor != nil {
		embed := "\n" + vault.EmbedReference(relPath) + "\n"
		if err := d.cfg.Editor.InsertAtCursor(embed); err != nil {
			d.notify(fmt.Sprintf("Saved %s but failed to insert embed reference: %v", relPath, err))
			return result, err
		}
	}

	d.notify(fmt.Sprintf("Downloaded pronunciation for %q to %s", word, relPath))
	return result, nil
}

func (d *Downloader) notify(message string) {
	if d.cfg.Notifier != nil {
		d.cfg.Notifier.Notify(message)
	}
}

func (d *Downloader) recordHistory(word string, item forvo.Pronunciation, relPath string, opts forvo.SearchOptions) {
	if d.cfg.History == nil {
		return
	}
	err := d.cfg.History.Record(history.Entry{
		Word:            word,
		PronunciationID: item.ID,
		Path:            relPath,
		Language:        opts.Language,
		DownloadedAt:    time.Now(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record download history: %v\n", err)
	}
}
