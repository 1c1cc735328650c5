package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesDirectories(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root)

	full, err := d.WriteFile("pronunciations/hello_12345.mp3", []byte("audio"))
	if err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	expected := filepath.Join(root, "pronunciations", "hello_12345.mp3")
	if full != expected {
		t.Errorf("Expected path %s, got %s", expected, full)
	}

	data, err := os.ReadFile(expected)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(data) != "audio" {
		t.Errorf("Expected content 'audio', got %q", data)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	d := NewDir(t.TempDir())

	if _, err := d.WriteFile("a.mp3", []byte("first")); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	full, err := d.WriteFile("a.mp3", []byte("second"))
	if err != nil {
		t.Fatalf("WriteFile() failed on overwrite: %v", err)
	}

	data, _ := os.ReadFile(full)
	if string(data) != "second" {
		t.Errorf("Expected overwritten content 'second', got %q", data)
	}
}

func TestAudioPath(t *testing.T) {
	tests := []struct {
		base     string
		word     string
		id       int64
		expected string
	}{
		{"pronunciations", "hello", 12345, "pronunciations/hello_12345.mp3"},
		{"audio/forvo", "hello", 12345, "audio/forvo/hello_12345.mp3"},
		{"", "hello", 12345, "hello_12345.mp3"},
	}

	for _, tt := range tests {
		got := AudioPath(tt.base, tt.word, tt.id)
		if got != tt.expected {
			t.Errorf("AudioPath(%q, %q, %d) = %q, want %q", tt.base, tt.word, tt.id, got, tt.expected)
		}
	}
}

// Changing only the base path must change only the prefix, never the
// file name itself.
func TestAudioPathBaseOnlyAffectsPrefix(t *testing.T) {
	a := AudioPath("one", "word", 7)
	b := AudioPath("two/deep", "word", 7)

	if filepath.Base(a) != filepath.Base(b) {
		t.Errorf("File names differ: %s vs %s", a, b)
	}
	if filepath.Base(a) != "word_7.mp3" {
		t.Errorf("Expected file name 'word_7.mp3', got %s", filepath.Base(a))
	}
}

func TestEmbedReference(t *testing.T) {
	got := EmbedReference("pronunciations/hello_12345.mp3")
	if got != "![[pronunciations/hello_12345.mp3]]" {
		t.Errorf("Unexpected embed reference: %q", got)
	}
}
