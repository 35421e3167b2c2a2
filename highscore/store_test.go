package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none.ini"))
	best, err := s.Load()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0, got %d", best)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.ini")
	s := NewFileStore(path)

	if err := s.Save(4200); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("Expected temporary file to be gone")
	}

	best, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if best != 4200 {
		t.Errorf("Expected 4200, got %d", best)
	}

	if err := s.Save(-5); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if best, _ := s.Load(); best != 0 {
		t.Errorf("Expected negative score saved as 0, got %d", best)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing key", "[highscore]\nupdated = now\n"},
		{"not a number", "[highscore]\nbest = lots\n"},
		{"negative", "[highscore]\nbest = -10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.ini")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := NewFileStore(path).Load()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Expected ErrCorrupt, got %v", err)
			}
		})
	}
}
