package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/ini.v1"
)

// ErrCorrupt is returned when the score file exists but cannot be understood
var ErrCorrupt = errors.New("corrupt high score file")

const (
	sectionName = "highscore"
	keyBest     = "best"
	keyUpdated  = "updated"
)

// Store persists the best score across sessions
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps the best score in an ini file:
//
//	[highscore]
//	best    = 4200
//	updated = 2026-01-02T15:04:05Z
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// Load returns 0 without error when the file does not exist yet
func (s *FileStore) Load() (int, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	file, err := ini.Load(s.path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	key, err := file.Section(sectionName).GetKey(keyBest)
	if err != nil {
		return 0, fmt.Errorf("%w: missing %s.%s", ErrCorrupt, sectionName, keyBest)
	}
	best, err := key.Int()
	if err != nil || best < 0 {
		return 0, fmt.Errorf("%w: bad %s value %q", ErrCorrupt, keyBest, key.String())
	}
	return best, nil
}

// Save writes through a temporary file so a crash never leaves a truncated score
func (s *FileStore) Save(score int) error {
	if score < 0 {
		score = 0
	}

	file := ini.Empty()
	sec := file.Section(sectionName)
	sec.Key(keyBest).SetValue(strconv.Itoa(score))
	sec.Key(keyUpdated).SetValue(time.Now().UTC().Format(time.RFC3339))

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := file.SaveTo(tmp); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace high score: %w", err)
	}
	return nil
}
