package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Topethedop/stock-dashboard/internal/domain/watchlist"
)

// WatchlistFile persists the watchlist as newline-delimited text, one ticker per line.
// The whole file is rewritten on every change.
type WatchlistFile struct {
	mu      sync.Mutex
	path    string
	symbols []string
}

var _ watchlist.Repository = (*WatchlistFile)(nil)

// OpenWatchlistFile loads path into memory. A missing file is an empty watchlist.
func OpenWatchlistFile(ctx context.Context, path string) (*WatchlistFile, error) {
	s := &WatchlistFile{path: path}
	symbols, err := s.load()
	if err != nil {
		return nil, err
	}
	s.symbols = symbols

	log.Debug().
		Str("path", path).
		Int("count", len(symbols)).
		Msg("Watchlist loaded")

	return s, nil
}

// Path returns the backing file path
func (s *WatchlistFile) Path() string {
	return s.path
}

// Load re-reads the backing file, replacing the in-memory list
func (s *WatchlistFile) Load(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbols, err := s.load()
	if err != nil {
		return nil, err
	}
	s.symbols = symbols
	return s.snapshot(), nil
}

// List returns a copy of the current watchlist
func (s *WatchlistFile) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(), nil
}

// Add appends symbol if absent and rewrites the file
func (s *WatchlistFile) Add(ctx context.Context, symbol string) ([]string, bool, error) {
	symbol = watchlist.Normalize(symbol)
	if symbol == "" {
		return nil, false, watchlist.ErrEmptySymbol
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.symbols {
		if existing == symbol {
			return s.snapshot(), false, nil
		}
	}

	next := append(s.snapshot(), symbol)
	if err := s.save(next); err != nil {
		return nil, false, err
	}
	s.symbols = next

	log.Info().
		Str("symbol", symbol).
		Int("count", len(next)).
		Msg("Ticker added to watchlist")

	return s.snapshot(), true, nil
}

func (s *WatchlistFile) snapshot() []string {
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out
}

func (s *WatchlistFile) load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", watchlist.ErrStorageRead, s.path, err)
	}
	return watchlist.Dedupe(strings.Split(string(data), "\n")), nil
}

// save writes to a temp file in the same directory and renames it over the target
func (s *WatchlistFile) save(symbols []string) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".watchlist-*")
	if err != nil {
		return fmt.Errorf("%w: %v", watchlist.ErrStorageWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strings.Join(symbols, "\n")); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", watchlist.ErrStorageWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", watchlist.ErrStorageWrite, err)
	}
	// CreateTemp opens with 0600; keep the existing file's mode across the rename
	mode := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", watchlist.ErrStorageWrite, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", watchlist.ErrStorageWrite, err)
	}
	return nil
}
