// Package storage archives raw match payloads to rotating JSONL files.
//
// Files move through three tiers: hot (open for writes), warm (closed) and
// cold (gzip compressed).
package storage

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// Rotation triggers
	DefaultMaxMatchesPerFile = 1000
	DefaultMaxFileAge        = 1 * time.Hour
)

// FileRotator handles writing matches to rotating JSONL files
type FileRotator struct {
	mu sync.Mutex

	// Directories
	hotDir  string // Active writes
	warmDir string // Closed files awaiting compression
	coldDir string // Compressed archives

	maxMatches int
	maxAge     time.Duration
	now        func() time.Time
	logger     *slog.Logger

	// Current file state
	currentFile   *os.File
	currentWriter *bufio.Writer
	currentPath   string
	matchCount    int
	fileOpenedAt  time.Time
	sequence      int
}

// RotatorOption configures a FileRotator
type RotatorOption func(*FileRotator)

// WithMaxMatches sets how many matches a file holds before rotation
func WithMaxMatches(n int) RotatorOption {
	return func(r *FileRotator) {
		if n > 0 {
			r.maxMatches = n
		}
	}
}

// WithMaxAge sets how long a file stays open before rotation
func WithMaxAge(d time.Duration) RotatorOption {
	return func(r *FileRotator) {
		if d > 0 {
			r.maxAge = d
		}
	}
}

// WithLogger sets the rotator's logger
func WithLogger(logger *slog.Logger) RotatorOption {
	return func(r *FileRotator) {
		r.logger = logger
	}
}

// WithClock overrides time.Now, for tests
func WithClock(now func() time.Time) RotatorOption {
	return func(r *FileRotator) {
		r.now = now
	}
}

// NewFileRotator creates a new rotator with the given base directory
func NewFileRotator(baseDir string, opts ...RotatorOption) (*FileRotator, error) {
	r := &FileRotator{
		hotDir:     filepath.Join(baseDir, "hot"),
		warmDir:    filepath.Join(baseDir, "warm"),
		coldDir:    filepath.Join(baseDir, "cold"),
		maxMatches: DefaultMaxMatchesPerFile,
		maxAge:     DefaultMaxFileAge,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, dir := range []string{r.hotDir, r.warmDir, r.coldDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := r.rotate(); err != nil {
		return nil, err
	}
	return r, nil
}

// SetColdDir allows setting a different cold storage path (e.g., HDD)
func (r *FileRotator) SetColdDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create cold directory: %w", err)
	}
	r.mu.Lock()
	r.coldDir = path
	r.mu.Unlock()
	return nil
}

// Write appends one match to the current file, flushes it, and rotates when
// the file is full or too old
func (r *FileRotator) Write(match *ArchivedMatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return errors.New("rotator is closed")
	}

	data, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match %d: %w", match.GameID, err)
	}
	if _, err := r.currentWriter.Write(data); err != nil {
		return fmt.Errorf("failed to write match %d: %w", match.GameID, err)
	}
	if err := r.currentWriter.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	r.matchCount++
	if err := r.currentWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}

	if r.shouldRotate() {
		return r.rotate()
	}
	return nil
}

// shouldRotate checks if we need to rotate to a new file
func (r *FileRotator) shouldRotate() bool {
	if r.currentFile == nil {
		return true
	}
	if r.matchCount >= r.maxMatches {
		return true
	}
	return r.now().Sub(r.fileOpenedAt) >= r.maxAge
}

// closeCurrent closes the open file and moves it to warm; an empty file is removed
func (r *FileRotator) closeCurrent() error {
	if r.currentFile == nil {
		return nil
	}
	if err := r.currentWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush before rotation: %w", err)
	}
	if err := r.currentFile.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	r.currentFile = nil

	if r.matchCount == 0 {
		return os.Remove(r.currentPath)
	}

	warmPath := filepath.Join(r.warmDir, filepath.Base(r.currentPath))
	if err := os.Rename(r.currentPath, warmPath); err != nil {
		return fmt.Errorf("failed to move to warm storage: %w", err)
	}
	r.logger.Info("archive file moved to warm", "file", filepath.Base(r.currentPath), "matches", r.matchCount)
	return nil
}

// rotate closes current file and opens a new one
func (r *FileRotator) rotate() error {
	if err := r.closeCurrent(); err != nil {
		return err
	}

	r.sequence++
	opened := r.now()
	filename := fmt.Sprintf("raw_matches_%s_%03d.jsonl", opened.Format("2006-01-02_15-04-05"), r.sequence)
	r.currentPath = filepath.Join(r.hotDir, filename)

	file, err := os.Create(r.currentPath)
	if err != nil {
		return fmt.Errorf("failed to create new file: %w", err)
	}

	r.currentFile = file
	r.currentWriter = bufio.NewWriterSize(file, 64*1024) // 64KB buffer
	r.matchCount = 0
	r.fileOpenedAt = opened

	r.logger.Debug("archive file opened", "file", filename)
	return nil
}

// Close flushes and closes the current file
func (r *FileRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closeCurrent()
}

// Stats returns current rotator statistics
func (r *FileRotator) Stats() (matchesInCurrentFile int, currentFileName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matchCount, filepath.Base(r.currentPath)
}

// CompressWarm moves every warm file to cold storage
func (r *FileRotator) CompressWarm() (int, error) {
	r.mu.Lock()
	warmDir, coldDir := r.warmDir, r.coldDir
	r.mu.Unlock()

	files, err := filepath.Glob(filepath.Join(warmDir, "*.jsonl"))
	if err != nil {
		return 0, err
	}
	sort.Strings(files)
	for i, path := range files {
		if err := CompressToCold(path, coldDir); err != nil {
			return i, err
		}
		r.logger.Info("archive file compressed", "file", filepath.Base(path))
	}
	return len(files), nil
}

// CompressToCold compresses a warm file and moves it to cold storage
func CompressToCold(warmPath, coldDir string) error {
	src, err := os.Open(warmPath)
	if err != nil {
		return err
	}
	defer src.Close()

	coldPath := filepath.Join(coldDir, filepath.Base(warmPath)+".gz")
	dst, err := os.Create(coldPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	gzWriter := gzip.NewWriter(dst)
	if _, err := io.Copy(gzWriter, src); err != nil {
		return err
	}
	if err := gzWriter.Close(); err != nil {
		return err
	}

	return os.Remove(warmPath)
}

// ArchiveFiles lists the closed archive files under baseDir, warm before cold,
// each tier in name (and so creation) order
func ArchiveFiles(baseDir string) ([]string, error) {
	var all []string
	for _, pattern := range []string{
		filepath.Join(baseDir, "warm", "*.jsonl"),
		filepath.Join(baseDir, "cold", "*.jsonl.gz"),
	} {
		files, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		sort.Strings(files)
		all = append(all, files...)
	}
	return all, nil
}

// ReadArchive decodes every match of a .jsonl or .jsonl.gz file in order and
// passes it to fn. Iteration stops at the first error fn returns.
func ReadArchive(path string, fn func(*ArchivedMatch) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()

	var r io.Reader = bufio.NewReader(file)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return fmt.Errorf("failed to open gzip archive %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	// lines can be far larger than bufio.Scanner's limit, so decode the stream directly
	dec := json.NewDecoder(r)
	for line := 1; ; line++ {
		var match ArchivedMatch
		if err := dec.Decode(&match); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%s: record %d: %w", filepath.Base(path), line, err)
		}
		if err := fn(&match); err != nil {
			return err
		}
	}
}
