// Package palette persists saved background/text colour pairs.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/irocheck/internal/colour"
	"github.com/jmylchreest/irocheck/internal/security"
)

// ErrNotFound is returned when no saved palette has the requested id.
var ErrNotFound = errors.New("palette not found")

// Palette is a saved colour pair.
type Palette struct {
	ID         string    `json:"id"`
	Background string    `json:"bg_color"`
	Text       string    `json:"text_color"`
	CreatedAt  time.Time `json:"created_at"`
}

// Contrast classifies the saved pair.
func (p Palette) Contrast() colour.ContrastResult {
	return colour.CheckContrast(p.Background, p.Text)
}

// Store reads and writes saved palettes as a JSON array, newest first.
type Store struct {
	path   string
	logger hclog.Logger
	now    func() time.Time
	newID  func() string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{
		path:   path,
		logger: logger.Named("palette"),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// List returns all saved palettes, newest first. A missing file is an empty list.
func (s *Store) List() ([]Palette, error) {
	data, err := security.ReadFile(s.path, security.MaxStoreSize)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("no palette file yet", "path", s.path)
		return []Palette{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var palettes []Palette
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, &palettes); err != nil {
			s.logger.Error("palette file is corrupt", "path", s.path, "error", err)
			return nil, fmt.Errorf("failed to parse palette file %s: %w", s.path, err)
		}
	}
	if palettes == nil {
		palettes = []Palette{}
	}
	s.logger.Debug("loaded palettes", "path", s.path, "count", len(palettes))
	return palettes, nil
}

// Get returns the palette with the given id, accepting a unique id prefix.
func (s *Store) Get(id string) (Palette, error) {
	palettes, err := s.List()
	if err != nil {
		return Palette{}, err
	}
	idx, err := find(palettes, id)
	if err != nil {
		return Palette{}, err
	}
	return palettes[idx], nil
}

// Add validates and saves a colour pair, returning the new palette.
func (s *Store) Add(bg, text string) (Palette, error) {
	bgHex, ok := colour.Normalise(bg)
	if !ok {
		return Palette{}, fmt.Errorf("invalid background colour: %q", bg)
	}
	textHex, ok := colour.Normalise(text)
	if !ok {
		return Palette{}, fmt.Errorf("invalid text colour: %q", text)
	}

	palettes, err := s.List()
	if err != nil {
		return Palette{}, err
	}

	p := Palette{
		ID:         s.newID(),
		Background: bgHex,
		Text:       textHex,
		CreatedAt:  s.now().UTC(),
	}
	palettes = append([]Palette{p}, palettes...)

	if err := s.save(palettes); err != nil {
		return Palette{}, err
	}
	s.logger.Info("saved palette", "id", p.ID, "bg", p.Background, "text", p.Text)
	return p, nil
}

// Delete removes the palette with the given id, accepting a unique id prefix.
func (s *Store) Delete(id string) (Palette, error) {
	palettes, err := s.List()
	if err != nil {
		return Palette{}, err
	}
	idx, err := find(palettes, id)
	if err != nil {
		return Palette{}, err
	}

	removed := palettes[idx]
	palettes = append(palettes[:idx], palettes[idx+1:]...)
	if err := s.save(palettes); err != nil {
		return Palette{}, err
	}
	s.logger.Info("deleted palette", "id", removed.ID)
	return removed, nil
}

// find locates id by exact match first, then by unique prefix.
func find(palettes []Palette, id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	match := -1
	for i, p := range palettes {
		if p.ID == id {
			return i, nil
		}
		if strings.HasPrefix(p.ID, id) {
			if match >= 0 {
				return -1, fmt.Errorf("id prefix %q is ambiguous", id)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return match, nil
}

// save writes palettes through a temporary file and rename so readers never see a partial file.
func (s *Store) save(palettes []Palette) error {
	data, err := json.MarshalIndent(palettes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal palettes: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create palette directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".palettes-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary palette file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to update palette file: %w", err)
	}
	return nil
}
