package prompts

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Mai-GitHubb/smart-email-agent/internal/service"
)

// Store layers user overrides on top of the default templates and keeps the
// full mapping persisted through a PromptPersistence collaborator.
type Store struct {
	persistence service.PromptPersistence
	overrides   map[string]string
	logger      *slog.Logger
}

// NewStore creates a prompt store, loading any persisted overrides. A
// missing or corrupt persisted mapping silently falls back to defaults.
func NewStore(persistence service.PromptPersistence, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	overrides := make(map[string]string)
	if persistence != nil {
		saved, err := persistence.Load()
		if err != nil {
			logger.Warn("failed to load saved prompts, using defaults", "error", err)
		} else {
			defaults := Defaults()
			for name, body := range saved {
				// Only record entries that actually differ from the default;
				// extra unknown keys are preserved as overrides too.
				if body != defaults[name] {
					overrides[name] = body
				}
			}
		}
	}

	return &Store{
		persistence: persistence,
		overrides:   overrides,
		logger:      logger,
	}
}

// All returns the defaults overlaid with any overrides. The result always
// contains every default key, plus any extra persisted keys.
func (s *Store) All() map[string]string {
	merged := Defaults()
	for name, body := range s.overrides {
		merged[name] = body
	}
	return merged
}

// Get returns the effective template for name. Unknown names return the
// empty string with ok false.
func (s *Store) Get(name string) (string, bool) {
	if body, ok := s.overrides[name]; ok {
		return body, true
	}
	body, ok := Defaults()[name]
	return body, ok
}

// Set stores an override for one template and persists the full mapping.
// A persistence failure surfaces as an error and leaves the in-memory
// state unchanged.
func (s *Store) Set(name, template string) error {
	merged := s.All()
	merged[name] = template

	if s.persistence != nil {
		if err := s.persistence.Save(merged); err != nil {
			return fmt.Errorf("failed to save prompts: %w", err)
		}
	}

	s.overrides[name] = template
	return nil
}

// ResetAll discards every override and persists the defaults.
func (s *Store) ResetAll() error {
	if s.persistence != nil {
		if err := s.persistence.Save(Defaults()); err != nil {
			return fmt.Errorf("failed to save prompts: %w", err)
		}
	}

	s.overrides = make(map[string]string)
	return nil
}

// FileStore persists the template mapping as a flat JSON object on disk.
type FileStore struct {
	Path string
}

// Load reads the persisted mapping. A missing file yields an empty mapping
// and no error.
func (f *FileStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}
	return templates, nil
}

// Save writes the full mapping, creating the parent directory if needed.
func (f *FileStore) Save(templates map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o750); err != nil {
		return fmt.Errorf("failed to create prompts directory: %w", err)
	}

	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode prompts: %w", err)
	}

	if err := os.WriteFile(f.Path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write prompts file: %w", err)
	}
	return nil
}
