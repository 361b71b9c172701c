package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// MenuService overwrites the published menu file with whatever the client
// sends. The payload is not validated against any schema; the separate
// front end reading the file gets exactly what was pushed. Writes are not
// synchronized; the last writer wins.
type MenuService struct {
	path      string
	revisions MenuStore
}

func NewMenuService(path string, revisions MenuStore) *MenuService {
	return &MenuService{path: path, revisions: revisions}
}

// Publish pretty-prints the payload and overwrites the menu file, then
// records an audit revision.
func (s *MenuService) Publish(ctx context.Context, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize menu: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create menu directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write menu file: %w", err)
	}

	// The file is the source of truth; a failed audit row is logged but
	// does not undo the publish.
	if err := s.revisions.SaveRevision(ctx, data); err != nil {
		log.Println("Failed to record menu revision:", err)
	}

	return nil
}
