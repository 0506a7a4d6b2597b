package snapshot

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Marshal encodes the tree below root as TOML
func Marshal(root *Group) ([]byte, error) {
	data, err := toml.Marshal(File{Root: root})
	if err != nil {
		return nil, fmt.Errorf("snapshot encode failed: %w", err)
	}
	return data, nil
}

// Save writes the tree below root to path
func Save(path string, root *Group) error {
	data, err := Marshal(root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot save failed (%s): %w", path, err)
	}

	log.Infoln("Saved snapshot", path)

	return nil
}
