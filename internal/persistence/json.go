package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveJSON encodes the given object as indented JSON and saves it to
// filePath, creating parent directories as needed. The write goes through a
// temporary file and rename so a crash mid-write never leaves a truncated
// snapshot behind.
func SaveJSON(filePath string, object interface{}) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(object, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON for %s: %w", filePath, err)
	}

	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0640); err != nil {
		return fmt.Errorf("failed to write file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("failed to replace file %s: %w", filePath, err)
	}
	return nil
}

// LoadJSON decodes a JSON file from filePath into the provided object
// pointer. If the file does not exist, it returns os.ErrNotExist, allowing
// callers to handle fresh starts gracefully.
func LoadJSON(filePath string, objectPointer interface{}) error {
	data, err := os.ReadFile(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	if err := json.Unmarshal(data, objectPointer); err != nil {
		return fmt.Errorf("failed to decode JSON from file %s: %w", filePath, err)
	}
	return nil
}
