package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFile atomically replaces the file at the provided path with the
// rendered source, writing a uniquely named temporary file in the same
// directory and renaming it into place
func WriteFile(path string, src []byte) error {
	tmp := filepath.Join(
		filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New()),
	)
	if err := os.WriteFile(tmp, src, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
