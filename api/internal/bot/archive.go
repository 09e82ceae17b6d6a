package bot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const archiveLayout = "2006_01_02_15_04_05"

// Archive keeps a copy of every received image as
// <dir>/YYYY_MM_DD_HH_MM_SS_<messageID><ext>.
type Archive struct {
	dir string
	now func() time.Time
}

func NewArchive(dir string) *Archive {
	return &Archive{dir: dir, now: time.Now}
}

// Save writes data and returns the file name, which doubles as the image
// identifier in conversation logs.
func (a *Archive) Save(messageID string, data []byte) (string, error) {
	ext := mimetype.Detect(data).Extension()
	if ext == "" {
		ext = ".bin"
	}
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	safeID := strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(messageID)
	name := a.now().Format(archiveLayout) + "_" + safeID + ext

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return name, nil
}
