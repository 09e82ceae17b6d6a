package reply

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// cannedFile is the YAML layout of a canned replies overlay:
//
//	replies:
//	  "สวัสดี": "..."
type cannedFile struct {
	Replies map[string]string `yaml:"replies"`
}

// LoadCanned merges the replies in path over DefaultCanned. An empty path
// returns the defaults. Keys are used verbatim, whitespace included.
func LoadCanned(path string) (map[string]string, error) {
	out := DefaultCanned()
	if path == "" {
		return out, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read canned replies: %w", err)
	}
	var f cannedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse canned replies %s: %w", path, err)
	}
	for k, v := range f.Replies {
		if v == "" {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out, nil
}
