package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iho/fintrack/internal/domain"
)

// Codec encodes and decodes snapshot documents in one interchange format.
type Codec interface {
	// Format is the codec's canonical name: "json", "yaml" or "csv".
	Format() string
	Encode(s *Snapshot) ([]byte, error)
	Decode(data []byte) (*Snapshot, error)
}

// ByFormat resolves a codec by canonical name.
func ByFormat(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	case "csv":
		return CSVCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown snapshot format %q", domain.ErrBadSnapshot, name)
	}
}

// ByPath resolves a codec from a file extension.
func ByPath(path string) (Codec, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: path %q has no format extension", domain.ErrBadSnapshot, path)
	}
	return ByFormat(ext)
}
