package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iho/fintrack/internal/domain"
)

// YAMLCodec reads and writes YAML snapshots.
type YAMLCodec struct{}

func (YAMLCodec) Format() string { return "yaml" }

func (YAMLCodec) Encode(s *Snapshot) ([]byte, error) {
	return yaml.Marshal(s)
}

func (YAMLCodec) Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadSnapshot, err)
	}
	return &s, nil
}
