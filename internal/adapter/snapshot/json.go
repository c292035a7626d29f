package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/iho/fintrack/internal/domain"
)

// JSONCodec reads and writes pretty-printed JSON snapshots.
type JSONCodec struct{}

func (JSONCodec) Format() string { return "json" }

func (JSONCodec) Encode(s *Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func (JSONCodec) Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadSnapshot, err)
	}
	return &s, nil
}
