package physics2d

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeWorldConfig reads a WorldConfig from JSON, mirroring the teacher's
// scene-file loading (internal/world/scenefile.go's encoding/json decode).
// Any decode failure is wrapped with context since it is the one place
// this package touches the outside world's data.
func DecodeWorldConfig(r io.Reader) (WorldConfig, error) {
	var cfg WorldConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("physics2d: decode world config: %w", err)
	}
	return cfg, nil
}
