package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"laptopMart/business/recommend"
)

// indexArtifact is the JSON shape materialized by the offline build step.
// This package only loads it; nothing here ever writes one.
type indexArtifact struct {
	BuiltAt time.Time               `json:"built_at"`
	Scaler  recommend.Scaler        `json:"scaler"`
	Items   []recommend.IndexedItem `json:"items"`
}

// LoadFeatureIndex reads a precomputed feature-index artifact and
// reconstructs the immutable snapshot, reusing the fitted scaler as-is.
func LoadFeatureIndex(path string) (*recommend.FeatureIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index artifact %s: %w", path, err)
	}

	var art indexArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode index artifact %s: %w", path, err)
	}

	if len(art.Items) == 0 {
		return nil, fmt.Errorf("index artifact %s has no items", path)
	}

	return recommend.NewFeatureIndex(art.Items, art.Scaler, art.BuiltAt), nil
}
