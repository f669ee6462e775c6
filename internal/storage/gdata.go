package storage

import (
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const bestObject = "best"

// bestRecord is the YAML payload of one best-score property.
type bestRecord struct {
	Score     int       `yaml:"score"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// SaveData keeps best scores in the platform save-data directory.
// It is used when the SQLite database cannot be opened.
// A SaveData with a nil manager stores nothing and reports 0.
type SaveData struct {
	m *gdata.Manager
}

// OpenSaveData opens the save-data location of the given application.
func OpenSaveData(appName string) (*SaveData, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &SaveData{}, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &SaveData{m: m}, nil
}

// BestScore returns the stored best score for the given game, or 0.
func (d *SaveData) BestScore(gameID string) (int, error) {
	if d.m == nil || !d.m.ObjectPropExists(bestObject, gameID) {
		return 0, nil
	}

	data, err := d.m.LoadObjectProp(bestObject, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}

	var rec bestRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: cannot decode best score: %w", err)
	}
	return rec.Score, nil
}

// RecordBest stores score as the best for the game unless a higher one is stored.
func (d *SaveData) RecordBest(gameID string, score int) error {
	if d.m == nil {
		return nil
	}

	current, err := d.BestScore(gameID)
	if err == nil && current >= score {
		return nil
	}

	data, err := yaml.Marshal(bestRecord{Score: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("storage: cannot encode best score: %w", err)
	}
	if err := d.m.SaveObjectProp(bestObject, gameID, data); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}
