package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Storage keys for the three independently persisted collections. The
// names carry over from earlier releases so existing data keeps loading.
const (
	EntriesKey     = "tracker_entries_v3"
	GoalsKey       = "tracker_goals_v2"
	HabitLabelsKey = "tracker_habit_labels"
)

// Persistence is a small key-value contract: each collection is one
// JSON document under one key. Load never fails; Save may.
type Persistence interface {
	// Load reads the document under key into out. On a missing key or
	// undecodable content it logs, leaves out untouched, and reports
	// false so the caller can fall back to a default.
	Load(key string, out any) bool
	// Save serializes value and writes it under key unconditionally.
	Save(key string, value any) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Load(key string, out any) bool {
	data, err := p.d.Read(key)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "store: read %s: %s\n", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %s\n", key, err)
		return false
	}
	return true
}

func (p *persistence) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// All documents live flat in the base directory.
func flatTransform(string) []string { return []string{} }
