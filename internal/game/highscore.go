package game

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	configDirName     = "pacman"
	highScoreJSONFN   = "highscores.json"
	maxHighScores     = 10
	defaultPlayerName = "PAC"
)

// HighScoreRecord is one row of the top-10 table.
type HighScoreRecord struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// HighScoreManager keeps the top-10 table in memory and persists it as JSON.
type HighScoreManager struct {
	records []HighScoreRecord
}

// configBaseDir determines where the table is stored. PACMAN_CONFIG_DIR
// overrides; otherwise UserConfigDir()/pacman.
func configBaseDir() (string, error) {
	if env := os.Getenv("PACMAN_CONFIG_DIR"); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func highScoreFilePath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, highScoreJSONFN), nil
}

// NewHighScoreManager loads the persisted table; a missing or unreadable
// file yields the factory default entry.
func NewHighScoreManager() *HighScoreManager {
	h := &HighScoreManager{}
	h.load()
	return h
}

func (h *HighScoreManager) load() {
	h.records = nil
	path, err := highScoreFilePath()
	if err == nil {
		if data, rerr := os.ReadFile(path); rerr == nil {
			var arr []HighScoreRecord
			if json.Unmarshal(data, &arr) == nil {
				h.records = arr
			}
		}
	}
	if len(h.records) == 0 {
		h.records = []HighScoreRecord{{Name: "AAA", Score: 10000}}
	}
	h.normalize()
}

// normalize sorts descending and trims to the table size.
func (h *HighScoreManager) normalize() {
	sort.SliceStable(h.records, func(i, j int) bool {
		return h.records[i].Score > h.records[j].Score
	})
	if len(h.records) > maxHighScores {
		h.records = h.records[:maxHighScores]
	}
}

// Best returns the highest score on the table.
func (h *HighScoreManager) Best() int {
	if len(h.records) == 0 {
		return 0
	}
	return h.records[0].Score
}

// Records returns the table, best first.
func (h *HighScoreManager) Records() []HighScoreRecord {
	return h.records
}

// IsHighScore reports whether a score qualifies for the table.
func (h *HighScoreManager) IsHighScore(score int) bool {
	if len(h.records) < maxHighScores {
		return true
	}
	return score > h.records[len(h.records)-1].Score
}

// Add inserts a score under a 3-letter name and persists the table.
func (h *HighScoreManager) Add(score int, name string) error {
	if score < 0 {
		return errors.New("score must be non-negative")
	}
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) > 3 {
		name = name[:3]
	}
	if name == "" {
		name = defaultPlayerName
	}
	h.records = append(h.records, HighScoreRecord{Name: name, Score: score})
	h.normalize()
	return h.Save()
}

// Save writes the table atomically (tmp file + rename).
func (h *HighScoreManager) Save() error {
	path, err := highScoreFilePath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(h.records, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
