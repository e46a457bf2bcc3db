package systems

import (
	"encoding/json"
	"log"

	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug         bool   `json:"debug"`
	DrawSensors   bool   `json:"drawSensors"`
	DrawTerrain   bool   `json:"drawTerrain"`
	DrawHitbox    bool   `json:"drawHitbox"`
	CharacterFile string `json:"characterFile"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

const (
	settingsKey = "settings"
	recordsKey  = "records"
)

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sonicmaker",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// loadItem returns nil when persistence is unavailable or the item was
// never saved.
func loadItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return nil
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return err
	}
	return nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	var settings *SavedSettings
	if err := loadItem(settingsKey, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// SaveCurrentSettings saves the runtime toggles along with the character file in use.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:         s.Debug,
		DrawSensors:   s.DrawSensors,
		DrawTerrain:   s.DrawTerrain,
		DrawHitbox:    s.DrawHitbox,
		CharacterFile: cfg.Debug.CharacterFile,
	})
}

// ApplySavedSettingsGlobal applies loaded settings to the global debug config
// before any scene exists. A character file given on the command line wins
// over the saved one.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Enabled = saved.Debug
	cfg.Debug.DrawSensors = saved.DrawSensors
	cfg.Debug.DrawTerrain = saved.DrawTerrain
	cfg.Debug.DrawHitbox = saved.DrawHitbox
	if cfg.Debug.CharacterFile == "" {
		cfg.Debug.CharacterFile = saved.CharacterFile
	}
}

// LoadRecords returns the best ring count per level name.
func LoadRecords() map[string]int {
	records := map[string]int{}
	_ = loadItem(recordsKey, &records)
	return records
}

// SaveRecord stores rings as the record for level when it beats the saved one.
// It reports whether the record was beaten.
func SaveRecord(level string, rings int) bool {
	records := LoadRecords()
	if rings <= records[level] {
		return false
	}
	records[level] = rings
	_ = saveItem(recordsKey, records)
	return true
}
