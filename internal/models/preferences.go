package models

import "time"

// Preferences is the singleton-per-id configuration record. It shares the
// store with practice data but survives ClearPracticeData.
type Preferences struct {
	ID                   string    `json:"id"`
	ChildName            string    `json:"childName"`
	IsAudioEnabled       bool      `json:"isAudioEnabled"`
	IsMusicEnabled       bool      `json:"isMusicEnabled"`
	MusicVolume          float64   `json:"musicVolume"`
	CurrentLevel         int       `json:"currentLevel"`
	MaxSessionMinutes    int       `json:"maxSessionMinutes"`
	DifficultyMultiplier float64   `json:"difficultyMultiplier"`
	EnableAnimations     bool      `json:"enableAnimations"`
	ShowLevelSelection   bool      `json:"showLevelSelection"`
	RequireParentAuth    bool      `json:"requireParentAuth"`
	ParentPINHash        string    `json:"-"`
	LastUpdated          time.Time `json:"lastUpdated"`
}

// DefaultPreferencesID is the id used when the caller doesn't supply one
const DefaultPreferencesID = "default"

// DefaultPreferences returns a fresh preferences record with the defaults
// used on first launch and after a reset
func DefaultPreferences(id string) *Preferences {
	if id == "" {
		id = DefaultPreferencesID
	}
	return &Preferences{
		ID:                   id,
		ChildName:            "Samantha",
		IsAudioEnabled:       true,
		IsMusicEnabled:       true,
		MusicVolume:          0.4,
		CurrentLevel:         1,
		MaxSessionMinutes:    15,
		DifficultyMultiplier: 1.0,
		EnableAnimations:     true,
		ShowLevelSelection:   false,
		RequireParentAuth:    true,
		LastUpdated:          time.Now(),
	}
}
