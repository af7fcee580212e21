package service

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"hearingheroes/internal/models"
)

// Placeholder values substituted for missing word-pair fields. A practice
// attempt is never dropped because its word pair arrived malformed; losing
// a real gameplay action is worse than storing a placeholder.
const (
	placeholderWord1  = "unknown_word1"
	placeholderWord2  = "unknown_word2"
	placeholderAudio  = "unknown.mp3"
	placeholderImage  = "placeholder.png"
	placeholderTarget = "unknown_target"
)

// NormalizeWordPair fills missing or invalid word-pair fields with
// placeholders and returns the sanitized pair. It never fails.
// fallbackLevel is used when the pair carries no difficulty level,
// typically the current session's level.
func NormalizeWordPair(pair models.WordPair, fallbackLevel int) models.WordPair {
	if pair.ID == "" {
		pair.ID = placeholderPairID()
	}
	if pair.Word1 == "" {
		pair.Word1 = placeholderWord1
	}
	if pair.Word2 == "" {
		pair.Word2 = placeholderWord2
	}
	if pair.AudioPrompt1 == "" {
		pair.AudioPrompt1 = placeholderAudio
	}
	if pair.AudioPrompt2 == "" {
		pair.AudioPrompt2 = placeholderAudio
	}
	if pair.Image1 == "" {
		pair.Image1 = placeholderImage
	}
	if pair.Image2 == "" {
		pair.Image2 = placeholderImage
	}
	if !pair.ContrastType.Valid() {
		pair.ContrastType = models.DefaultContrastType
	}
	if pair.DifficultyLevel < 1 {
		if fallbackLevel >= 1 {
			pair.DifficultyLevel = fallbackLevel
		} else {
			pair.DifficultyLevel = 1
		}
	}
	return pair
}

// placeholderPairID generates a synthetic id for a word pair that arrived
// without one
func placeholderPairID() string {
	id, err := gonanoid.New()
	if err != nil {
		// crypto/rand failure; fall back to a timestamp id
		return fmt.Sprintf("pair_%d", time.Now().UnixNano())
	}
	return "pair_" + id
}
