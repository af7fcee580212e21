package wordpairs

import (
	"fmt"
	"log"
	"os"
	"path"
	"sync"

	"gopkg.in/yaml.v3"

	"hearingheroes/internal/models"
)

// Provider loads discrimination word pairs from a YAML content file and
// serves them from an in-memory cache. The file is read once and reused
// until Load is called with forceFresh.
type Provider struct {
	path string

	mu    sync.RWMutex
	cache *models.WordPairsData
}

// NewProvider creates a provider reading from the given YAML file path.
func NewProvider(filePath string) *Provider {
	return &Provider{path: filePath}
}

// Load returns the word-pair content, reading the file on first use.
// With forceFresh the cache is discarded and the file read again.
func (p *Provider) Load(forceFresh bool) (*models.WordPairsData, error) {
	p.mu.RLock()
	if p.cache != nil && !forceFresh {
		data := p.cache
		p.mu.RUnlock()
		return data, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cache != nil && !forceFresh {
		return p.cache, nil
	}

	raw, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word pairs file: %w", err)
	}

	var data models.WordPairsData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse word pairs file: %w", err)
	}

	log.Printf("Loaded %d word pairs across %d contrast types from %s",
		len(data.WordPairs), len(data.ContrastTypes), p.path)

	p.cache = &data
	return p.cache, nil
}

// ByLevel returns all pairs at the given difficulty level.
func (p *Provider) ByLevel(level int) ([]models.WordPair, error) {
	data, err := p.Load(false)
	if err != nil {
		return nil, err
	}

	var pairs []models.WordPair
	for _, wp := range data.WordPairs {
		if wp.DifficultyLevel == level {
			pairs = append(pairs, wp)
		}
	}
	return pairs, nil
}

// ByContrast returns all pairs for the given contrast category.
func (p *Provider) ByContrast(ct models.ContrastType) ([]models.WordPair, error) {
	data, err := p.Load(false)
	if err != nil {
		return nil, err
	}

	var pairs []models.WordPair
	for _, wp := range data.WordPairs {
		if wp.ContrastType == ct {
			pairs = append(pairs, wp)
		}
	}
	return pairs, nil
}

// ByID returns a single pair, or nil when the id is unknown.
func (p *Provider) ByID(id string) (*models.WordPair, error) {
	data, err := p.Load(false)
	if err != nil {
		return nil, err
	}

	for i := range data.WordPairs {
		if data.WordPairs[i].ID == id {
			pair := data.WordPairs[i]
			return &pair, nil
		}
	}
	return nil, nil
}

// AudioPath resolves an audio prompt filename under the assets directory.
func AudioPath(assetsDir, filename string) string {
	return path.Join(assetsDir, "audio", filename)
}

// ImagePath resolves an image filename under the assets directory.
func ImagePath(assetsDir, filename string) string {
	return path.Join(assetsDir, "images", filename)
}
