package wordpairs

import (
	"os"
	"path/filepath"
	"testing"

	"hearingheroes/internal/models"
)

const testContent = `contrastTypes:
  - id: plosive-voiced-unvoiced
    name: Voiced vs Unvoiced Plosives
    description: Stop consonants differing only in voicing
wordPairs:
  - id: pear-bear
    word1: pear
    word2: bear
    audioPrompt1: pear.mp3
    audioPrompt2: bear.mp3
    image1: pear.png
    image2: bear.png
    contrastType: plosive-voiced-unvoiced
    difficultyLevel: 1
  - id: pig-big
    word1: pig
    word2: big
    audioPrompt1: pig.mp3
    audioPrompt2: big.mp3
    image1: pig.png
    image2: big.png
    contrastType: plosive-voiced-unvoiced
    difficultyLevel: 2
  - id: lake-rake
    word1: lake
    word2: rake
    audioPrompt1: lake.mp3
    audioPrompt2: rake.mp3
    image1: lake.png
    image2: rake.png
    contrastType: lateral-rhotic
    difficultyLevel: 2
`

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordpairs.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	p := NewProvider(writeTestFile(t, testContent))

	data, err := p.Load(false)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(data.WordPairs) != 3 {
		t.Errorf("len(WordPairs) = %d, want 3", len(data.WordPairs))
	}
	if len(data.ContrastTypes) != 1 {
		t.Errorf("len(ContrastTypes) = %d, want 1", len(data.ContrastTypes))
	}
	if data.WordPairs[0].Word1 != "pear" || data.WordPairs[0].DifficultyLevel != 1 {
		t.Errorf("first pair mismatch: %+v", data.WordPairs[0])
	}
}

func TestLoadCaches(t *testing.T) {
	path := writeTestFile(t, testContent)
	p := NewProvider(path)

	if _, err := p.Load(false); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Delete the backing file: a cached load still succeeds, a fresh one fails
	os.Remove(path)
	if _, err := p.Load(false); err != nil {
		t.Errorf("cached Load failed: %v", err)
	}
	if _, err := p.Load(true); err == nil {
		t.Error("forceFresh Load should fail once the file is gone")
	}
}

func TestLoadMissingFile(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "nope.yml"))
	if _, err := p.Load(false); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	p := NewProvider(writeTestFile(t, "wordPairs: [not: closed"))
	if _, err := p.Load(false); err == nil {
		t.Error("malformed YAML should be an error")
	}
}

func TestByLevel(t *testing.T) {
	p := NewProvider(writeTestFile(t, testContent))

	pairs, err := p.ByLevel(2)
	if err != nil {
		t.Fatalf("ByLevel failed: %v", err)
	}
	if len(pairs) != 2 {
		t.Errorf("len = %d, want 2", len(pairs))
	}

	none, _ := p.ByLevel(9)
	if len(none) != 0 {
		t.Errorf("len = %d, want 0", len(none))
	}
}

func TestByContrast(t *testing.T) {
	p := NewProvider(writeTestFile(t, testContent))

	pairs, err := p.ByContrast(models.ContrastLateralRhotic)
	if err != nil {
		t.Fatalf("ByContrast failed: %v", err)
	}
	if len(pairs) != 1 || pairs[0].ID != "lake-rake" {
		t.Errorf("got %+v, want lake-rake only", pairs)
	}
}

func TestByID(t *testing.T) {
	p := NewProvider(writeTestFile(t, testContent))

	pair, err := p.ByID("pig-big")
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if pair == nil || pair.Word2 != "big" {
		t.Errorf("got %+v", pair)
	}

	missing, err := p.ByID("nope")
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if missing != nil {
		t.Error("unknown id should return nil")
	}
}

func TestAssetPaths(t *testing.T) {
	if got := AudioPath("assets", "pear.mp3"); got != "assets/audio/pear.mp3" {
		t.Errorf("AudioPath = %q", got)
	}
	if got := ImagePath("assets", "pear.png"); got != "assets/images/pear.png" {
		t.Errorf("ImagePath = %q", got)
	}
}
