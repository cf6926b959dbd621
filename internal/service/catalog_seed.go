package service

import (
	_ "embed"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindful/pkg/entity"
	"gopkg.in/yaml.v3"
)

//go:embed seed_catalog.yaml
var seedCatalogYAML []byte

var seedNamespace = uuid.MustParse("6f1d7a52-3c1e-4c7b-9a55-0d8f3e2b9c11")

// SeedCatalog returns the bundled entries. Ids are derived from titles so a re-seed yields the same ids.
func SeedCatalog(now time.Time) []entity.MeditationEntry {
	var entries []entity.MeditationEntry
	if err := yaml.Unmarshal(seedCatalogYAML, &entries); err != nil {
		log.Fatal("parsing bundled seed catalog error: " + err.Error())
	}
	for i := range entries {
		entries[i].ID = uuid.NewSHA1(seedNamespace, []byte(entries[i].Title))
		entries[i].CreatedAt = now
		if entries[i].AmbientSound == "" {
			entries[i].AmbientSound = entity.SoundNone
		}
	}
	return entries
}
