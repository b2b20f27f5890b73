package memory

import (
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"

	"github.com/syntrixbase/vidlist/pkg/model"
)

// Seed is the YAML fixture format accepted by LoadSeed.
type Seed struct {
	Owners []SeedOwner `yaml:"owners"`
	Videos []SeedVideo `yaml:"videos"`
}

type SeedOwner struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Avatar   string `yaml:"avatar"`
}

type SeedVideo struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Owner       string    `yaml:"owner"`
	Published   bool      `yaml:"published"`
	Views       int64     `yaml:"views"`
	Duration    float64   `yaml:"duration"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// LoadSeedFile reads a YAML fixture into the store.
func (s *Store) LoadSeedFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	return s.LoadSeed(data)
}

// LoadSeed parses YAML fixture data into the store.
// Missing video ids are generated.
func (s *Store) LoadSeed(data []byte) error {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed: %w", err)
	}

	for _, o := range seed.Owners {
		id, err := primitive.ObjectIDFromHex(o.ID)
		if err != nil {
			return fmt.Errorf("owner %q: invalid id: %w", o.Username, err)
		}
		s.PutOwner(model.Owner{ID: id, Username: o.Username, Email: o.Email, FullName: o.FullName, Avatar: o.Avatar})
	}

	for _, v := range seed.Videos {
		id := primitive.NewObjectID()
		if v.ID != "" {
			parsed, err := primitive.ObjectIDFromHex(v.ID)
			if err != nil {
				return fmt.Errorf("video %q: invalid id: %w", v.Title, err)
			}
			id = parsed
		}
		owner, err := primitive.ObjectIDFromHex(v.Owner)
		if err != nil {
			return fmt.Errorf("video %q: invalid owner: %w", v.Title, err)
		}
		s.PutItem(model.ContentItem{
			ID:          id,
			Title:       v.Title,
			Description: v.Description,
			Owner:       owner,
			IsPublished: v.Published,
			Views:       v.Views,
			Duration:    v.Duration,
			CreatedAt:   v.CreatedAt,
			UpdatedAt:   v.CreatedAt,
		})
	}

	return nil
}
