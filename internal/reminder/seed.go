package reminder

import (
	"fmt"
	"os"
	"time"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	"gopkg.in/yaml.v3"
)

// Seed is an event to add at startup.
type Seed struct {
	Title       string
	Description string
	Date        time.Time
}

type seedFile struct {
	Events []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Date        string `yaml:"date"`
	} `yaml:"events"`
}

// DefaultSeeds returns the demo reminders the server starts with.
func DefaultSeeds(today time.Time) []Seed {
	today = v1.NormalizeDate(today)
	return []Seed{
		{Title: "Team Meeting", Description: "Weekly team sync meeting", Date: today.AddDate(0, 0, 1)},
		{Title: "Project Deadline", Description: "Submit final project report", Date: today.AddDate(0, 0, 7)},
		{Title: "Doctor Appointment", Description: "Annual health checkup", Date: today.AddDate(0, 0, 14)},
	}
}

// LoadSeedFile reads seeds from a YAML file of the form:
//
//	events:
//	  - title: Team Meeting
//	    description: Weekly sync
//	    date: 2026-01-02
func LoadSeedFile(path string) ([]Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	seeds := make([]Seed, 0, len(raw.Events))
	for i, e := range raw.Events {
		if e.Title == "" {
			return nil, fmt.Errorf("seed file %s: event %d: title is required", path, i+1)
		}
		date, err := v1.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("seed file %s: event %d: %w", path, i+1, err)
		}
		seeds = append(seeds, Seed{Title: e.Title, Description: e.Description, Date: date})
	}
	return seeds, nil
}
