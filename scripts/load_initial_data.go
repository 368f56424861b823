package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tournament-backend/internal/config"
	"tournament-backend/internal/database"
	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/events"
	"tournament-backend/internal/repository"
	"tournament-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RosterFile is one YAML file under scripts/data
type RosterFile struct {
	Teams []TeamData `yaml:"teams"`
}

type TeamData struct {
	Name        string       `yaml:"name"`
	Category    string       `yaml:"category"`
	CrestURL    string       `yaml:"crest_url,omitempty"`
	Description string       `yaml:"description,omitempty"`
	FoundedOn   string       `yaml:"founded_on,omitempty"`
	Players     []PlayerData `yaml:"players"`
}

type PlayerData struct {
	Name             string `yaml:"name"`
	BirthDate        string `yaml:"birth_date"`
	Position         string `yaml:"position"`
	JerseyNumber     int    `yaml:"jersey_number"`
	EmergencyContact string `yaml:"emergency_contact,omitempty"`
}

type loadStats struct {
	teamsCreated, teamsSkipped     int
	playersCreated, playersSkipped int
}

func main() {
	log.Println("Loading initial roster data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	teams, err := loadRosterFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read YAML files: %v", err)
	}

	stats, err := seed(context.Background(), db, teams)
	if err != nil {
		log.Fatalf("Failed to load roster data: %v", err)
	}

	log.Printf("Teams: %d created, %d already present", stats.teamsCreated, stats.teamsSkipped)
	log.Printf("Players: %d created, %d skipped", stats.playersCreated, stats.playersSkipped)
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadRosterFiles(dataDir string) ([]TeamData, error) {
	var all []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file RosterFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, file.Teams...)
		return nil
	})

	return all, err
}

// seed goes through the services so the data obeys the same rules as API writes.
// Re-running it is safe: existing teams are reused and taken jerseys are skipped.
func seed(ctx context.Context, db *gorm.DB, teams []TeamData) (loadStats, error) {
	var stats loadStats

	store := repository.NewRosterStore(db)
	validate := validator.New()
	clock := clockwork.NewRealClock()
	publisher := events.NewLogPublisher()

	teamService := service.NewTeamService(store, validate, clock, publisher, nil)
	playerService := service.NewPlayerService(store, validate, clock, publisher)

	for _, td := range teams {
		team, err := teamService.CreateTeam(ctx, &service.CreateTeamRequest{
			Name:        td.Name,
			Category:    td.Category,
			CrestURL:    td.CrestURL,
			Description: td.Description,
			FoundedOn:   td.FoundedOn,
		})
		switch {
		case err == nil:
			stats.teamsCreated++
		case apperrors.IsAlreadyExists(err):
			team, err = teamService.GetTeamByName(ctx, td.Name)
			if err != nil {
				return stats, fmt.Errorf("team %q: %w", td.Name, err)
			}
			stats.teamsSkipped++
		default:
			return stats, fmt.Errorf("team %q: %w", td.Name, err)
		}

		for _, pd := range td.Players {
			_, err := playerService.RegisterPlayer(ctx, &service.RegisterPlayerRequest{
				TeamID:           team.ID,
				Name:             pd.Name,
				BirthDate:        pd.BirthDate,
				Position:         models.Position(pd.Position),
				JerseyNumber:     pd.JerseyNumber,
				EmergencyContact: pd.EmergencyContact,
			})
			switch {
			case err == nil:
				stats.playersCreated++
			case apperrors.IsAlreadyExists(err):
				stats.playersSkipped++
			default:
				return stats, fmt.Errorf("player %q of %q: %w", pd.Name, td.Name, err)
			}
		}
	}

	return stats, nil
}
