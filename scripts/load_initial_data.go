package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"volunteer-roster-backend/internal/config"
	"volunteer-roster-backend/internal/database"
	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const dateLayout = "2006-01-02"

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
}

type PersonData struct {
	Name             string        `yaml:"name"`
	OrganizationName string        `yaml:"organization_name"`
	Email            string        `yaml:"email,omitempty"`
	Roles            []string      `yaml:"roles"`
	IsActive         *bool         `yaml:"is_active,omitempty"`
	TimeOff          []TimeOffData `yaml:"time_off,omitempty"`
}

type TimeOffData struct {
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
	Reason    string `yaml:"reason,omitempty"`
}

type EventData struct {
	OrganizationName string         `yaml:"organization_name"`
	Type             string         `yaml:"type"`
	StartTime        time.Time      `yaml:"start_time"`
	EndTime          time.Time      `yaml:"end_time"`
	Location         string         `yaml:"location,omitempty"`
	RoleRequirements map[string]int `yaml:"role_requirements,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type PeopleFile struct {
	People []PersonData `yaml:"people"`
}

type EventsFile struct {
	Events []EventData `yaml:"events"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	people, err := loadPeople(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}

	events, err := loadEvents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create people with their time-off ranges
	personCreated := 0
	for _, personData := range people {
		_, created, err := createPerson(db, personData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create person %s: %w", personData.Name, err)
		}
		if created {
			personCreated++
		}
	}
	log.Printf("📋 People: %d created, %d total", personCreated, len(people))

	// Create events
	eventCreated := 0
	for _, eventData := range events {
		_, created, err := createEvent(db, eventData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create event %s: %v", eventData.Type, err)
			continue // Continue with other events
		}
		if created {
			eventCreated++
		}
	}
	log.Printf("📋 Events: %d created, %d total", eventCreated, len(events))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadPeople(dataDir string) ([]PersonData, error) {
	var allPeople []PersonData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "people") {
			var file PeopleFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPeople = append(allPeople, file.People...)
		}
		return nil
	})

	return allPeople, err
}

func loadEvents(dataDir string) ([]EventData, error) {
	var allEvents []EventData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "events") {
			var file EventsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEvents = append(allEvents, file.Events...)
		}
		return nil
	})

	return allEvents, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:        orgData.Name,
				DisplayName: orgData.DisplayName,
				Description: orgData.Description,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createPerson(db *gorm.DB, personData PersonData, orgMap map[string]*models.Organization) (*models.Person, bool, error) {
	org := orgMap[personData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for person %s", personData.OrganizationName, personData.Name)
	}

	roles := models.RoleList{}
	for _, role := range personData.Roles {
		if normalized := models.NormalizeRole(role); normalized != "" {
			roles = append(roles, normalized)
		}
	}

	isActive := true
	if personData.IsActive != nil {
		isActive = *personData.IsActive
	}

	var person models.Person
	if err := db.Where("name = ? AND organization_id = ?", personData.Name, org.ID).First(&person).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			person = models.Person{
				OrganizationID: org.ID,
				Name:           personData.Name,
				Email:          personData.Email,
				Roles:          roles,
				IsActive:       isActive,
			}

			if err := db.Create(&person).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create person: %w", err)
			}

			for _, timeOffData := range personData.TimeOff {
				if err := createTimeOff(db, person.ID, timeOffData); err != nil {
					log.Printf("⚠️  Warning: failed to create time-off for %s: %v", personData.Name, err)
				}
			}
			return &person, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query person: %w", err)
		}
	}

	return &person, false, nil // created = false (existing)
}

func createTimeOff(db *gorm.DB, personID uuid.UUID, timeOffData TimeOffData) error {
	startDate, err := time.Parse(dateLayout, timeOffData.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q: %w", timeOffData.StartDate, err)
	}
	endDate, err := time.Parse(dateLayout, timeOffData.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end_date %q: %w", timeOffData.EndDate, err)
	}
	if startDate.After(endDate) {
		return fmt.Errorf("start_date %s is after end_date %s", timeOffData.StartDate, timeOffData.EndDate)
	}

	timeOff := models.TimeOffRange{
		PersonID:  personID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    timeOffData.Reason,
	}
	return db.Create(&timeOff).Error
}

func createEvent(db *gorm.DB, eventData EventData, orgMap map[string]*models.Organization) (*models.Event, bool, error) {
	org := orgMap[eventData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for event %s", eventData.OrganizationName, eventData.Type)
	}

	requirements := models.RoleCountMap{}
	for role, count := range eventData.RoleRequirements {
		if normalized := models.NormalizeRole(role); normalized != "" && count > 0 {
			requirements[normalized] = count
		}
	}

	var event models.Event
	err := db.Where("type = ? AND organization_id = ? AND start_time = ?",
		eventData.Type, org.ID, eventData.StartTime).First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			event = models.Event{
				OrganizationID:   org.ID,
				Type:             eventData.Type,
				StartTime:        eventData.StartTime,
				EndTime:          eventData.EndTime,
				Location:         eventData.Location,
				RoleRequirements: requirements,
			}

			if err := db.Create(&event).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create event: %w", err)
			}
			return &event, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query event: %w", err)
	}

	return &event, false, nil // created = false (existing)
}
