package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"k9-duty-backend/internal/config"
	"k9-duty-backend/internal/database"
	"k9-duty-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type EmployeeData struct {
	FullName    string `yaml:"full_name"`
	BadgeNumber string `yaml:"badge_number"`
	Role        string `yaml:"role"`
	Active      *bool  `yaml:"active,omitempty"`
}

type DogData struct {
	Name  string `yaml:"name"`
	Breed string `yaml:"breed,omitempty"`
}

type ProjectData struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location,omitempty"`
	Active   *bool  `yaml:"active,omitempty"`
}

type ShiftData struct {
	Name      string `yaml:"name"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

// File structures
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type DogsFile struct {
	Dogs []DogData `yaml:"dogs"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

func main() {
	log.Println("Loading initial registry data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Postgres readiness
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var shifts ShiftsFile
	if err := readYAML(filepath.Join(dataDir, "shifts.yaml"), &shifts); err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}
	for _, data := range shifts.Shifts {
		if err := upsertShift(db, data); err != nil {
			return err
		}
	}

	var projects ProjectsFile
	if err := readYAML(filepath.Join(dataDir, "projects.yaml"), &projects); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	for _, data := range projects.Projects {
		if err := upsertProject(db, data); err != nil {
			return err
		}
	}

	var dogs DogsFile
	if err := readYAML(filepath.Join(dataDir, "dogs.yaml"), &dogs); err != nil {
		return fmt.Errorf("failed to load dogs: %w", err)
	}
	for _, data := range dogs.Dogs {
		if err := upsertDog(db, data); err != nil {
			return err
		}
	}

	var employees EmployeesFile
	if err := readYAML(filepath.Join(dataDir, "employees.yaml"), &employees); err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	for _, data := range employees.Employees {
		if err := upsertEmployee(db, data); err != nil {
			return err
		}
	}

	return nil
}

func readYAML(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Skipping %s: file not found", path)
			return nil
		}
		return err
	}
	return yaml.Unmarshal(raw, out)
}

func upsertEmployee(db *gorm.DB, data EmployeeData) error {
	role := models.EmployeeRole(data.Role)
	if !role.IsValid() {
		return fmt.Errorf("employee %q has unknown role %q", data.BadgeNumber, data.Role)
	}

	active := true
	if data.Active != nil {
		active = *data.Active
	}

	var employee models.Employee
	err := db.Where("badge_number = ?", data.BadgeNumber).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		employee = models.Employee{
			FullName:    data.FullName,
			BadgeNumber: data.BadgeNumber,
			Role:        role,
			Active:      active,
		}
		if err := db.Create(&employee).Error; err != nil {
			return fmt.Errorf("failed to create employee %q: %w", data.BadgeNumber, err)
		}
		log.Printf("Created employee %s (%s)", data.FullName, data.BadgeNumber)
		return nil
	}
	if err != nil {
		return err
	}

	employee.FullName = data.FullName
	employee.Role = role
	employee.Active = active
	if err := db.Save(&employee).Error; err != nil {
		return fmt.Errorf("failed to update employee %q: %w", data.BadgeNumber, err)
	}
	log.Printf("Updated employee %s (%s)", data.FullName, data.BadgeNumber)
	return nil
}

func upsertDog(db *gorm.DB, data DogData) error {
	var dog models.Dog
	err := db.Where("name = ?", data.Name).First(&dog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dog = models.Dog{Name: data.Name, Breed: data.Breed}
		if err := db.Create(&dog).Error; err != nil {
			return fmt.Errorf("failed to create dog %q: %w", data.Name, err)
		}
		log.Printf("Created dog %s", data.Name)
		return nil
	}
	if err != nil {
		return err
	}

	dog.Breed = data.Breed
	if err := db.Save(&dog).Error; err != nil {
		return fmt.Errorf("failed to update dog %q: %w", data.Name, err)
	}
	return nil
}

func upsertProject(db *gorm.DB, data ProjectData) error {
	active := true
	if data.Active != nil {
		active = *data.Active
	}

	var project models.Project
	err := db.Where("name = ?", data.Name).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		project = models.Project{Name: data.Name, Location: data.Location, Active: active}
		if err := db.Create(&project).Error; err != nil {
			return fmt.Errorf("failed to create project %q: %w", data.Name, err)
		}
		log.Printf("Created project %s", data.Name)
		return nil
	}
	if err != nil {
		return err
	}

	project.Location = data.Location
	project.Active = active
	if err := db.Save(&project).Error; err != nil {
		return fmt.Errorf("failed to update project %q: %w", data.Name, err)
	}
	return nil
}

func upsertShift(db *gorm.DB, data ShiftData) error {
	if _, err := time.Parse("15:04", data.StartTime); err != nil {
		return fmt.Errorf("shift %q has malformed start_time %q", data.Name, data.StartTime)
	}
	if _, err := time.Parse("15:04", data.EndTime); err != nil {
		return fmt.Errorf("shift %q has malformed end_time %q", data.Name, data.EndTime)
	}

	var shift models.Shift
	err := db.Where("name = ?", data.Name).First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		shift = models.Shift{Name: data.Name, StartTime: data.StartTime, EndTime: data.EndTime}
		if err := db.Create(&shift).Error; err != nil {
			return fmt.Errorf("failed to create shift %q: %w", data.Name, err)
		}
		log.Printf("Created shift %s", data.Name)
		return nil
	}
	if err != nil {
		return err
	}

	shift.StartTime = data.StartTime
	shift.EndTime = data.EndTime
	if err := db.Save(&shift).Error; err != nil {
		return fmt.Errorf("failed to update shift %q: %w", data.Name, err)
	}
	return nil
}
