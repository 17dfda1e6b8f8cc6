package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// Video is a curated video entry shown in the kids' catalog.
	Video struct {
		ID              uuid.UUID      `gorm:"primaryKey" json:"id"`
		Title           string         `gorm:"not null" json:"title" validate:"required"`
		Description     string         `json:"description"`
		URL             string         `json:"url" validate:"required,url"`
		ThumbnailURL    string         `json:"thumbnailUrl"`
		Category        string         `json:"category"`
		AgeRange        string         `json:"ageRange"`
		DurationSeconds int            `json:"durationSeconds"`
		Active          bool           `json:"active"`
		Position        int            `json:"position"`
		CreatedAt       time.Time      `json:"createdAt"`
		UpdatedAt       time.Time      `json:"-"`
		DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	}

	// Game ("jogo") is an embedded browser game.
	Game struct {
		ID           uuid.UUID      `gorm:"primaryKey" json:"id"`
		Title        string         `gorm:"not null" json:"title" validate:"required"`
		Description  string         `json:"description"`
		URL          string         `json:"url" validate:"required,url"`
		ThumbnailURL string         `json:"thumbnailUrl"`
		Category     string         `json:"category"`
		AgeRange     string         `json:"ageRange"`
		Active       bool           `json:"active"`
		Position     int            `json:"position"`
		CreatedAt    time.Time      `json:"createdAt"`
		UpdatedAt    time.Time      `json:"-"`
		DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	}

	// Activity ("atividade") is a printable/interactive exercise.
	Activity struct {
		ID           uuid.UUID      `gorm:"primaryKey" json:"id"`
		Title        string         `gorm:"not null" json:"title" validate:"required"`
		Description  string         `json:"description"`
		URL          string         `json:"url" validate:"required,url"`
		ThumbnailURL string         `json:"thumbnailUrl"`
		Category     string         `json:"category"`
		AgeRange     string         `json:"ageRange"`
		Active       bool           `json:"active"`
		Position     int            `json:"position"`
		CreatedAt    time.Time      `json:"createdAt"`
		UpdatedAt    time.Time      `json:"-"`
		DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	}

	Achievement struct {
		ID          uuid.UUID      `gorm:"primaryKey" json:"id"`
		Name        string         `gorm:"not null" json:"name" validate:"required"`
		Description string         `json:"description"`
		Icon        string         `json:"icon"`
		Points      int            `json:"points" validate:"gte=0"`
		Criteria    string         `json:"criteria"`
		CreatedAt   time.Time      `json:"createdAt"`
		UpdatedAt   time.Time      `json:"-"`
		DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	}

	Avatar struct {
		ID        uuid.UUID      `gorm:"primaryKey" json:"id"`
		Name      string         `gorm:"not null" json:"name" validate:"required"`
		ImageURL  string         `json:"imageUrl"`
		Price     int            `json:"price" validate:"gte=0"`
		Active    bool           `json:"active"`
		CreatedAt time.Time      `json:"createdAt"`
		UpdatedAt time.Time      `json:"-"`
		DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	}

	DailyMission struct {
		ID          uuid.UUID      `gorm:"primaryKey" json:"id"`
		Title       string         `gorm:"not null" json:"title" validate:"required"`
		Description string         `json:"description"`
		Reward      int            `json:"reward" validate:"gte=0"`
		Weekday     int            `json:"weekday" validate:"gte=0,lte=6"`
		Active      bool           `json:"active"`
		CreatedAt   time.Time      `json:"createdAt"`
		UpdatedAt   time.Time      `json:"-"`
		DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	}

	User struct {
		ID        uuid.UUID      `gorm:"primaryKey" json:"id"`
		Name      string         `gorm:"not null" json:"name" validate:"required"`
		Email     string         `gorm:"uniqueIndex" json:"email" validate:"required,email"`
		Role      Role           `json:"role" validate:"required,oneof=admin editor viewer"`
		Active    bool           `json:"active"`
		CreatedAt time.Time      `json:"createdAt"`
		UpdatedAt time.Time      `json:"-"`
		DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	}

	Role string
)

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)
