package models

import "time"

// Reference data: seeded at startup, never mutated by the booking flow.
// Only the portrait URL changes, via the admin image upload.
type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Specialty       string  `gorm:"size:50;not null" json:"specialty"`
	ImageURL        string  `gorm:"size:255" json:"image"`
	Rating          float64 `json:"rating"`
	ExperienceYears int     `json:"experience"`
	About           string  `gorm:"type:text" json:"about"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
