package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/medibook/clinic-scheduler/internal/models"
)

// Specialties is the canonical filter list exposed by the doctor directory.
var Specialties = []string{
	"All Specialties",
	"Cardiology",
	"Dermatology",
	"Family Medicine",
	"Gastroenterology",
	"Neurology",
	"Obstetrics & Gynecology",
	"Ophthalmology",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
	"Radiology",
	"Urology",
}

var doctorCatalog = []models.Doctor{
	{
		ID:              1,
		Name:            "Dr. Sarah Johnson",
		Specialty:       "Cardiology",
		ImageURL:        "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?q=80&w=200&h=200&auto=format&fit=crop",
		Rating:          4.8,
		ExperienceYears: 12,
		About:           "Dr. Johnson is a board-certified cardiologist with over 12 years of experience in treating heart conditions. She specializes in preventive cardiology and heart failure management.",
	},
	{
		ID:              2,
		Name:            "Dr. Michael Chen",
		Specialty:       "Dermatology",
		ImageURL:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?q=80&w=200&h=200&auto=format&fit=crop",
		Rating:          4.7,
		ExperienceYears: 8,
		About:           "Dr. Chen is a dermatologist who focuses on skin cancer detection and treatment, as well as cosmetic procedures. He's known for his gentle approach and thorough examinations.",
	},
	{
		ID:              3,
		Name:            "Dr. Emily Rodriguez",
		Specialty:       "Pediatrics",
		ImageURL:        "https://images.unsplash.com/photo-1594824476967-48c8b964273f?q=80&w=200&h=200&auto=format&fit=crop",
		Rating:          4.9,
		ExperienceYears: 15,
		About:           "Dr. Rodriguez has been caring for children for over 15 years. She's passionate about preventive care and helping parents navigate the challenges of raising healthy kids.",
	},
	{
		ID:              4,
		Name:            "Dr. James Wilson",
		Specialty:       "Orthopedics",
		ImageURL:        "https://images.unsplash.com/photo-1622253692010-333f2da6031d?q=80&w=200&h=200&auto=format&fit=crop",
		Rating:          4.6,
		ExperienceYears: 10,
		About:           "Dr. Wilson specializes in sports medicine and joint replacement surgery. He works with patients of all ages to improve mobility and reduce pain through both surgical and non-surgical approaches.",
	},
	{
		ID:              5,
		Name:            "Dr. Amara Patel",
		Specialty:       "Neurology",
		ImageURL:        "https://images.unsplash.com/photo-1614608682850-e0d6ed316d3f?q=80&w=200&h=200&auto=format&fit=crop",
		Rating:          4.9,
		ExperienceYears: 14,
		About:           "Dr. Patel is a neurologist specializing in headache disorders and multiple sclerosis. She combines the latest research with a compassionate approach to patient care.",
	},
	{
		ID:              6,
		Name:            "Dr. Robert Kim",
		Specialty:       "Family Medicine",
		ImageURL:        "https://images.unsplash.com/photo-1582750433449-648ed127bb54?q=80&w=200&h=200&auto=format&fit=crop",
		Rating:          4.8,
		ExperienceYears: 20,
		About:           "Dr. Kim has been practicing family medicine for over two decades. He provides comprehensive care for patients of all ages and emphasizes preventive health strategies.",
	},
}

// SeedDoctors loads the doctor catalog on first boot. The table is reference
// data: once populated it is left alone.
func SeedDoctors(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Doctor{}).Count(&count).Error; err != nil {
		log.Printf("doctor seed skipped: %v", err)
		return
	}

	if count > 0 {
		return
	}

	if err := db.Create(&doctorCatalog).Error; err != nil {
		log.Printf("doctor seed failed: %v", err)
		return
	}

	log.Printf("seeded %d doctors", len(doctorCatalog))
}
