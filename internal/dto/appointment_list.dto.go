package dto

import "time"

type AppointmentListDTO struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason"`
	DoctorName string    `json:"doctor_name"`
	Specialty  string    `json:"specialty"`
	CreatedAt  time.Time `json:"created_at"`
}
