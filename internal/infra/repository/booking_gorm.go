package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *BookingGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *BookingGormRepository) ListDoctors(
	ctx context.Context,
	specialty string,
	query string,
) ([]models.Doctor, error) {

	q := r.db.WithContext(ctx).Model(&models.Doctor{})

	specialty = strings.TrimSpace(specialty)
	if specialty != "" && specialty != "All Specialties" {
		q = q.Where("specialty = ?", specialty)
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(specialty) LIKE ?", like, like)
	}

	var doctors []models.Doctor
	if err := q.Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}

	return doctors, nil
}

func (r *BookingGormRepository) UpdateDoctorImage(
	ctx context.Context,
	id uint,
	imageURL string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForPatient(
	ctx context.Context,
	id string,
	patientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	patientID uint,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.Order("date ASC, time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsByStatus(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Patient")

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.Order("created_at ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Statistics
// --------------------------------------------------

func (r *BookingGormRepository) CountAppointments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Count(&count).Error
	return count, err
}

func (r *BookingGormRepository) CountAppointmentsByStatus(
	ctx context.Context,
	status string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// Appointment dates are stored as YYYY-MM-DD, so string comparison
// orders them correctly.
func (r *BookingGormRepository) CountAppointmentsBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date >= ? AND date < ? AND status IN ?",
			from.Format("2006-01-02"),
			to.Format("2006-01-02"),
			[]string{"pending", "approved"},
		).
		Count(&count).Error
	return count, err
}

func (r *BookingGormRepository) MonthlyAppointmentCounts(
	ctx context.Context,
	months int,
	now time.Time,
) ([]domain.MonthlyCount, error) {

	out := make([]domain.MonthlyCount, 0, months)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := months - 1; i >= 0; i-- {
		start := first.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where(
				"date >= ? AND date < ?",
				start.Format("2006-01-02"),
				end.Format("2006-01-02"),
			).
			Count(&count).Error; err != nil {
			return nil, err
		}

		out = append(out, domain.MonthlyCount{
			Month: start.Format("2006-01"),
			Count: count,
		})
	}

	return out, nil
}

func (r *BookingGormRepository) AppointmentCountsBySpecialty(
	ctx context.Context,
) ([]domain.SpecialtyCount, error) {

	var out []domain.SpecialtyCount
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("doctors.specialty AS specialty, COUNT(appointments.id) AS count").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Group("doctors.specialty").
		Order("count DESC").
		Scan(&out).Error

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *BookingGormRepository) CountPatients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", "patient").
		Count(&count).Error
	return count, err
}

func (r *BookingGormRepository) CountPatientsSince(
	ctx context.Context,
	since time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ? AND created_at >= ?", "patient", since).
		Count(&count).Error
	return count, err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
