package domain

import "time"

// Technician represents a member of the service roster
type Technician struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Active      bool
	Specialties []string // Набор тегов услуг, которые выполняет мастер
	Color       string   // Цвет для календаря, на логику не влияет
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DateException is a whole-day availability override for a technician.
// Available=false marks the technician off for the entire date regardless
// of blocked windows or bookings; Available=true re-enables the date.
type DateException struct {
	ID           int64
	TechnicianID int64
	Date         time.Time
	Available    bool
	Reason       *string
	CreatedAt    time.Time
}

// TechnicianUpdate частичное обновление мастера
// nil-поля не изменяются; ограничения на размер состава здесь не проверяются
type TechnicianUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	Active      *bool
	Specialties *[]string
	Color       *string
}
