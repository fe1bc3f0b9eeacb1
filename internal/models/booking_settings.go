package models

import "time"

// Configuração de agendamento por serviço. Registro explícito e completo;
// sem defaults implícitos dentro do motor de agenda.
type BookingSettings struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"uniqueIndex" json:"service_id"`

	DurationMinutes         int `json:"duration_minutes"`
	MaxConcurrentBookings   int `json:"max_concurrent_bookings"`
	AdvanceBookingDays      int `json:"advance_booking_days"`
	BufferMinutes           int `json:"buffer_minutes"`
	CancellationPolicyHours int `json:"cancellation_policy_hours"`

	RequireConfirmation       bool `json:"require_confirmation"`
	AllowCustomerCancellation bool `json:"allow_customer_cancellation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
