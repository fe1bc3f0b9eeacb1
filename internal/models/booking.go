package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	ProviderID uint     `gorm:"index" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	ServiceID uint    `gorm:"index:idx_booking_service_date" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	// Data "YYYY-MM-DD" e horários "HH:MM" com zero à esquerda:
	// comparação lexicográfica no SQL equivale à ordem dos minutos.
	Date      string `gorm:"size:10;index:idx_booking_service_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
