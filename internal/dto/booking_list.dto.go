package dto

import "github.com/google/uuid"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	PublicID     uuid.UUID `json:"public_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
}
