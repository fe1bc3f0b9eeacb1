package dto

import "time"

// Slot exposto ao calendário. A lista de reservas sobrepostas fica no
// motor; para fora vai só a contagem.
type TimeSlotDTO struct {
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Datetime  time.Time `json:"datetime"`
	Available bool      `json:"available"`
	Booked    int       `json:"booked"`
	Capacity  int       `json:"capacity"`
}

type DailyAvailabilityDTO struct {
	Date      string        `json:"date"`
	Weekday   int           `json:"weekday"`
	Available bool          `json:"available"`
	Slots     []TimeSlotDTO `json:"slots"`
}
