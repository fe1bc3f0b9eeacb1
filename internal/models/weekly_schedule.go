package models

import "time"

// Padrão semanal de um dia de atendimento do serviço.
// Horários em "HH:MM"; a validação de formato e consistência fica no
// motor de agenda antes de salvar.
type WeeklySchedule struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"index:idx_schedule_service_weekday,unique" json:"service_id"`

	Weekday int `gorm:"index:idx_schedule_service_weekday,unique" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	Breaks []ScheduleBreak `gorm:"constraint:OnDelete:CASCADE;" json:"breaks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pausa [start, end) dentro do expediente do dia.
type ScheduleBreak struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	WeeklyScheduleID uint `gorm:"index" json:"weekly_schedule_id"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
}
