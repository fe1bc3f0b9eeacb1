package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Hora de parede (minutos do dia)
// ===============================

// TimeOfDay é um horário de parede em minutos desde 00:00.
// Toda a aritmética interna do motor usa inteiros; strings "HH:MM"
// existem só na borda (parse/format).
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay aceita exatamente "HH:MM" (24h, zero à esquerda).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	for i, c := range s {
		if i != 2 && (c < '0' || c > '9') {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeOfDay(h*60 + m), nil
}

// Format devolve "HH:MM"; falha fora de [0, 1440).
func (t TimeOfDay) Format() (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: %d", ErrMinutesOutOfRange, int(t))
	}
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60), nil
}

// String é só para logs e mensagens; nunca falha.
func (t TimeOfDay) String() string {
	s, err := t.Format()
	if err != nil {
		return fmt.Sprintf("minute(%d)", int(t))
	}
	return s
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// MinutesToDuration converte minutos inteiros em time.Duration.
func MinutesToDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}

// ===============================
// Data de calendário
// ===============================

// Date é uma data de calendário sem hora e sem fuso.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate aceita exatamente "YYYY-MM-DD" e valida no calendário.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf extrai a data de parede de um instante (no location dele).
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday é o dia da semana do calendário, sem deslocamento de fuso.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n))
}

// At combina a data com um horário de parede no fuso dado.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Minutes()/60, t.Minutes()%60, 0, 0, loc)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool { return o.Before(d) }

func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}
