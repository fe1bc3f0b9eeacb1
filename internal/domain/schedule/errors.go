package schedule

import "errors"

// ===============================
// Erros do motor de agenda
// ===============================

// Todos são falhas determinísticas de validação de entrada.
// O chamador distingue "dia fechado" (lista vazia, sem erro)
// de "configuração quebrada" (erro).
var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrMinutesOutOfRange = errors.New("minutes out of range")
	ErrInvalidDuration   = errors.New("invalid slot duration")
	ErrInvalidSchedule   = errors.New("invalid schedule")
	ErrInvalidSettings   = errors.New("invalid booking settings")
)
