package schedule

import "time"

// ===============================
// Políticas de antecedência e cancelamento
// ===============================

// IsDateBookable testa a janela de antecedência: hoje e hoje+advanceDays
// entram, inclusivo nas duas pontas. "Hoje" vem do now no fuso do prestador.
func IsDateBookable(date Date, advanceDays int, now time.Time) bool {
	today := DateOf(now)
	last := today.AddDays(advanceDays)
	return !date.Before(today) && !date.After(last)
}

// CanCancel testa a política de cancelamento de uma reserva.
// Reserva já terminal (ou no_show) não cancela; reserva que já começou
// não cancela; no limite exato da política ainda cancela (inclusivo).
func CanCancel(b BookingRecord, policyHours int, now time.Time) bool {
	if !b.Status.Cancellable() {
		return false
	}

	startsAt := b.Date.At(b.Start, now.Location())
	until := startsAt.Sub(now)
	if until < 0 {
		return false
	}
	return until >= MinutesToDuration(policyHours*60)
}
