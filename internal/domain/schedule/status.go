package schedule

// ===============================
// Status de reserva
// ===============================

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// CountsTowardCapacity diz se a reserva ocupa vaga no slot.
// completed conta: o slot foi de fato ocupado.
func (s BookingStatus) CountsTowardCapacity() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// Cancellable diz se o status ainda permite cancelamento.
func (s BookingStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Terminal diz se o status é final.
func (s BookingStatus) Terminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Máquina de estados
// ===============================

// pending -> confirmed | cancelled
// confirmed -> completed | cancelled | no_show
// cancelled / completed / no_show -> (terminal)
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled || to == StatusNoShow
	}
	return false
}

// InitialStatus define o status inicial conforme a política do serviço.
func InitialStatus(requireConfirmation bool) BookingStatus {
	if requireConfirmation {
		return StatusPending
	}
	return StatusConfirmed
}
