package allocation

import "time"

// Estados de vencimiento de un lote o grupo de lotes.
const (
	StatusExpired  = "EXPIRED"
	StatusCritical = "CRITICAL"
	StatusWarning  = "WARNING"
	StatusOK       = "OK"
)

// Thresholds define los horizontes de clasificación en días.
type Thresholds struct {
	CriticalDays int
	WarningDays  int
}

// DefaultThresholds: crítico hasta 7 días, alerta hasta 30.
func DefaultThresholds() Thresholds {
	return Thresholds{CriticalDays: 7, WarningDays: 30}
}

// ClassifyExpiry clasifica una fecha de vencimiento contra today, a
// granularidad de día: EXPIRED si ya pasó; CRITICAL hasta today+CriticalDays
// inclusive; WARNING hasta today+WarningDays inclusive; OK después.
// Sin vencimiento (nil) → OK.
func ClassifyExpiry(expired *time.Time, today time.Time, th Thresholds) string {
	if expired == nil {
		return StatusOK
	}
	exp := DateOnly(*expired)
	base := DateOnly(today)
	switch {
	case exp.Before(base):
		return StatusExpired
	case !exp.After(base.AddDate(0, 0, th.CriticalDays)):
		return StatusCritical
	case !exp.After(base.AddDate(0, 0, th.WarningDays)):
		return StatusWarning
	default:
		return StatusOK
	}
}

// DaysToExpiry devuelve los días de calendario hasta el vencimiento
// (negativo si ya venció). ok=false cuando el lote no vence.
func DaysToExpiry(expired *time.Time, today time.Time) (days int, ok bool) {
	if expired == nil {
		return 0, false
	}
	diff := DateOnly(*expired).Sub(DateOnly(today))
	return int(diff.Round(24*time.Hour) / (24 * time.Hour)), true
}

// DateOnly trunca t a medianoche en su zona horaria.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
