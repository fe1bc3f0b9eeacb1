package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// NowIn é o "agora" no fuso dado. O motor de agenda nunca chama isto:
// os use cases resolvem o instante aqui e injetam no motor.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

func Now() time.Time {
	return NowIn(DefaultTimezone)
}
