package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const (
	LayoutDate = "2006-01-02"
	LayoutTime = "15:04"
)

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

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today devolve a data corrente no fuso do estúdio, no formato de data.
func Today(tz string) string {
	return NowIn(tz).Format(LayoutDate)
}

func ParseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, dateStr, Location(tz))
}
