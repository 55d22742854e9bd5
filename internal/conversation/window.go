package conversation

import "time"

// UserLocation — фиксированный пояс пользователя (Тюмень, UTC+5).
// Записи хранятся в UTC, окно суток считается в этом поясе.
var UserLocation = time.FixedZone("UTC+5", 5*60*60)

// DayWindow возвращает границы суток [00:00:00.000000, 23:59:59.999999]
// даты date в поясе UserLocation, переведённые в UTC.
func DayWindow(date time.Time) (start, end time.Time) {
	y, m, d := date.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, UserLocation).UTC()
	end = start.Add(24*time.Hour - time.Microsecond)
	return start, end
}
