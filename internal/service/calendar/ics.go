package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
)

// Генерация iCalendar (.ics) файла для записи
// Экспортеру нужны только date/startTime/durationMinutes/serviceName/price -
// всё это снимок в самой записи, живая услуга из каталога не требуется

const (
	prodID     = "-//Hair-Formation//EN"
	uidSuffix  = "@hair-formation"
	icsTimeFmt = "20060102T150405Z"
)

// Build собирает VCALENDAR payload для записи
func Build(appt *domain.Appointment, now time.Time) (string, error) {
	startMinute, err := appt.StartTime.MinuteOfDay()
	if err != nil {
		return "", fmt.Errorf("calendar: invalid appointment start time: %w", err)
	}

	y, m, d := appt.Date.Date()
	start := time.Date(y, m, d, 0, startMinute, 0, 0, time.UTC)
	end := start.Add(time.Duration(appt.DurationMinutes) * time.Minute)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"BEGIN:VEVENT",
		"UID:" + appt.ID.String() + uidSuffix,
		"DTSTAMP:" + now.UTC().Format(icsTimeFmt),
		"DTSTART:" + start.Format(icsTimeFmt),
		"DTEND:" + end.Format(icsTimeFmt),
		"SUMMARY:Hair-Formation • " + escapeText(appt.ServiceName),
		fmt.Sprintf("DESCRIPTION:Service: %s\\nPrice: $%.2f", escapeText(appt.ServiceName), appt.Price),
		"END:VEVENT",
		"END:VCALENDAR",
	}

	// iCalendar требует CRLF-переводы строк
	return strings.Join(lines, "\r\n"), nil
}

// Filename возвращает имя файла для скачивания
func Filename(appt *domain.Appointment) string {
	return "hair-formation-" + appt.ID.String() + ".ics"
}

// escapeText экранирует специальные символы iCalendar текста
func escapeText(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
