package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
)

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.MustParse("6b9e076c-6f0e-4f3a-9a3e-1f6a2c3d4e5f"),
		Date:            time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 45,
		ServiceName:     "Skin Fade",
		Price:           35,
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 30, 0, 0, time.UTC)

	payload, err := Build(sampleAppointment(), now)
	require.NoError(t, err)

	lines := strings.Split(payload, "\r\n")
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])

	assert.Contains(t, lines, "PRODID:-//Hair-Formation//EN")
	assert.Contains(t, lines, "UID:6b9e076c-6f0e-4f3a-9a3e-1f6a2c3d4e5f@hair-formation")
	assert.Contains(t, lines, "DTSTAMP:20260220T123000Z")
	assert.Contains(t, lines, "DTSTART:20260302T100000Z")
	// 10:00 + 45 минут
	assert.Contains(t, lines, "DTEND:20260302T104500Z")
	assert.Contains(t, lines, "SUMMARY:Hair-Formation • Skin Fade")
	assert.Contains(t, lines, "DESCRIPTION:Service: Skin Fade\\nPrice: $35.00")
}

func TestBuild_EscapesServiceName(t *testing.T) {
	appt := sampleAppointment()
	appt.ServiceName = "Cut; Beard, Deluxe"

	payload, err := Build(appt, time.Now())
	require.NoError(t, err)

	assert.Contains(t, payload, `SUMMARY:Hair-Formation • Cut\; Beard\, Deluxe`)
}

func TestBuild_InvalidStartTime(t *testing.T) {
	appt := sampleAppointment()
	appt.StartTime = "bad"

	_, err := Build(appt, time.Now())
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t,
		"hair-formation-6b9e076c-6f0e-4f3a-9a3e-1f6a2c3d4e5f.ics",
		Filename(sampleAppointment()))
}
