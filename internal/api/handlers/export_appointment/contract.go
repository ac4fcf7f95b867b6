package export_appointment

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentsService interface {
	ExportCalendar(ctx context.Context, id uuid.UUID) (filename string, payload string, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
