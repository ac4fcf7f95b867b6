package create_appointment

import "errors"

var (
	// ErrServiceTypeNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceTypeNotFound = errors.New("create_appointment: service type not found")

	// ErrClosedDay возвращается при попытке записаться на нерабочий день
	ErrClosedDay = errors.New("create_appointment: shop is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда слот не помещается в рабочее окно
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrSlotConflict возвращается, когда выбранный слот пересекается с существующей
	// записью на момент коммита. Клиент должен запросить слоты заново и выбрать другой
	ErrSlotConflict = errors.New("create_appointment: slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
