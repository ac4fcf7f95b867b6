package config

import "errors"

var (
	// ErrServiceTypeNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceTypeNotFound = errors.New("service type not found")

	// ErrInvalidServiceType возвращается при некорректных данных услуги
	// (пустое имя, неположительная длительность, отрицательная цена)
	ErrInvalidServiceType = errors.New("invalid service type")

	// ErrInvalidSchedule возвращается при некорректных данных расписания
	// (день недели вне 0-6, время не в формате HH:MM)
	// Примечание: openTime >= closeTime НЕ считается ошибкой - такая
	// конфигурация просто не даёт свободных слотов
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("config service: internal error")
)
