package config

import "errors"

var (
	// ErrServiceTypeNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceTypeNotFound = errors.New("config.repository: service type not found")

	// ErrScheduleNotFound возвращается, когда строка расписания отсутствует
	ErrScheduleNotFound = errors.New("config.repository: schedule config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("config.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("config.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("config.repository: failed to scan row")
)
