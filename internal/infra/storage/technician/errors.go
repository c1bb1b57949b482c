package technician

import "errors"

var (
	// ErrTechnicianNotFound возвращается, когда мастер не найден
	ErrTechnicianNotFound = errors.New("technician.repository: technician not found")

	// ErrExceptionNotFound возвращается, когда исключение по дате не найдено
	ErrExceptionNotFound = errors.New("technician.repository: date exception not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("technician.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("technician.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("technician.repository: failed to scan row")

	// ErrEmptyUpdate возвращается, когда в частичном обновлении нет ни одного поля
	ErrEmptyUpdate = errors.New("technician.repository: no fields to update")
)
