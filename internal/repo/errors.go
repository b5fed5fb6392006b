package repo

import "errors"

// Ошибки журнала заказов.
var (
	// ErrNotFound — запись не найдена в БД.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — заказ с таким ID уже записан.
	ErrAlreadyExists = errors.New("already exists")
)
