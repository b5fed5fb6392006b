package store

import "errors"

// ErrMenuNotCached — в хранилище нет снимка меню организации.
var ErrMenuNotCached = errors.New("menu not cached")
