package repository

import "errors"

var (
	// ErrOrderInsert is returned when the order row could not be written.
	ErrOrderInsert = errors.New("insert order")
	// ErrLineInsert is returned when an order line could not be written.
	ErrLineInsert = errors.New("insert order line")
	// ErrTotalUpdate is returned when the order total could not be persisted.
	ErrTotalUpdate = errors.New("update order total")
	// ErrNoRowsAffected marks a write that reported success but changed nothing.
	ErrNoRowsAffected = errors.New("no rows affected")
)
