package engine

import "errors"

var (
	// ErrWrongPhase rejects week advancement during club setup.
	ErrWrongPhase = errors.New("the season cannot advance until setup is finished")
	// ErrInsufficientHours rejects a task costing more than the week has left.
	ErrInsufficientHours = errors.New("not enough hours left this week")
	// ErrUnknownTask rejects a task id that is not on this week's list.
	ErrUnknownTask = errors.New("no such task this week")
	// ErrTaskCommitted rejects double-committing the same task.
	ErrTaskCommitted = errors.New("task already has hours committed")
	// ErrInvalidInput rejects bad setup values before they reach the core.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientFunds rejects spending the club cannot cover.
	ErrInsufficientFunds = errors.New("the club cannot afford that")
)
