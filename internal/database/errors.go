package database

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPhase = errors.New("invalid phase")
	ErrInvalidLimit = errors.New("limit must be positive")
)

type OpError struct {
	Op       string
	Resource string
	ID       int64
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.ID > 0:
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	case e.Key != "":
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Key, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
	}
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapPhaseErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "phase", ID: id, Err: err}
}

func wrapSettingErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", Key: key, Err: err}
}
