package storage

import (
	"errors"
	"fmt"
)

//ErrIsDirectory is wrapped when the hosts file path names a directory
var ErrIsDirectory = errors.New("path is a directory")

type (
	//LoadError is returned when the hosts file cannot be read
	LoadError struct {
		Path string
		Err  error
	}

	//PersistError is returned when the hosts file or its backup cannot be written
	PersistError struct {
		Op   string
		Path string
		Err  error
	}
)

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot read hosts file %s: %s", e.Path, e.Err.Error())
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *PersistError) Error() string {
	return fmt.Sprintf("cannot %s %s: %s", e.Op, e.Path, e.Err.Error())
}

func (e *PersistError) Unwrap() error { return e.Err }
