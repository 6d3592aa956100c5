package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicatePageID = errors.New("seo tag with this page_id already exists")
)

// Entity names used in OpError.Resource.
const (
	EntityTag      = "seo tag"
	EntityAdvanced = "advanced seo"
	EntityImport   = "import"
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
	case e.Key != "":
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Key, e.Err)
	case e.ID > 0:
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: translate(err)}
}

func wrapKeyErr(resource, op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, Key: key, Err: translate(err)}
}

// translate maps driver errors to package sentinels.
func translate(err error) error {
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) && sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicatePageID
	}
	return err
}
