package catalog

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
)

var (
	// ErrNotFound is wrapped by errors about absent keys.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation is wrapped by errors about duplicate keys,
	// dangling references and dependents that block a delete.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrSearchDisabled is wrapped by the error Search returns when
	// the text search capability is off.
	ErrSearchDisabled = errors.New("text search disabled")
)

// NotFoundError creates an error for a key that does not exist.
func NotFoundError(entity string, key any) error {
	msg := "<em>%s</em> <em>%v</em> does not exist"
	vars := []any{entity, key}
	return &gn.Error{
		Code: errcode.StoreNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s %v: %w", entity, key, ErrNotFound),
	}
}

// DuplicateKeyError creates an error for a create with an existing key.
func DuplicateKeyError(entity string, key any) error {
	return ConstraintError(entity, key, "key already exists")
}

// DanglingReferenceError creates an error for a reference to a row
// that does not exist.
func DanglingReferenceError(entity string, key any, target string, ref any) error {
	reason := fmt.Sprintf("referenced %s %v does not exist", target, ref)
	return ConstraintError(entity, key, reason)
}

// DependentsError creates an error for a delete blocked by rows that
// still refer to the deleted one.
func DependentsError(entity string, key any, dependent string, num int64) error {
	reason := fmt.Sprintf("%d %s row(s) depend on it", num, dependent)
	return ConstraintError(entity, key, reason)
}

// ConstraintError creates an error for a write that breaks a schema
// invariant.
func ConstraintError(entity string, key any, reason string) error {
	msg := `Cannot write <em>%s</em> <em>%v</em>: %s`
	vars := []any{entity, key, reason}
	return &gn.Error{
		Code: errcode.StoreConstraintError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s %v: %s: %w",
			entity, key, reason, ErrConstraintViolation),
	}
}

// SearchDisabledError creates an error for a search attempted while
// the capability is switched off.
func SearchDisabledError() error {
	msg := `Text search is disabled

<em>How to fix:</em>
  Set <em>store.text_search: true</em> in config.yaml
  or export <em>PDBDB_STORE_TEXT_SEARCH=true</em>`

	return &gn.Error{
		Code: errcode.StoreSearchDisabledError,
		Msg:  msg,
		Err:  fmt.Errorf("search: %w", ErrSearchDisabled),
	}
}

// IsNotFound reports whether err is caused by an absent key.
func IsNotFound(err error) bool {
	return is(err, errcode.StoreNotFoundError, ErrNotFound)
}

// IsConstraintViolation reports whether err is caused by a broken
// schema invariant.
func IsConstraintViolation(err error) bool {
	return is(err, errcode.StoreConstraintError, ErrConstraintViolation)
}

// IsSearchDisabled reports whether err is caused by a disabled search.
func IsSearchDisabled(err error) bool {
	return is(err, errcode.StoreSearchDisabledError, ErrSearchDisabled)
}

func is(err error, code gn.ErrorCode, target error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, target) {
		return true
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == code || errors.Is(gnErr.Err, target)
	}
	return false
}
