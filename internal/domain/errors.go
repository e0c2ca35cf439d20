package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownSetting      = errors.New("unknown setting")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrForbidden           = errors.New("forbidden")
	ErrResolverUnavailable = errors.New("authority oracle unavailable")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// InvalidValueError is a constraint violation for a known key. Carries enough
// detail to render a specific message; never conflated with ErrUnknownSetting.
type InvalidValueError struct {
	Key    string
	Detail string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Key, e.Detail)
}

// AuditWriteError marks a degraded success: the settings write committed but
// the audit append did not. Callers must not treat this as a failed mutation.
type AuditWriteError struct {
	Action ActionKind
	Err    error
}

func (e *AuditWriteError) Error() string {
	return fmt.Sprintf("write committed but audit append failed (%s): %v", e.Action, e.Err)
}

func (e *AuditWriteError) Unwrap() error { return e.Err }

// PartialWriteError reports a storage failure partway through a bulk write,
// listing exactly which keys committed before the failure. With the
// transactional bulk path Committed is empty (everything rolled back), but
// per-key callers still get the full picture.
type PartialWriteError struct {
	Committed []string
	FailedKey string
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("bulk write failed at %q (committed: [%s]): %v",
		e.FailedKey, strings.Join(e.Committed, ", "), e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
