package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ---------------------------------------------------------------------------
// User-facing error taxonomy
// ---------------------------------------------------------------------------

// ErrorKind enumerates the closed set of failures reported to collaborators.
type ErrorKind string

const (
	KindNetworkUnavailable   ErrorKind = "NETWORK_UNAVAILABLE"
	KindProvider             ErrorKind = "PROVIDER_ERROR"
	KindParse                ErrorKind = "PARSE_ERROR"
	KindPermissionDenied     ErrorKind = "PERMISSION_DENIED"
	KindStorage              ErrorKind = "STORAGE_ERROR"
	KindNotFound             ErrorKind = "NOT_FOUND"
	KindEmptyEmail           ErrorKind = "EMPTY_EMAIL"
	KindEmptyPassword        ErrorKind = "EMPTY_PASSWORD"
	KindEmptyPasswordConfirm ErrorKind = "EMPTY_PASSWORD_CONFIRM"
	KindEmptyNickname        ErrorKind = "EMPTY_NICKNAME"
	KindInvalidEmail         ErrorKind = "INVALID_EMAIL"
	KindEmailAlreadyUsed     ErrorKind = "EMAIL_ALREADY_USED"
	KindPasswordMismatch     ErrorKind = "PASSWORD_MISMATCH"
	KindWeakPassword         ErrorKind = "WEAK_PASSWORD"
	KindAuthFailed           ErrorKind = "AUTH_FAILED"
	KindUnknown              ErrorKind = "UNKNOWN"
)

func (k ErrorKind) String() string { return string(k) }

// IsInput reports whether the kind describes rejected user input.
func (k ErrorKind) IsInput() bool {
	switch k {
	case KindEmptyEmail, KindEmptyPassword, KindEmptyPasswordConfirm, KindEmptyNickname,
		KindInvalidEmail, KindPasswordMismatch, KindWeakPassword:
		return true
	}
	return false
}

var userMessages = map[ErrorKind]string{
	KindNetworkUnavailable:   "인터넷 연결을 확인해주세요.",
	KindParse:                "AI 응답을 해석하지 못했어요. 잠시 후 다시 시도해주세요.",
	KindPermissionDenied:     "권한이 필요해요. 설정에서 권한을 허용해주세요.",
	KindStorage:              "저장 공간에 접근하지 못했어요.",
	KindNotFound:             "요청한 정보를 찾을 수 없어요.",
	KindEmptyEmail:           "이메일을 입력해주세요.",
	KindEmptyPassword:        "비밀번호를 입력해주세요.",
	KindEmptyPasswordConfirm: "비밀번호 확인을 입력해주세요.",
	KindEmptyNickname:        "닉네임을 입력해주세요.",
	KindInvalidEmail:         "이메일 형식이 올바르지 않아요.",
	KindEmailAlreadyUsed:     "이미 사용 중인 이메일이에요.",
	KindPasswordMismatch:     "비밀번호가 일치하지 않아요.",
	KindWeakPassword:         "비밀번호는 10~15자의 영문과 숫자를 포함해야 해요.",
	KindAuthFailed:           "이메일 또는 비밀번호가 올바르지 않아요.",
	KindUnknown:              "알 수 없는 오류가 발생했어요.",
}

// AppError is a classified failure carrying a stable user-facing message.
// errors.Is matches two AppErrors by Kind only, so the package-level
// values below can be used as match targets.
type AppError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
	Cause      error
}

// Predefined match targets, one per kind.
var (
	ErrNetworkUnavailable   = &AppError{Kind: KindNetworkUnavailable}
	ErrProvider             = &AppError{Kind: KindProvider}
	ErrParse                = &AppError{Kind: KindParse}
	ErrPermissionDenied     = &AppError{Kind: KindPermissionDenied}
	ErrStorage              = &AppError{Kind: KindStorage}
	ErrEntityNotFound       = &AppError{Kind: KindNotFound}
	ErrEmptyEmail           = &AppError{Kind: KindEmptyEmail}
	ErrEmptyPassword        = &AppError{Kind: KindEmptyPassword}
	ErrEmptyPasswordConfirm = &AppError{Kind: KindEmptyPasswordConfirm}
	ErrEmptyNickname        = &AppError{Kind: KindEmptyNickname}
	ErrInvalidEmail         = &AppError{Kind: KindInvalidEmail}
	ErrEmailAlreadyUsed     = &AppError{Kind: KindEmailAlreadyUsed}
	ErrPasswordMismatch     = &AppError{Kind: KindPasswordMismatch}
	ErrWeakPassword         = &AppError{Kind: KindWeakPassword}
	ErrAuthFailed           = &AppError{Kind: KindAuthFailed}
	ErrUnknown              = &AppError{Kind: KindUnknown}
)

// NewProviderError reports a non-2xx answer from the analysis provider.
func NewProviderError(statusCode int) *AppError {
	return &AppError{Kind: KindProvider, StatusCode: statusCode}
}

// NewParseError reports a malformed or schema-violating provider response.
func NewParseError(cause error) *AppError {
	return &AppError{Kind: KindParse, Cause: cause}
}

// NewStorageError wraps a storage failure surfaced by an outer collaborator.
func NewStorageError(cause error) *AppError {
	return &AppError{Kind: KindStorage, Cause: cause}
}

// NewUnknownError wraps an unclassified failure.
func NewUnknownError(detail string, cause error) *AppError {
	return &AppError{Kind: KindUnknown, Detail: detail, Cause: cause}
}

func (e *AppError) Error() string {
	switch {
	case e.Kind == KindProvider:
		return fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return string(e.Kind)
}

// Message returns the text shown to the end user.
func (e *AppError) Message() string {
	if e.Kind == KindProvider {
		return fmt.Sprintf("AI 서버 오류가 발생했어요. (code=%d)", e.StatusCode)
	}
	if msg, ok := userMessages[e.Kind]; ok {
		return msg
	}
	return userMessages[KindUnknown]
}

// Is matches any AppError of the same kind.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}

// Unwrap exposes the layer-wide sentinel for the kind and the cause, if any.
func (e *AppError) Unwrap() []error {
	var errs []error
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func (e *AppError) sentinel() error {
	switch {
	case e.Kind.IsInput():
		return ErrValidation
	case e.Kind == KindEmailAlreadyUsed:
		return ErrAlreadyExists
	case e.Kind == KindAuthFailed:
		return ErrUnauthorized
	case e.Kind == KindNotFound:
		return ErrNotFound
	case e.Kind == KindPermissionDenied:
		return ErrForbidden
	}
	return nil
}

// Classify converts any error into the closed taxonomy. A nil error yields nil.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return &AppError{Kind: KindNotFound, Cause: err}
	case errors.Is(err, ErrUnauthorized):
		return &AppError{Kind: KindAuthFailed, Cause: err}
	case errors.Is(err, ErrForbidden):
		return &AppError{Kind: KindPermissionDenied, Cause: err}
	}

	return NewUnknownError(err.Error(), err)
}
