package errorx

import (
	"errors"
	"fmt"
	"maps"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"gitlab.com/lexdraft/lexdraft-backend/pkg/i18nx"
)

type I18nError struct {
	cause       error
	MessageKey  string
	MessageArgs map[string]any
	Code        Code
}

func (e *I18nError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.MessageKey)
	}

	return fmt.Sprintf("[%s] %s: %s", e.Code, e.MessageKey, e.cause)
}

func (e *I18nError) Unwrap() error {
	return e.cause
}

// Localize renders the message in the localizer's language. Unknown keys fall
// back to Error().
func (e *I18nError) Localize(localizer *i18n.Localizer) string {
	msg := i18nx.Localize(localizer, e.MessageKey, e.MessageArgs, e.Error())
	if e.cause == nil || msg == e.Error() {
		return msg
	}

	return msg + ": " + e.cause.Error()
}

func (e *I18nError) ExitCode() int {
	return ExitCode(e.Code)
}

func (e *I18nError) WithKey(key string) *I18nError {
	e.MessageKey = key
	return e
}

func (e *I18nError) WithArgs(args map[string]any) *I18nError {
	if e.MessageArgs == nil {
		e.MessageArgs = make(map[string]any)
	}

	maps.Copy(e.MessageArgs, args)

	return e
}

func (e *I18nError) WithCause(cause error) *I18nError {
	e.cause = cause
	return e
}

func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}

	var i18nErr *I18nError
	if errors.As(err, &i18nErr) {
		return i18nErr.Code == code
	}

	return false
}

// As returns err as *I18nError, wrapping anything else as an internal error.
func As(err error) *I18nError {
	var i18nErr *I18nError
	if errors.As(err, &i18nErr) {
		return i18nErr
	}

	return NewInternalError().WithCause(err)
}

func NewInvalidRequest() *I18nError {
	return &I18nError{
		MessageKey: i18nx.KeyInvalid,
		Code:       CodeInvalid,
	}
}

func NewValidationFailed() *I18nError {
	return &I18nError{
		MessageKey: i18nx.KeyValidationFailed,
		Code:       CodeValidationFailed,
	}
}

func NewValidationFieldFailed(field string) *I18nError {
	return &I18nError{
		MessageKey:  i18nx.KeyValidationFailedField,
		MessageArgs: map[string]any{i18nx.ArgField: field},
		Code:        CodeValidationFailed,
	}
}

func NewMalformedJSON() *I18nError {
	return &I18nError{
		MessageKey: i18nx.KeyMalformedJSON,
		Code:       CodeMalformedJSON,
	}
}

func NewUnsupportedKind(kind string) *I18nError {
	return &I18nError{
		MessageKey:  i18nx.KeyUnsupportedKind,
		MessageArgs: map[string]any{i18nx.ArgKind: kind},
		Code:        CodeUnsupportedKind,
	}
}

func NewInternalError() *I18nError {
	return &I18nError{
		MessageKey: i18nx.KeyInternalError,
		Code:       CodeInternal,
	}
}
