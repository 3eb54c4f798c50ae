package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeAccessDenied    = "ACCESS_DENIED"
	CodeNotFound        = "NOT_FOUND"
	CodeTeamInUse       = "TEAM_IN_USE"
	CodeBadRequest      = "BAD_REQUEST"
	CodeUnauthenticated = "UNAUTHENTICATED"
)

var (
	// ErrValidation - некорректные данные (например, пустой состав команды)
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}

	// ErrAccessDenied - у вызывающего нет прав на операцию
	ErrAccessDenied = &DomainError{
		Code:    CodeAccessDenied,
		Message: "access denied",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrTeamInUse - команду нельзя удалить, пока на неё ссылаются проекты
	ErrTeamInUse = &DomainError{
		Code:    CodeTeamInUse,
		Message: "team is still assigned to projects",
	}

	// ErrUnauthenticated - не передан идентификатор пользователя
	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "caller identity is required",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_ERROR с описанием причины
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewAccessError создает ошибку ACCESS_DENIED
func NewAccessError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeAccessDenied,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
