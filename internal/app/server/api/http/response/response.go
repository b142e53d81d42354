// Package response содержит общий конверт ответов API {success, data, message}.
package response

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Output - тело ответа huma в конверте.
type Output[T any] struct {
	Body Envelope[T]
}

func OK[T any](data T) *Output[T] {
	return &Output[T]{Body: Envelope[T]{Success: true, Data: data}}
}

func OKWithMessage[T any](data T, msg string) *Output[T] {
	out := OK(data)
	out.Body.Message = msg
	return out
}

// Error - ошибка в том же конверте, success=false.
type Error struct {
	Status  int      `json:"-"`
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.Status
}

// NewError подменяет huma.NewError, чтобы ошибки валидации и обработчиков
// отдавались в конверте.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if msg == "" && len(details) > 0 {
		msg = strings.Join(details, "; ")
	}
	return &Error{
		Status:  status,
		Message: msg,
		Errors:  details,
	}
}
