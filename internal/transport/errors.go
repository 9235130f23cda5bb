package transport

import (
	"errors"
	"fmt"
)

// TransportError описывает любую ошибку обмена с API оповещений
type TransportError struct {
	Message string
	Code    string
	Status  int
	Err     error
}

func (e *TransportError) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "transport: " + msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать с ErrBackendDisabled через errors.Is
func (e *TransportError) Is(target error) bool {
	t, ok := target.(*TransportError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Status == t.Status && e.Message == t.Message
}

// ErrBackendDisabled возвращается без сетевого запроса, если бэкенд не настроен
var ErrBackendDisabled = &TransportError{Message: "alerts backend is disabled", Code: "BACKEND_DISABLED"}

// IsNotFound сообщает, что бэкенд не знает такого оповещения
func IsNotFound(err error) bool {
	var terr *TransportError
	return errors.As(err, &terr) && terr.Status == 404
}
