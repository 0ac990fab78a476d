package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ServiceError struct {
	Code uint32
	Msg  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError: code=%d, msg=%s", e.Code, e.Msg)
}

var (
	// business error code: [500000, 600000)
	ErrDatasetNotFound = &ServiceError{500000, "dataset not found"}
	ErrLoadDataset     = &ServiceError{500001, "load dataset error"}
	ErrReadCsv         = &ServiceError{500002, "read csv error"}
	ErrWrongDataType   = &ServiceError{500003, "wrong data type"}
	ErrParameter       = &ServiceError{500005, "invalid parameter"}
	ErrColumnNotExist  = &ServiceError{500006, "column not exist"}
	ErrNoFigure        = &ServiceError{500007, "mode has no figure"}
	ErrRender          = &ServiceError{500008, "render error"}
)

// AsServiceError 从错误链中取出ServiceError
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// HttpStatus 业务错误对应的http状态码
func HttpStatus(err error) int {
	se, ok := AsServiceError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch se {
	case ErrParameter, ErrColumnNotExist, ErrNoFigure:
		return http.StatusBadRequest
	case ErrDatasetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
