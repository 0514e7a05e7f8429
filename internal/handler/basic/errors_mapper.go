package basic

import (
	"errors"
	"net/http"

	"github.com/mpetrashin/go-web-fundamentals/internal/service"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrPostNotFound:       http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
