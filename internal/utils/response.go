package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

func HTTPStatusToCode(status int, errs ...error) string {
	if len(errs) > 0 && errs[0] != nil {
		err := errs[0]
		switch {
		case errors.Is(err, ErrAlreadyExists):
			return "ALREADY_EXISTS"
		case errors.Is(err, ErrInvalidStatus):
			return "INVALID_STATUS"
		}
	}
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	default:
		return "INTERNAL"
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := ErrorResponse{Error: ErrorDetails{Code: code, Message: message}}
	return json.NewEncoder(w).Encode(resp)
}

func WriteServiceError(w http.ResponseWriter, err error) int {
	status := http.StatusInternalServerError
	message := ErrInternal.Error()
	switch {
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrInvalidStatus):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrUnauthorized):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrCourseNotFound),
		errors.Is(err, ErrPRNotFound), errors.Is(err, ErrNotificationNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, ErrAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	}
	_ = WriteError(w, status, HTTPStatusToCode(status, err), message)
	return status
}
