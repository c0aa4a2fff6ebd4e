package http

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/hhsxp/sla-dashboard/internal/adapters/primary/http/middleware"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
)

// ErrorResponse is the standard JSON error response format
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ErrorHandler provides centralized error handling with logging
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler with the given logger
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle processes an error and writes the appropriate HTTP response
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	requestID := mw.GetRequestID(r.Context())

	// Check for AppError first (our custom error type)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		h.logError(r, appErr.StatusCode, appErr.Err, requestID)
		WriteJSON(w, appErr.StatusCode, ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		})
		return
	}

	statusCode, response := h.mapDomainError(err)
	h.logError(r, statusCode, err, requestID)
	WriteJSON(w, statusCode, response)
}

// mapDomainError converts domain errors to HTTP status codes and responses
func (h *ErrorHandler) mapDomainError(err error) (int, ErrorResponse) {
	switch {
	// Input errors: the request itself is unusable, not retried automatically
	case errors.Is(err, apperrors.ErrNoSheet):
		return http.StatusBadRequest, ErrorResponse{
			Error: "Planilha não encontrada no arquivo.",
			Code:  "NO_SHEET",
		}
	case errors.Is(err, apperrors.ErrFileRequired):
		return http.StatusBadRequest, ErrorResponse{
			Error: "Arquivo não recebido corretamente.",
			Code:  "FILE_REQUIRED",
		}
	case errors.Is(err, apperrors.ErrEmptyRecords):
		return http.StatusBadRequest, ErrorResponse{
			Error: "Não há registros para exportar.",
			Code:  "EMPTY_RECORDS",
		}
	case errors.Is(err, apperrors.ErrInvalidVersion):
		return http.StatusBadRequest, ErrorResponse{
			Error: "Identificador de versão inválido.",
			Code:  "INVALID_VERSION",
		}

	case errors.Is(err, apperrors.ErrVersionNotFound):
		return http.StatusNotFound, ErrorResponse{
			Error: "Versão não encontrada.",
			Code:  "VERSION_NOT_FOUND",
		}

	case errors.Is(err, apperrors.ErrRateLimited):
		return http.StatusTooManyRequests, ErrorResponse{
			Error: "Too many requests. Please try again later.",
			Code:  "RATE_LIMITED",
		}

	// Processing errors: the client sees a generic failure and retries the upload
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error: "Erro ao processar o arquivo.",
			Code:  "PROCESSING_ERROR",
		}
	}
}

// logError logs the error with appropriate context
func (h *ErrorHandler) logError(r *http.Request, statusCode int, err error, requestID string) {
	logAttrs := []any{
		"request_id", requestID,
		"method", r.Method,
		"path", r.URL.Path,
		"status_code", statusCode,
		"error", err.Error(),
	}

	switch {
	case statusCode >= 500:
		h.logger.Error("server error", logAttrs...)
	case statusCode >= 400:
		h.logger.Warn("client error", logAttrs...)
	default:
		h.logger.Info("request error", logAttrs...)
	}
}
