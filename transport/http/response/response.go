package response

import (
	"encoding/json"
	"net/http"

	"intake/shared/constant"
	"intake/shared/failure"
	"intake/shared/logger"
)

// Envelope is the uniform JSON body every endpoint returns. Success carries
// data, failure carries a message.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// WithMessage sends a successful response with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	respond(writer, code, Envelope{Success: code < http.StatusBadRequest, Message: message})
}

// WithJSON sends a successful response containing a JSON payload.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	respond(writer, code, Envelope{Success: true, Data: jsonPayload})
}

// WithError sends a failure response; the status code comes from the error.
func WithError(writer http.ResponseWriter, err error) {
	respond(writer, failure.GetCode(err), Envelope{Success: false, Message: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func respond(writer http.ResponseWriter, code int, payload Envelope) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
