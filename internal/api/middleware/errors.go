package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrInvalidParam  = errors.New("invalid path parameter")
	ErrInputTooLarge = errors.New("input too large")
)

type ErrorResponse struct {
	Error     string `json:"error" description:"Error message"`
	Code      int    `json:"code" description:"HTTP status code"`
	RequestID string `json:"request_id,omitempty" description:"Request the error belongs to"`
}

func HandleError(resp *restful.Response, err error, status int) {
	HandleRequestError(resp, err, status, "")
}

// HandleRequestError writes err as an ErrorResponse tagged with requestID.
func HandleRequestError(resp *restful.Response, err error, status int, requestID string) {
	body := ErrorResponse{
		Error:     err.Error(),
		Code:      status,
		RequestID: requestID,
	}

	if writeErr := resp.WriteHeaderAndEntity(status, body); writeErr != nil {
		log.Error().Err(writeErr).Int("status", status).Msg("Failed to write error response")
	}
}
