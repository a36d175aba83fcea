package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// Error kinds reported in the "error" field of a failed response.
const (
	kindValidation        = "validation"
	kindNotFound          = "not_found"
	kindAlreadyExists     = "already_exists"
	kindInvalidTransition = "invalid_transition"
	kindUpstream          = "upstream"
	kindUpstreamTimeout   = "upstream_timeout"
	kindInternal          = "internal"
)

// writeError maps err to a status code and aborts the request with an error body.
// Server side failures are attached to the gin context so the request logger
// records their cause.
func writeError(c *gin.Context, err error) {
	var upstream *domainErrors.UpstreamError
	if errors.As(err, &upstream) && !upstream.Timeout {
		if status, ok := upstream.ClientStatus(); ok {
			writeUpstreamRejection(c, status, upstream.Body)
			return
		}
	}

	status, kind := classify(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		if status == http.StatusInternalServerError {
			message = "internal server error"
		}
	}
	c.AbortWithStatusJSON(status, dto.Error{Error: kind, Message: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusBadRequest, kindValidation
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound, kindNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict, kindAlreadyExists
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		return http.StatusConflict, kindInvalidTransition
	case errors.Is(err, domainErrors.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, kindUpstreamTimeout
	case errors.Is(err, domainErrors.ErrUpstream):
		return http.StatusBadGateway, kindUpstream
	default:
		return http.StatusInternalServerError, kindInternal
	}
}

// writeUpstreamRejection replays a downstream 4xx with its own status.
// JSON bodies are passed through untouched.
func writeUpstreamRejection(c *gin.Context, status int, body string) {
	if json.Valid([]byte(body)) {
		c.Abort()
		c.Data(status, "application/json; charset=utf-8", []byte(body))
		return
	}
	c.AbortWithStatusJSON(status, dto.Error{Error: kindUpstream, Message: body})
}

func validationError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: kindValidation, Message: message})
}
