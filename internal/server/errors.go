package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-list/internal/errors"
)

// statusForError maps an error category to its HTTP status code.
func statusForError(err error) int {
	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation:
			return http.StatusBadRequest
		case errors.ErrorTypeNotFound:
			return http.StatusNotFound
		case errors.ErrorTypeUnavailable:
			return http.StatusServiceUnavailable
		case errors.ErrorTypeDatabase, errors.ErrorTypeUpstream:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// respondError converts any failure into a JSON error body. User errors
// pass through quietly; system errors are logged with their cause.
func (s *Server) respondError(c *gin.Context, err error) {
	if errors.ShouldLogError(err) {
		s.logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.AbortWithStatusJSON(statusForError(err), gin.H{"error": errors.GetUserMessage(err)})
}

// respondBadRequest reports a malformed request before it reaches a service.
func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}
