package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type askRequest struct {
	Input string `json:"input"`
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	response, err := s.assistant.Ask(c.Request.Context(), req.Input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}
