package httpserver

import (
	"github.com/gin-gonic/gin"

	"movi-agent/pkg/response"
)

// healthCheck reports liveness plus the two facts operators ask about first:
// which backend the agent talks to and whether the LLM classifier is on.
// @Summary Health Check
// @Description Check if the agent is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Agent is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"ok":            true,
		"backendUrl":    srv.backendURL,
		"llmConfigured": srv.llmConfigured,
	})
}
