// In file: cmd/agent/handler.go
package main

import (
	"net/http"
	"strings"

	"github.com/dileep-u-k/taskmaster-agent/internal/agent"
	"github.com/dileep-u-k/taskmaster-agent/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// genericInternalError is the only message a caller ever sees for an
// unanticipated failure; internal detail stays in the logs.
const genericInternalError = "Internal Server Error: An unexpected error occurred."

// UserRequest is the inbound body for POST /agent.
type UserRequest struct {
	Query string `json:"query"`
}

// AgentHandler owns the HTTP boundary around the orchestration core.
type AgentHandler struct {
	agent *agent.Agent
	log   *logging.Logger
}

func NewAgentHandler(a *agent.Agent, log *logging.Logger) *AgentHandler {
	return &AgentHandler{
		agent: a,
		log:   log.Component("http"),
	}
}

// setupRouter wires the gin engine. The custom recovery middleware is the
// 500 path of the error taxonomy: any panic that escapes the core surfaces
// as a generic message with no internal detail leaked.
func setupRouter(h *AgentHandler) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		h.log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("request panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": genericInternalError})
	}))
	engine.POST("/agent", h.HandleAgentQuery)
	engine.GET("/health", h.HandleHealth)
	return engine
}

// HandleAgentQuery validates the inbound query and runs the orchestrator.
// Validation happens before the core: an empty or whitespace-only query is a
// 400 and triggers no LLM or tool call at all.
func (h *AgentHandler) HandleAgentQuery(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty."})
		return
	}

	requestID := uuid.NewString()
	reqLog := h.log.With("request_id", requestID)
	reqLog.Info().Str("query", req.Query).Msg("agent run started")

	result := h.agent.Run(c.Request.Context(), req.Query)
	result.DebugInfo.RequestID = requestID

	reqLog.Info().Str("tool_called", result.DebugInfo.ToolCalled).Msg("agent run finished")
	c.JSON(http.StatusOK, result)
}

// HandleHealth reports liveness plus build info.
func (h *AgentHandler) HandleHealth(c *gin.Context) {
	info := GetBuildInfo()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.GitCommit,
	})
}
