package http

import (
	"github.com/gin-gonic/gin"

	"movi-agent/pkg/response"
)

// @Summary Process a natural-language command
// @Description Classifies the message, resolves the referenced trip or route and either answers directly or returns a pending confirmation token for destructive actions.
// @Tags Agent
// @Accept json
// @Produce json
// @Param body body processReq true "Command"
// @Success 200 {object} processResp
// @Failure 400 {object} response.Resp
// @Router /agent [post]
func (h handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.bindProcessReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out := h.uc.Process(ctx, req.toInput())
	response.OK(c, newProcessResp(out))
}
