package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errors.New("invalid request body")

func (h handler) bindProcessReq(c *gin.Context) (processReq, error) {
	ctx := c.Request.Context()

	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "agent.delivery.http.bindProcessReq.ShouldBindJSON: %v", err)
		return processReq{}, errInvalidBody
	}

	return req, nil
}
