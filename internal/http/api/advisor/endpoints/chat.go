package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/jyotish/internal/advisor"
	"github.com/Nixie-Tech-LLC/jyotish/internal/http/api"
	"github.com/Nixie-Tech-LLC/jyotish/internal/http/api/advisor/packets"
)

type ChatController struct {
	advisor *advisor.Advisor
}

// ChatModule mounts POST /chat_with_astrologer. A nil advisor answers 503.
func ChatModule(adv *advisor.Advisor) api.Module {
	ctl := &ChatController{advisor: adv}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/chat_with_astrologer", ctl.chat)
	})
}

func (c *ChatController) chat(ctx *gin.Context) (any, *api.APIError) {
	if c.advisor == nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: advisor.UnavailableMessage}
	}

	var request packets.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err)
	}

	summary, err := request.ChartData.Summary()
	if err != nil {
		return nil, api.BadRequest(err)
	}

	answer, err := c.advisor.Ask(ctx.Request.Context(), summary, request.Messages(), request.Question)
	if err != nil {
		return nil, api.FromError(err)
	}
	return packets.ChatResponse{Response: answer}, nil
}
