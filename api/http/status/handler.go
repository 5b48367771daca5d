package status

import (
	"net/http"

	"github.com/deskrelay/bot-telegram/service/tickets"
	"github.com/gin-gonic/gin"
)

// Handler serves the hosting platform liveness probe and reports the
// open ticket count.
type Handler struct {
	stor tickets.Storage
}

func NewHandler(stor tickets.Storage) *Handler {
	return &Handler{
		stor: stor,
	}
}

func (h *Handler) Get(ctx *gin.Context) {
	count, err := h.stor.Count(ctx.Request.Context())
	switch err {
	case nil:
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"ticketsOpen": count,
		})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status": "DOWN",
		})
	}
}
