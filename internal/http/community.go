package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glutivia/internal/domain"
)

// public убирает email владельца перед отдачей клиенту
func public(m domain.CommunityMessage) domain.CommunityMessage {
	m.Owner = ""
	return m
}

type postMessageReq struct {
	Text string `json:"text" binding:"required"`
}

// @Summary Community board
// @Tags community
// @Produce json
// @Success 200 {array} domain.CommunityMessage
// @Router /community/messages [get]
func (s *Server) listMessages(c *gin.Context) {
	list, err := s.svc.Community.List(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]domain.CommunityMessage, 0, len(list))
	for _, m := range list {
		out = append(out, public(m))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Post to the community board
// @Tags community
// @Accept json
// @Produce json
// @Security CustomerToken
// @Param input body postMessageReq true "Message"
// @Success 201 {object} domain.CommunityMessage
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /community/messages [post]
func (s *Server) postMessage(c *gin.Context) {
	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	msg, err := s.svc.Community.Post(c, session(c), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, public(*msg))
}

// @Summary Delete own message
// @Tags community
// @Security CustomerToken
// @Param id path string true "Message ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Router /community/messages/{id} [delete]
func (s *Server) deleteMessage(c *gin.Context) {
	if err := s.svc.Community.Delete(c, session(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
