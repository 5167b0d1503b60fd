package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type adminLoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary Admin login
// @Description Sets the admin marker cookie.
// @Tags admin
// @Accept json
// @Param input body adminLoginReq true "Credentials"
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (s *Server) adminLogin(c *gin.Context) {
	var req adminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.svc.Admin.Login(req.Username, req.Password); err != nil {
		writeError(c, err)
		return
	}
	// a stale or foreign cookie only yields a fresh session here
	sess, _ := s.admin.Get(c.Request, adminSessionName)
	sess.Values[adminFlag] = true
	if err := sess.Save(c.Request, c.Writer); err != nil {
		zap.S().Errorw("admin session save failed", "error", err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Admin logout
// @Tags admin
// @Success 204
// @Router /admin/logout [post]
func (s *Server) adminLogout(c *gin.Context) {
	sess, _ := s.admin.Get(c.Request, adminSessionName)
	delete(sess.Values, adminFlag)
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request, c.Writer); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary All orders, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 401 {object} map[string]string
// @Router /admin/orders [get]
func (s *Server) listOrders(c *gin.Context) {
	list, err := s.svc.Admin.Orders(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
