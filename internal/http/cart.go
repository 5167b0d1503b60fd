package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glutivia/internal/domain"
)

type addItemReq struct {
	ID       string          `json:"id" binding:"required"`
	Type     domain.ItemType `json:"type" binding:"required,oneof=product meal"`
	Quantity int64           `json:"quantity" binding:"gte=0,max=999"`
}

// @Summary Current cart
// @Tags cart
// @Produce json
// @Security CustomerToken
// @Success 200 {object} service.CartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	view, err := s.svc.Carts.Get(c, session(c).User.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Add item to cart
// @Description Adding an item already in the cart increases its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Security CustomerToken
// @Param input body addItemReq true "Item"
// @Success 200 {object} service.CartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	view, err := s.svc.Carts.Add(c, session(c).User.Email, req.Type, req.ID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Security CustomerToken
// @Param id path string true "Item ID"
// @Success 200 {object} service.CartView
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	view, err := s.svc.Carts.Remove(c, session(c).User.Email, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Empty the cart
// @Tags cart
// @Security CustomerToken
// @Success 204
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	if err := s.svc.Carts.Clear(c, session(c).User.Email); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
