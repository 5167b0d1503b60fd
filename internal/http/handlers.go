package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glutivia/internal/domain"
	"glutivia/internal/repository"
)

type productReq struct {
	Name        string                 `json:"name" binding:"required"`
	Category    domain.ProductCategory `json:"category" binding:"required,oneof=pantry snack bakery"`
	Price       float64                `json:"price" binding:"gte=0"`
	Image       string                 `json:"image"`
	Description string                 `json:"description"`
	Weight      string                 `json:"weight"`
	Badge       string                 `json:"badge"`
}

func (r productReq) product(id string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
		Weight:      r.Weight,
		Badge:       r.Badge,
	}
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param input body productReq true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.svc.Products.Create(c, req.product(""))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.svc.Products.GetByID(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body productReq true "Update"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.svc.Products.Update(c, req.product(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.svc.Products.Delete(c, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Name contains"
// @Param category query string false "pantry, snack or bakery"
// @Param min_price query number false "Min price"
// @Param max_price query number false "Max price"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := repository.ProductFilter{
		NameSubstring: c.Query("q"),
		Category:      domain.ProductCategory(c.Query("category")),
	}
	if v := c.Query("min_price"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &x
		}
	}
	if v := c.Query("max_price"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &x
		}
	}
	list, err := s.svc.Products.List(c, f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary List ready meals
// @Tags meals
// @Produce json
// @Security CustomerToken
// @Success 200 {array} domain.Meal
// @Router /meals [get]
func (s *Server) listMeals(c *gin.Context) {
	list, err := s.svc.Meals.List(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get meal by id
// @Tags meals
// @Produce json
// @Security CustomerToken
// @Param id path string true "Meal ID"
// @Success 200 {object} domain.Meal
// @Failure 404 {object} map[string]string
// @Router /meals/{id} [get]
func (s *Server) getMeal(c *gin.Context) {
	m, err := s.svc.Meals.GetByID(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
