package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glutivia/internal/domain"
)

type recipeReq struct {
	Ingredients string          `json:"ingredients" binding:"required"`
	MealType    domain.MealType `json:"mealType" binding:"required"`
	Language    domain.Language `json:"language"`
}

// imageReq фото по названию рецепта или по id рецепта из подборки
type imageReq struct {
	Title    string `json:"title" binding:"required_without=RecipeID"`
	RecipeID string `json:"recipeId"`
}

type productImageReq struct {
	Name string `json:"name" binding:"required"`
}

type imageResp struct {
	Image string `json:"image"`
}

// generationKey последний запрос считается по сессии, для гостей по адресу
func (s *Server) generationKey(c *gin.Context) string {
	if sess := session(c); sess != nil {
		return "session:" + sess.Token
	}
	return "ip:" + c.ClientIP()
}

// @Summary Generate a gluten-free recipe
// @Description A newer request from the same visitor makes older ones return 409.
// @Tags kitchen
// @Accept json
// @Produce json
// @Param input body recipeReq true "Ingredients, meal type and language"
// @Success 200 {object} service.KitchenResult
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /kitchen/recipes [post]
func (s *Server) generateRecipe(c *gin.Context) {
	var req recipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := s.svc.Kitchen.GenerateRecipe(c, s.generationKey(c), req.Ingredients, req.MealType, req.Language)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Featured recipes
// @Tags kitchen
// @Produce json
// @Success 200 {array} domain.FeaturedRecipe
// @Router /kitchen/featured [get]
func (s *Server) listFeatured(c *gin.Context) {
	list, err := s.svc.Kitchen.Featured(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Generate a dish photo
// @Description Pass either a recipe title or the id of a featured recipe.
// @Tags kitchen
// @Accept json
// @Produce json
// @Param input body imageReq true "Recipe title or featured recipe id"
// @Success 200 {object} imageResp
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /kitchen/images [post]
func (s *Server) generateImage(c *gin.Context) {
	var req imageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	var (
		img string
		err error
	)
	if req.RecipeID != "" {
		img, err = s.svc.Kitchen.GenerateFeaturedImage(c, req.RecipeID)
	} else {
		img, err = s.svc.Kitchen.GenerateImage(c, req.Title)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, imageResp{Image: img})
}

// @Summary Generate a product photo
// @Tags kitchen
// @Accept json
// @Produce json
// @Param input body productImageReq true "Product name"
// @Success 200 {object} imageResp
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /kitchen/product-images [post]
func (s *Server) generateProductImage(c *gin.Context) {
	var req productImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	img, err := s.svc.Kitchen.GenerateProductImage(c, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, imageResp{Image: img})
}
