package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"glutivia/internal/domain"
	"glutivia/internal/repository"
)

// RecipeGenerator генеративная модель рецептов и изображений
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, ingredients string, mealType domain.MealType, lang domain.Language) (*domain.Recipe, error)
	GenerateImage(ctx context.Context, title string) (string, error)
	GenerateProductImage(ctx context.Context, name string) (string, error)
}

// KitchenResult рецепт и, если удалось, его фото
type KitchenResult struct {
	Recipe     domain.Recipe `json:"recipe"`
	Image      string        `json:"image,omitempty"`
	ImageError string        `json:"imageError,omitempty"`
}

// KitchenService AI-кухня. Для каждой сессии учитывается только последний запрос.
type KitchenService struct {
	gen     RecipeGenerator
	recipes repository.FeaturedRecipeRepository

	mu  sync.Mutex
	seq uint64
	// gens holds the newest in-flight generation per visitor
	gens map[string]uint64
}

func NewKitchenService(gen RecipeGenerator, recipes repository.FeaturedRecipeRepository) *KitchenService {
	return &KitchenService{gen: gen, recipes: recipes, gens: make(map[string]uint64)}
}

func (s *KitchenService) begin(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.gens[key] = s.seq
	return s.seq
}

func (s *KitchenService) latest(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[key] == gen
}

// finish forgets the visitor once its newest generation is done
func (s *KitchenService) finish(key string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[key] == gen {
		delete(s.gens, key)
	}
}

// pending число посетителей с незавершённой генерацией
func (s *KitchenService) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.gens)
}

// GenerateRecipe создаёт рецепт, затем фото к нему. Ошибка фото не отменяет рецепт.
func (s *KitchenService) GenerateRecipe(ctx context.Context, key, ingredients string, mealType domain.MealType, lang domain.Language) (*KitchenResult, error) {
	ingredients = strings.TrimSpace(ingredients)
	if lang == "" {
		lang = domain.LangEnglish
	}
	if ingredients == "" || !mealType.Valid() || !lang.Valid() {
		return nil, ErrInvalidInput
	}

	gen := s.begin(key)
	defer s.finish(key, gen)
	recipe, err := s.gen.GenerateRecipe(ctx, ingredients, mealType, lang)
	if !s.latest(key, gen) {
		return nil, ErrStaleGeneration
	}
	if err != nil {
		return nil, err
	}

	res := &KitchenResult{Recipe: *recipe}
	img, err := s.gen.GenerateImage(ctx, recipe.Title)
	if !s.latest(key, gen) {
		return nil, ErrStaleGeneration
	}
	if err != nil {
		zap.S().Warnw("recipe image failed", "title", recipe.Title, "error", err)
		res.ImageError = err.Error()
		return res, nil
	}
	res.Image = img
	return res, nil
}

// GenerateImage фото для уже показанного рецепта
func (s *KitchenService) GenerateImage(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrInvalidInput
	}
	return s.gen.GenerateImage(ctx, title)
}

// GenerateProductImage фото товара для карточки рынка
func (s *KitchenService) GenerateProductImage(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidInput
	}
	return s.gen.GenerateProductImage(ctx, name)
}

// Featured подборка рецептов
func (s *KitchenService) Featured(ctx context.Context) ([]domain.FeaturedRecipe, error) {
	return s.recipes.List(ctx)
}

// GenerateFeaturedImage новое фото для рецепта из подборки по его названию
func (s *KitchenService) GenerateFeaturedImage(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrInvalidInput
	}
	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.gen.GenerateImage(ctx, rec.Title)
}
