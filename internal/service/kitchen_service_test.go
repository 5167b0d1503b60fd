package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutivia/internal/domain"
	"glutivia/internal/genai"
	"glutivia/internal/repository"
)

type fakeGenerator struct {
	recipeErr error
	imageErr  error
	// hook runs inside GenerateRecipe, before it returns
	hook func()
}

func (f *fakeGenerator) GenerateRecipe(_ context.Context, ingredients string, mt domain.MealType, lang domain.Language) (*domain.Recipe, error) {
	if f.hook != nil {
		f.hook()
	}
	if f.recipeErr != nil {
		return nil, f.recipeErr
	}
	return &domain.Recipe{Title: fmt.Sprintf("%s %s (%s)", mt, ingredients, lang), Ingredients: []string{ingredients}, Instructions: []string{"cook"}}, nil
}

func (f *fakeGenerator) GenerateImage(_ context.Context, title string) (string, error) {
	if f.imageErr != nil {
		return "", f.imageErr
	}
	return "data:image/png;base64," + title, nil
}

func (f *fakeGenerator) GenerateProductImage(_ context.Context, name string) (string, error) {
	return "data:image/png;base64," + name, nil
}

func newKitchen(gen RecipeGenerator) *KitchenService {
	return NewKitchenService(gen, repository.NewSeededCatalog().Recipes())
}

func TestKitchen_RecipeWithImage(t *testing.T) {
	svc := newKitchen(&fakeGenerator{})
	res, err := svc.GenerateRecipe(context.Background(), "s1", " rice ", domain.MealLunch, "")
	require.NoError(t, err)
	assert.Equal(t, "lunch rice (en)", res.Recipe.Title)
	assert.Equal(t, "data:image/png;base64,lunch rice (en)", res.Image)
}

func TestKitchen_ImageFailureKeepsRecipe(t *testing.T) {
	svc := newKitchen(&fakeGenerator{imageErr: genai.ErrGenerationFailed})
	res, err := svc.GenerateRecipe(context.Background(), "s1", "eggs", domain.MealBreakfast, domain.LangArabic)
	require.NoError(t, err)
	assert.Empty(t, res.Image)
	assert.NotEmpty(t, res.ImageError)
}

func TestKitchen_Validation(t *testing.T) {
	svc := newKitchen(&fakeGenerator{})
	ctx := context.Background()
	_, err := svc.GenerateRecipe(ctx, "s1", "  ", domain.MealLunch, domain.LangEnglish)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.GenerateRecipe(ctx, "s1", "rice", "brunch", domain.LangEnglish)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.GenerateRecipe(ctx, "s1", "rice", domain.MealLunch, "de")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.GenerateProductImage(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestKitchen_FailurePropagates(t *testing.T) {
	svc := newKitchen(&fakeGenerator{recipeErr: fmt.Errorf("%w: boom", genai.ErrGenerationFailed)})
	_, err := svc.GenerateRecipe(context.Background(), "s1", "rice", domain.MealDinner, domain.LangFrench)
	assert.True(t, errors.Is(err, genai.ErrGenerationFailed))
}

func TestKitchen_SupersededRequestIsDiscarded(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newKitchen(gen)
	ctx := context.Background()

	// a second request from the same session starts while the first is in flight
	gen.hook = func() {
		gen.hook = nil
		_, err := svc.GenerateRecipe(ctx, "s1", "quinoa", domain.MealDinner, domain.LangEnglish)
		require.NoError(t, err)
	}
	_, err := svc.GenerateRecipe(ctx, "s1", "rice", domain.MealLunch, domain.LangEnglish)
	assert.ErrorIs(t, err, ErrStaleGeneration)

	// other sessions are unaffected
	gen.hook = func() {
		gen.hook = nil
		_, _ = svc.GenerateRecipe(ctx, "s2", "quinoa", domain.MealDinner, domain.LangEnglish)
	}
	_, err = svc.GenerateRecipe(ctx, "s1", "rice", domain.MealLunch, domain.LangEnglish)
	assert.NoError(t, err)

	assert.Zero(t, svc.pending(), "finished generations must not be remembered")
}

func TestKitchen_CountersArePruned(t *testing.T) {
	svc := newKitchen(&fakeGenerator{})
	ctx := context.Background()
	for i := 0; i < 50; i++ {
		_, err := svc.GenerateRecipe(ctx, fmt.Sprintf("ip:10.0.0.%d", i), "rice", domain.MealLunch, domain.LangEnglish)
		require.NoError(t, err)
	}
	assert.Zero(t, svc.pending())

	failing := newKitchen(&fakeGenerator{recipeErr: genai.ErrGenerationFailed})
	_, err := failing.GenerateRecipe(ctx, "s1", "rice", domain.MealLunch, domain.LangEnglish)
	require.Error(t, err)
	assert.Zero(t, failing.pending(), "failed generations are forgotten too")
}

func TestKitchen_FeaturedRecipes(t *testing.T) {
	svc := newKitchen(&fakeGenerator{})
	ctx := context.Background()

	list, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, list, 12)
	assert.Equal(t, "Gluten-Free Msemen", list[0].Title)

	img, err := svc.GenerateFeaturedImage(ctx, "r10")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,Seafood Bastilla", img)

	_, err = svc.GenerateFeaturedImage(ctx, "r99")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.GenerateFeaturedImage(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
