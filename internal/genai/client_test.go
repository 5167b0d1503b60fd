package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutivia/internal/domain"
)

func fakeGemini(t *testing.T, handler func(model string, req generateRequest) (int, any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.RawQuery, "the key must not travel in the URL")
		// /models/{model}:generateContent
		path := strings.TrimPrefix(r.URL.Path, "/models/")
		model := strings.TrimSuffix(path, ":generateContent")

		var req generateRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		status, body := handler(model, req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func textResponse(text string) generateResponse {
	return generateResponse{Candidates: []candidate{{Content: content{Role: "model", Parts: []part{{Text: text}}}}}}
}

func TestGenerateRecipe(t *testing.T) {
	recipe := domain.Recipe{
		Title:        "Tajine de poulet",
		Description:  "Un classique",
		Ingredients:  []string{"poulet", "citron"},
		Instructions: []string{"Mijoter"},
		PrepTime:     "45 min",
		Difficulty:   "Medium",
	}
	raw, _ := json.Marshal(recipe)

	var gotModel string
	var gotReq generateRequest
	srv := fakeGemini(t, func(model string, req generateRequest) (int, any) {
		gotModel, gotReq = model, req
		return http.StatusOK, textResponse(string(raw))
	})

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	got, err := c.GenerateRecipe(context.Background(), "chicken, lemon", domain.MealDinner, domain.LangFrench)
	require.NoError(t, err)
	assert.Equal(t, recipe, *got)

	assert.Equal(t, DefaultTextModel, gotModel)
	prompt := gotReq.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "gluten-free dinner recipe using these ingredients: chicken, lemon")
	assert.Contains(t, prompt, "must be in French")
	assert.Equal(t, "application/json", gotReq.GenerationConfig.ResponseMimeType)
	assert.Len(t, gotReq.GenerationConfig.ResponseSchema.Required, 6)
	require.NotNil(t, gotReq.SystemInstruction)
	assert.Contains(t, gotReq.SystemInstruction.Parts[0].Text, "gluten-free chef")
}

func TestGenerateRecipe_Failures(t *testing.T) {
	cases := map[string]func(string, generateRequest) (int, any){
		"api error": func(string, generateRequest) (int, any) {
			var e errorResponse
			e.Error.Code, e.Error.Message = 429, "quota"
			return http.StatusTooManyRequests, e
		},
		"empty text":    func(string, generateRequest) (int, any) { return http.StatusOK, textResponse("") },
		"no candidates": func(string, generateRequest) (int, any) { return http.StatusOK, generateResponse{} },
		"not json":      func(string, generateRequest) (int, any) { return http.StatusOK, textResponse("here is a recipe") },
		"missing title": func(string, generateRequest) (int, any) {
			return http.StatusOK, textResponse(`{"ingredients":["x"],"instructions":["y"]}`)
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := fakeGemini(t, h)
			c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
			_, err := c.GenerateRecipe(context.Background(), "rice", domain.MealLunch, domain.LangEnglish)
			assert.ErrorIs(t, err, ErrGenerationFailed)
		})
	}
}

func TestGenerate_MissingKey(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.GenerateImage(context.Background(), "Salad")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerateImages(t *testing.T) {
	var aspects []string
	srv := fakeGemini(t, func(model string, req generateRequest) (int, any) {
		assert.Equal(t, DefaultImageModel, model)
		aspects = append(aspects, req.GenerationConfig.ImageConfig.AspectRatio)
		return http.StatusOK, generateResponse{Candidates: []candidate{{Content: content{Parts: []part{
			{Text: "here you go"},
			{InlineData: &inlineData{MimeType: "image/png", Data: "iVBORw0KGgo="}},
		}}}}}
	})
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	img, err := c.GenerateImage(context.Background(), "Quinoa Bowl")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", img)

	_, err = c.GenerateProductImage(context.Background(), "Almond Flour")
	require.NoError(t, err)
	assert.Equal(t, []string{"16:9", "1:1"}, aspects)
}

func TestGenerateImage_NoInlineData(t *testing.T) {
	srv := fakeGemini(t, func(string, generateRequest) (int, any) {
		return http.StatusOK, textResponse("I cannot draw")
	})
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	_, err := c.GenerateProductImage(context.Background(), "Bread")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}
