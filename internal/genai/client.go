// Package genai клиент генеративной модели Gemini: рецепты и изображения.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"glutivia/internal/domain"
)

const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTextModel  = "gemini-3-flash-preview"
	DefaultImageModel = "gemini-2.5-flash-image"

	systemPrompt = "You are a world-class gluten-free chef and nutritionist. " +
		"You specialize in creating safe, delicious, and culturally relevant recipes. " +
		"You provide clear, step-by-step instructions and estimate prep time and difficulty accurately."
)

// ErrGenerationFailed любая ошибка генерации: сеть, ответ API, разбор результата
var ErrGenerationFailed = errors.New("generation failed")

// Config параметры клиента
type Config struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
}

// Client обращается к нативному REST API Gemini
type Client struct {
	cfg    Config
	http   *http.Client
	tracer trace.Tracer
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tracer: otel.Tracer("glutivia/genai"),
	}
}

// GenerateRecipe запрашивает безглютеновый рецепт в структурированном виде
func (c *Client) GenerateRecipe(ctx context.Context, ingredients string, mealType domain.MealType, lang domain.Language) (*domain.Recipe, error) {
	ctx, span := c.tracer.Start(ctx, "genai.generate_recipe")
	defer span.End()
	span.SetAttributes(
		attribute.String("genai.meal_type", string(mealType)),
		attribute.String("genai.language", string(lang)),
	)

	prompt := fmt.Sprintf("Create a professional gluten-free %s recipe using these ingredients: %s. "+
		"The response must be in %s. Ensure all ingredients and steps are strictly gluten-free.",
		mealType, ingredients, lang.Name())

	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   recipeSchema,
		},
		SystemInstruction: &systemInstruction{Parts: []part{{Text: systemPrompt}}},
	}

	resp, err := c.generate(ctx, c.cfg.TextModel, req)
	if err != nil {
		return nil, fail(span, err)
	}

	var text strings.Builder
	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fail(span, errors.New("no response text"))
	}

	var recipe domain.Recipe
	if err := json.Unmarshal([]byte(text.String()), &recipe); err != nil {
		zap.S().Errorw("gemini recipe parse error", "error", err, "phase", "response_parse")
		return nil, fail(span, fmt.Errorf("parse recipe: %w", err))
	}
	if recipe.Title == "" || len(recipe.Ingredients) == 0 || len(recipe.Instructions) == 0 {
		return nil, fail(span, errors.New("incomplete recipe structure"))
	}
	return &recipe, nil
}

// GenerateImage фотография блюда 16:9
func (c *Client) GenerateImage(ctx context.Context, title string) (string, error) {
	prompt := fmt.Sprintf("A professional, high-end food photography shot of %s. "+
		"The dish is plated beautifully on a rustic table with natural lighting. "+
		"Gourmet presentation, vibrant colors, shallow depth of field, 8k resolution, appetizing and fresh.", title)
	return c.image(ctx, "genai.generate_image", prompt, "16:9")
}

// GenerateProductImage студийное фото товара 1:1
func (c *Client) GenerateProductImage(ctx context.Context, name string) (string, error) {
	prompt := fmt.Sprintf("A professional commercial product photograph of %s. "+
		"Clean studio lighting, minimalist background, premium packaging or fresh presentation. "+
		"High-end commercial quality, sharp focus, vibrant and enticing for a luxury food marketplace.", name)
	return c.image(ctx, "genai.generate_product_image", prompt, "1:1")
}

func (c *Client) image(ctx context.Context, spanName, prompt, aspect string) (string, error) {
	ctx, span := c.tracer.Start(ctx, spanName)
	defer span.End()
	span.SetAttributes(attribute.String("genai.aspect_ratio", aspect))

	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        &imageConfig{AspectRatio: aspect},
		},
	}
	resp, err := c.generate(ctx, c.cfg.ImageModel, req)
	if err != nil {
		return "", fail(span, err)
	}
	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return "data:image/png;base64," + p.InlineData.Data, nil
			}
		}
	}
	return "", fail(span, errors.New("no image was generated"))
}

// generate выполняет один запрос generateContent без повторов
func (c *Client) generate(ctx context.Context, model string, body generateRequest) (*generateResponse, error) {
	if c.cfg.APIKey == "" {
		zap.S().Errorw("gemini request failed", "error", "api_key_missing", "phase", "request_preparation")
		return nil, errors.New("gemini API key not configured")
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// the request URL ends up on client spans
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		zap.S().Errorw("gemini request failed", "model", model, "error", err, "phase", "request_execution")
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		zap.S().Errorw("gemini request failed", "model", model, "error", err, "phase", "response_read")
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		zap.S().Errorw("gemini request failed", "model", model, "status_code", resp.StatusCode, "phase", "api_response")
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("gemini API error %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		zap.S().Errorw("gemini request failed", "model", model, "error", err, "phase", "response_parse")
		return nil, fmt.Errorf("parse response: %w", err)
	}
	zap.S().Debugw("gemini response", "model", model, "candidates", len(out.Candidates), "elapsed", time.Since(start))
	return &out, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
}
