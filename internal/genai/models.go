package genai

// generateRequest тело запроса generateContent
type generateRequest struct {
	Contents          []content          `json:"contents"`
	GenerationConfig  *generationConfig  `json:"generationConfig,omitempty"`
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type systemInstruction struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType   string       `json:"responseMimeType,omitempty"`
	ResponseSchema     *schema      `json:"responseSchema,omitempty"`
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ImageConfig        *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

// schema подмножество OpenAPI-схемы, которое понимает Gemini
type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func str(desc string) *schema {
	return &schema{Type: "STRING", Description: desc}
}

var recipeSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"title":       str("The name of the recipe."),
		"description": str("A brief, appetizing description of the dish."),
		"ingredients": {
			Type:        "ARRAY",
			Items:       &schema{Type: "STRING"},
			Description: "List of ingredients with quantities.",
		},
		"instructions": {
			Type:        "ARRAY",
			Items:       &schema{Type: "STRING"},
			Description: "Step-by-step cooking instructions.",
		},
		"prepTime":   str("Estimated preparation time (e.g., '25 min')."),
		"difficulty": str("Difficulty level (Easy, Medium, or Hard)."),
	},
	Required: []string{"title", "description", "ingredients", "instructions", "prepTime", "difficulty"},
}
