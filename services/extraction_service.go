package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

// ExtractionService turns a free-text meal description into structured
// ingredient guesses by calling a hosted language model. It is the opaque
// collaborator in front of the estimation engine: the engine itself never
// parses natural language, it only consumes the []Ingredient this client
// returns.
type ExtractionService struct {
	client *http.Client
	token  string
	model  string
}

func NewExtractionService() *ExtractionService {
	model := os.Getenv("EXTRACTION_MODEL")
	if model == "" {
		model = "google/flan-t5-small"
	}
	return &ExtractionService{
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  model,
	}
}

const extractionPrompt = `Extract the individual foods from this meal description.

Respond ONLY with valid JSON in this exact format:
{"ingredients":[{"name":"food name","quantity":150,"unit":"g","preparation":"grilled"}]}

Use grams when the text gives a weight, otherwise household units
(cup, tbsp, tsp, slice, small, medium, large, piece). If no portion is
given, estimate a typical one. Omit "preparation" when unknown.

Meal description: %q`

// ExtractIngredients asks the model for structured guesses for a meal
// description. Unlike the engine, this call can genuinely fail (network,
// quota, malformed model output) and surfaces errors to the caller.
func (s *ExtractionService) ExtractIngredients(description string) ([]models.Ingredient, error) {
	if s.token == "" {
		return nil, fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("empty meal description")
	}

	body := map[string]any{
		"inputs": fmt.Sprintf(extractionPrompt, description),
		"parameters": map[string]any{
			"max_new_tokens": 256,
			"temperature":    0.1,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", s.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		return nil, fmt.Errorf("decode hf response error: %w", err)
	}
	if len(hfOut) == 0 {
		return nil, fmt.Errorf("empty extraction output from hf")
	}

	return ParseIngredientJSON(hfOut[0].GeneratedText)
}

// ParseIngredientJSON decodes the model's reply into ingredient guesses.
// Models wrap the JSON in prose often enough that we cut from the first
// '{' to the last '}' before unmarshalling.
func ParseIngredientJSON(raw string) ([]models.Ingredient, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in extraction output")
	}

	var parsed struct {
		Ingredients []models.Ingredient `json:"ingredients"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("invalid extraction JSON: %w", err)
	}
	if len(parsed.Ingredients) == 0 {
		return nil, fmt.Errorf("extraction returned no ingredients")
	}
	return parsed.Ingredients, nil
}
