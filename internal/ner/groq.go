package ner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const groqURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqRecognizer extracts entities with an LLM over the Groq API. Heavier
// and networked, but much better at company names than the local model.
type GroqRecognizer struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGroqRecognizer(apiKey string) *GroqRecognizer {
	return &GroqRecognizer{
		apiKey:  apiKey,
		model:   "llama-3.3-70b-versatile", // Groq's fast Llama-3 model
		baseURL: groqURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

func (c *GroqRecognizer) Name() string {
	return "groq"
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type groqEntity struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

const systemPrompt = `You are a named-entity recognition engine. ` +
	`Extract named entities from the user's text and respond ONLY with a JSON array ` +
	`of objects of the form {"text": "...", "type": "..."} where type is one of ` +
	`ORG, PERSON, GPE, OTHER. No prose, no markdown.`

func (c *GroqRecognizer) Recognize(text string) ([]Entity, error) {
	reqBody := groqRequest{
		Model: c.model,
		Messages: []groqMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0.0, // deterministic extraction
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal groq request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("groq API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var groqResp groqResponse
	if err := json.Unmarshal(bodyBytes, &groqResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if groqResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", groqResp.Error.Message)
	}

	if len(groqResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from groq API")
	}

	// Clean the response from potential markdown wrappers
	rawContent := groqResp.Choices[0].Message.Content
	cleanedJSON := cleanMarkdownJSON(rawContent)

	var raw []groqEntity
	if err := json.Unmarshal([]byte(cleanedJSON), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entities (raw length: %d): %w", len(cleanedJSON), err)
	}

	entities := make([]Entity, 0, len(raw))
	for _, e := range raw {
		entities = append(entities, Entity{Text: e.Text, Type: normalizeType(e.Type)})
	}
	return entities, nil
}

func normalizeType(t string) EntityType {
	switch strings.ToUpper(strings.TrimSpace(t)) {
	case "ORG", "ORGANIZATION", "COMPANY":
		return Organization
	case "PERSON", "PER":
		return Person
	case "GPE", "LOC", "LOCATION":
		return Location
	default:
		return Other
	}
}

// cleanMarkdownJSON removes backticks and "json" prefix if the model tries to be helpful
func cleanMarkdownJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
