package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGroq   Provider = "groq"
	ProviderNone   Provider = "none"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	groqEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
	ollamaEndpoint = "http://localhost:11434/api/generate"
)

// Service is the text-completion backend for the agent. It sends a single
// prompt and returns the generated text; it makes no guarantee that the
// output is well-formed JSON, so callers must parse defensively.
type Service struct {
	provider Provider
	apiKey   string
	model    string
	timeout  time.Duration
}

func NewService(provider, apiKey, model string) *Service {
	return &Service{
		provider: Provider(provider),
		apiKey:   apiKey,
		model:    model,
		timeout:  180 * time.Second, // local Ollama models can be slow on long candidate prompts
	}
}

// Complete sends a prompt to the configured provider and returns the raw response text.
func (s *Service) Complete(prompt string) (string, error) {
	switch s.provider {
	case ProviderOpenAI:
		return s.callChat(openAIEndpoint, prompt)
	case ProviderGroq:
		return s.callChat(groqEndpoint, prompt)
	case ProviderOllama:
		return s.callOllama(prompt)
	case ProviderNone:
		return "", fmt.Errorf("LLM provider not configured")
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
}

// callChat handles the OpenAI-compatible chat completion APIs (OpenAI and Groq).
func (s *Service) callChat(endpoint, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a movie recommendation assistant. Follow the output format instructions exactly.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.2,
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	elapsed := time.Since(startTime)

	log.Printf("[LLM] Chat completion request took: %v", elapsed)

	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("chat completion error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from completion API")
	}

	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(prompt string) (string, error) {
	log.Printf("[LLM] Calling Ollama with model: %s", s.model)
	log.Printf("[LLM] Prompt length: %d characters", len(prompt))

	reqBody := map[string]interface{}{
		"model":  s.model,
		"prompt": prompt,
		"stream": false,
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST", ollamaEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	elapsed := time.Since(startTime)

	log.Printf("[LLM] Ollama request took: %v", elapsed)

	if err != nil {
		return "", fmt.Errorf("Ollama connection failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("Ollama error: %s", result.Error)
	}

	log.Printf("[LLM] Ollama response length: %d characters", len(result.Response))

	return result.Response, nil
}
