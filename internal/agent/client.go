package agent

import "cine-agent/internal/llm"

// CompletionClient is the text-completion interface the pipeline depends on.
// Tests substitute deterministic fakes with scripted (including malformed)
// outputs to exercise every parsing branch.
type CompletionClient interface {
	Complete(prompt string) (string, error)
}

// LLMAdapter adapts llm.Service to the agent's CompletionClient interface.
type LLMAdapter struct {
	service *llm.Service
}

func NewLLMAdapter(service *llm.Service) *LLMAdapter {
	return &LLMAdapter{service: service}
}

func (a *LLMAdapter) Complete(prompt string) (string, error) {
	return a.service.Complete(prompt)
}
