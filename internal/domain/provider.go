package domain

import "time"

// Provider is a configured LLM endpoint used by the AI-assist pathway.
type Provider struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // openrouter, ollama
	Name      string    `json:"name"`
	BaseURL   string    `json:"baseUrl"`
	Model     string    `json:"model"`
	APIKey    string    `json:"apiKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Template is a prompt template override; built-ins apply when absent.
type Template struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // translate_copy
	Role      string    `json:"role"` // system | user
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updatedAt"`
}
