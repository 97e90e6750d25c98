package domain

import "time"

type Job struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`   // translate_language, translate_fields
	Status     string    `json:"status"` // queued, running, done, failed, canceled
	ProviderID string    `json:"providerId"`
	Progress   int       `json:"progress"`
	Total      int       `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type JobItem struct {
	ID           string    `json:"id"`
	JobID        string    `json:"jobId"`
	FieldID      string    `json:"fieldId"`
	LanguageCode string    `json:"languageCode"`
	VariantID    string    `json:"variantId"`
	Status       string    `json:"status"`
	Error        string    `json:"error"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type JobLog struct {
	ID      string    `json:"id"`
	JobID   string    `json:"jobId"`
	Time    time.Time `json:"ts"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}
