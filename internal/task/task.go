// Package task holds the task model, title validation and the persisted,
// ordered task store.
package task

import "strings"

// DefaultDateLayout formats CreatedAt like "18/10/2026, 09:41:07".
const DefaultDateLayout = "02/01/2006, 15:04:05"

// Task is a single to-do item. ID and CreatedAt never change after creation.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"` // display-formatted
}

// ValidateTitle trims text and rejects an empty result.
// Both the add and edit forms go through here.
func ValidateTitle(text string) (string, error) {
	title := strings.TrimSpace(text)
	if title == "" {
		return "", &EmptyFieldError{Field: "title"}
	}
	return title, nil
}

// NormalizeDescription trims a description. Empty is allowed.
func NormalizeDescription(text string) string {
	return strings.TrimSpace(text)
}
