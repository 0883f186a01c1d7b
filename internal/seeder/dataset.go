package seeder

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"shareprompts/internal/model"
)

//go:embed seeds/users.json
var usersJSON []byte

//go:embed seeds/prompts.json
var promptsJSON []byte

type promptRecord struct {
	Prompt string `json:"prompt"`
	Tag    string `json:"tag"`
}

func loadUsers() ([]model.User, error) {
	var users []model.User
	if err := json.Unmarshal(usersJSON, &users); err != nil {
		return nil, fmt.Errorf("parse users dataset: %w", err)
	}
	return users, nil
}

func loadPrompts() ([]promptRecord, error) {
	var prompts []promptRecord
	if err := json.Unmarshal(promptsJSON, &prompts); err != nil {
		return nil, fmt.Errorf("parse prompts dataset: %w", err)
	}
	return prompts, nil
}

// sliceHead returns the first n records, or everything when n is zero,
// negative or larger than the dataset.
func sliceHead[T any](records []T, n int) []T {
	if n <= 0 || n > len(records) {
		return records
	}
	return records[:n]
}
