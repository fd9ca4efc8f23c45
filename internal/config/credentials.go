package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common/validation"
)

// TangerineCredentials is the content of credentials.json.
type TangerineCredentials struct {
	Username          string            `json:"username" validate:"required"`
	Password          string            `json:"password" validate:"required"`
	SecurityQuestions map[string]string `json:"security_questions"`
}

// LoadTangerineCredentials reads the secrets file. Security questions are
// matched verbatim, so the file is decoded as-is rather than through viper.
func LoadTangerineCredentials(path string) (TangerineCredentials, error) {
	var creds TangerineCredentials

	data, err := os.ReadFile(path)
	if err != nil {
		return creds, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &creds); err != nil {
		return creds, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}

	if err := validation.ValidateStruct(creds); err != nil {
		return creds, fmt.Errorf("invalid credentials file %s: %w", path, err)
	}

	return creds, nil
}

// Answer looks a question up exactly, then ignoring case and surrounding spaces.
func (c TangerineCredentials) Answer(question string) (string, bool) {
	if answer, ok := c.SecurityQuestions[question]; ok {
		return answer, true
	}

	q := strings.TrimSpace(question)
	for k, v := range c.SecurityQuestions {
		if strings.EqualFold(strings.TrimSpace(k), q) {
			return v, true
		}
	}

	return "", false
}
