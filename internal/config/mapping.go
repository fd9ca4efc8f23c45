package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
)

// SheetMapping binds one account display name to the tab receiving its rows.
type SheetMapping struct {
	Account string `json:"account" validate:"required"`
	Sheet   string `json:"sheet" validate:"required"`
}

// Mapping keeps the JSON object order of the "mapping" document; that order is
// the order accounts are written in.
type Mapping []SheetMapping

func (m *Mapping) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read mapping: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("mapping must be a JSON object, got %v", tok)
	}

	var (
		out  Mapping
		seen = map[string]struct{}{}
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read mapping key: %w", err)
		}
		account, _ := tok.(string)

		var sheet string
		if err := dec.Decode(&sheet); err != nil {
			return fmt.Errorf("failed to read sheet name for %q: %w", account, err)
		}

		if _, dup := seen[account]; dup {
			return fmt.Errorf("%w: %q", common.ErrMappingDuplicateAccount, account)
		}
		seen[account] = struct{}{}

		out = append(out, SheetMapping{Account: account, Sheet: sheet})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read mapping end: %w", err)
	}

	*m = out
	return nil
}

func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Account)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(pair.Sheet)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Accounts returns the mapped account names in mapping order.
func (m Mapping) Accounts() []string {
	accounts := make([]string, 0, len(m))
	for _, pair := range m {
		accounts = append(accounts, pair.Account)
	}
	return accounts
}
