package models

import "encoding/json"

type AccountType string

const (
	AccountTypeMutualFund AccountType = "MUTUAL_FUND"
	AccountTypeChequing   AccountType = "CHEQUING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
)

// AccountSummary is one entry of the Tangerine account list.
type AccountSummary struct {
	Number      string      `json:"number"`
	DisplayName string      `json:"display_name"`
	Type        AccountType `json:"type"`
}

func (a AccountSummary) IsMutualFund() bool {
	return a.Type == AccountTypeMutualFund
}

// AccountDetail is the per-account record; only Holdings[0] is read.
type AccountDetail struct {
	Number      string      `json:"number"`
	DisplayName string      `json:"display_name"`
	Type        AccountType `json:"type"`
	Holdings    []Holding   `json:"holdings"`
}

// RawAccountDetail is the account_summary object returned by the accounts endpoint.
type RawAccountDetail struct {
	Number      string      `json:"number"`
	DisplayName string      `json:"display_name"`
	Type        AccountType `json:"type"`
	MutualFund  *struct {
		Holdings []json.RawMessage `json:"holdings"`
	} `json:"mutual_fund"`
}

// ToAccountDetail parses every holding of the raw record.
func (r RawAccountDetail) ToAccountDetail() (AccountDetail, error) {
	detail := AccountDetail{
		Number:      r.Number,
		DisplayName: r.DisplayName,
		Type:        r.Type,
	}
	if r.MutualFund == nil {
		return detail, nil
	}

	detail.Holdings = make([]Holding, 0, len(r.MutualFund.Holdings))
	for _, raw := range r.MutualFund.Holdings {
		h, err := ParseHolding(raw)
		if err != nil {
			return detail, err
		}
		detail.Holdings = append(detail.Holdings, h)
	}

	return detail, nil
}
