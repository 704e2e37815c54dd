package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// LedgerDiff returns a unified diff between the YAML forms of two ledgers, or
// an empty string when they track the same regions.
func LedgerDiff(prior, next m.Ledger) (string, error) {
	if prior.Equal(next) {
		return "", nil
	}

	before, err := ledgerLines(prior)
	if err != nil {
		return "", err
	}

	after, err := ledgerLines(next)
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: "ledger (prior)",
		ToFile:   "ledger (new)",
		Context:  2,
	})
}

func ledgerLines(ledger m.Ledger) ([]string, error) {
	if ledger.IsEmpty() {
		return nil, nil
	}

	content, err := yaml.Marshal(ledger.Entries())
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}

	return difflib.SplitLines(string(content)), nil
}
