package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finsim/internal/model"
)

// GenericParser reads the minimal "date,description,amount" layout most
// banks and spreadsheets can export. Dates are ISO (2006-01-02).
type GenericParser struct{}

const (
	genericHeader     = "date,description,amount"
	genericDateFormat = "2006-01-02"
	genericNumFields  = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Detect matches the generic header, case-insensitively.
func (p *GenericParser) Detect(header string) bool {
	h := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(header, utf8BOM), " ", ""))
	return h == genericHeader
}

// Parse reads a generic CSV and returns BankTransactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		date, err := time.Parse(genericDateFormat, rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[0], err)
		}
		amount, err := decimal.NewFromString(strings.ReplaceAll(rec[2], ",", ""))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[2], err)
		}
		txns = append(txns, model.BankTransaction{
			Date:        date,
			Description: rec[1],
			Amount:      amount,
			Reference:   makeRef("generic", date, rec[1]),
		})
	}
	return txns, nil
}
