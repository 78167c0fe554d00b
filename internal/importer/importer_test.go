package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaseParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/chase_checking.csv")
	require.NoError(t, err)

	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Len(t, txns, 6)

	// First: GITHUB subscription
	assert.Equal(t, "GITHUB *PRO SUBSCRIPTION", txns[0].Description)
	assert.Equal(t, "-4.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "ACH_DEBIT", txns[0].Type)
	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, 1, int(txns[0].Date.Month()))
	assert.Equal(t, 3, txns[0].Date.Day())

	// Fourth: ACME income (positive)
	assert.Equal(t, "ACME CONSULTING INVOICE 1042", txns[3].Description)
	assert.True(t, txns[3].Amount.IsPositive())
	assert.Equal(t, "3500.00", txns[3].Amount.StringFixed(2))
}

func TestChaseParser_DateParsing(t *testing.T) {
	data, err := os.ReadFile("../../testdata/chase_checking.csv")
	require.NoError(t, err)

	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// Jan 22
	last := txns[5]
	assert.Equal(t, 2025, last.Date.Year())
	assert.Equal(t, 1, int(last.Date.Month()))
	assert.Equal(t, 22, last.Date.Day())
}

func TestChaseParser_NegativePositiveAmounts(t *testing.T) {
	data, err := os.ReadFile("../../testdata/chase_checking.csv")
	require.NoError(t, err)

	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	for _, txn := range txns {
		if txn.Description == "ACME CONSULTING INVOICE 1042" {
			assert.True(t, txn.Amount.IsPositive())
		} else {
			assert.True(t, txn.Amount.IsNegative(), "expected negative for %s", txn.Description)
		}
	}
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestChaseParser_BadDate(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestChaseParser_BadAmount(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestChaseParser_Format(t *testing.T) {
	p := &ChaseParser{}
	assert.Equal(t, "chase", p.Format())
}

func TestChaseParser_Reference(t *testing.T) {
	data, err := os.ReadFile("../../testdata/chase_checking.csv")
	require.NoError(t, err)

	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// Reference format: chase_YYYYMMDD_<prefix>
	assert.Equal(t, "chase_20250103_GITHUBPROS", txns[0].Reference)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	p := r.Get("chase")
	require.NotNil(t, p)
	assert.Equal(t, "chase", p.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.NotNil(t, r.Get("Chase"))
	assert.NotNil(t, r.Get("CHASE"))
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("chase"))
	assert.NotNil(t, r.Get("generic"))
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "bank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "other.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "bank.csv", files[0].Name)
}

func TestScan_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	processedDir := filepath.Join(importDir, "processed")
	require.NoError(t, os.MkdirAll(processedDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processedDir, "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestChaseParser_Detect(t *testing.T) {
	p := &ChaseParser{}
	assert.True(t, p.Detect("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #"))
	assert.False(t, p.Detect("date,description,amount"))
}

func TestGenericParser_Parse(t *testing.T) {
	csv := "date,description,amount\n2025-02-01,PAYROLL ACME CORP,\"2,500.00\"\n2025-02-05, Rent,-1200.00\n"
	p := &GenericParser{}
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "PAYROLL ACME CORP", txns[0].Description)
	assert.Equal(t, "2500.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, 1, txns[0].Date.Day())
	assert.Equal(t, "generic_20250201_PAYROLLACM", txns[0].Reference)

	assert.Equal(t, "Rent", txns[1].Description)
	assert.Equal(t, "-1200.00", txns[1].Amount.StringFixed(2))
}

func TestGenericParser_Errors(t *testing.T) {
	p := &GenericParser{}

	_, err := p.Parse(strings.NewReader("date,description,amount\n02/01/2025,x,1.00\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")

	_, err = p.Parse(strings.NewReader("date,description,amount\n2025-02-01,x,lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestGenericParser_Detect(t *testing.T) {
	p := &GenericParser{}
	assert.True(t, p.Detect("date,description,amount"))
	assert.True(t, p.Detect("Date, Description, Amount"))
	assert.False(t, p.Detect("date,description,amount,balance"))
}

func TestRegistry_ForHeader(t *testing.T) {
	r := DefaultRegistry()

	p := r.ForHeader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #")
	require.NotNil(t, p)
	assert.Equal(t, "chase", p.Format())

	p = r.ForHeader("date,description,amount")
	require.NotNil(t, p)
	assert.Equal(t, "generic", p.Format())

	assert.Nil(t, r.ForHeader("when,what,how much"))
}

func TestRegistry_ParseFile_DetectsFormat(t *testing.T) {
	r := DefaultRegistry()

	txns, err := r.ParseFile("../../testdata/chase_checking.csv", "")
	require.NoError(t, err)
	assert.Len(t, txns, 6)

	txns, err = r.ParseFile("../../testdata/generic_three_months.csv", "")
	require.NoError(t, err)
	assert.Len(t, txns, 14)
}

func TestRegistry_ParseFile_ExplicitFormat(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.ParseFile("../../testdata/chase_checking.csv", "generic")
	assert.Error(t, err)

	_, err = r.ParseFile("../../testdata/chase_checking.csv", "ofx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import format")
}

func TestRegistry_ParseFile_UnknownHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mystery.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	_, err := DefaultRegistry().ParseFile(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized CSV header")
}

func TestRegistry_ParseAll(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))

	for _, name := range []string{"chase_checking.csv", "generic_three_months.csv"} {
		data, err := os.ReadFile(filepath.Join("../../testdata", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(importDir, name), data, 0o644))
	}

	txns, err := DefaultRegistry().ParseAll(dir, "")
	require.NoError(t, err)
	assert.Len(t, txns, 20)
	// Files are read in name order.
	assert.Equal(t, "GITHUB *PRO SUBSCRIPTION", txns[0].Description)
	assert.Equal(t, "PAYROLL ACME CORP", txns[6].Description)
}

func TestRegistry_ParseAll_NoImportDir(t *testing.T) {
	txns, err := DefaultRegistry().ParseAll(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, txns)
}
