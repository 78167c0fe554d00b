package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cleared-dev/finsim/internal/model"
)

// Parser converts a bank CSV file into BankTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
	// Detect reports whether a CSV header line belongs to this format.
	Detect(header string) bool
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForHeader returns the first parser (by format name) that recognizes header, or nil.
func (r *Registry) ForHeader(header string) Parser {
	keys := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if r.parsers[k].Detect(header) {
			return r.parsers[k]
		}
	}
	return nil
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	r.Register(&GenericParser{})
	return r
}

// importDir is the subdirectory for import CSVs.
const importDir = "import"

// headerPeek is how many bytes are sniffed to find the header line.
const headerPeek = 512

// utf8BOM prefixes headers written by some spreadsheet exports.
const utf8BOM = "\ufeff"

// Scan returns CSV files in <root>/import/, sorted by name.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// ParseFile parses one CSV file. An empty format picks the parser from the header line.
func (r *Registry) ParseFile(path, format string) ([]model.BankTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var p Parser
	if format != "" {
		p = r.Get(format)
		if p == nil {
			return nil, fmt.Errorf("unknown import format %q", format)
		}
	} else {
		header, err := br.Peek(headerPeek)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading header of %s: %w", path, err)
		}
		line, _, _ := strings.Cut(string(header), "\n")
		p = r.ForHeader(strings.TrimSpace(line))
		if p == nil {
			return nil, fmt.Errorf("unrecognized CSV header in %s", filepath.Base(path))
		}
	}

	txns, err := p.Parse(br)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as %s: %w", filepath.Base(path), p.Format(), err)
	}
	return txns, nil
}

// ParseAll parses every CSV under <root>/import/ and concatenates the results.
func (r *Registry) ParseAll(root, format string) ([]model.BankTransaction, error) {
	files, err := Scan(root)
	if err != nil {
		return nil, err
	}
	var all []model.BankTransaction
	for _, fi := range files {
		txns, err := r.ParseFile(fi.Path, format)
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)
	}
	return all, nil
}
