package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/unbound-force/rolo/internal/book"
)

// JSONFile persists snapshots as a single JSON document on disk,
// validated against Schema on every load.
type JSONFile struct {
	path   string
	schema *jsonschema.Schema
}

// NewJSONFile returns a JSON file store rooted at path. The file does
// not need to exist yet.
func NewJSONFile(path string) (*JSONFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	sch, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("snapshot.schema.json", sch); err != nil {
		return nil, fmt.Errorf("adding snapshot schema: %w", err)
	}
	compiled, err := compiler.Compile("snapshot.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling snapshot schema: %w", err)
	}
	return &JSONFile{path: path, schema: compiled}, nil
}

// Load reads and validates the snapshot file. A missing file yields
// an empty book.
func (s *JSONFile) Load() (*book.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return book.New(), nil
		}
		return nil, fmt.Errorf("reading snapshot %s: %w", s.path, err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s is not valid JSON: %w", s.path, err)
	}
	if err := s.schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("snapshot %s does not match schema: %w", s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", s.path, err)
	}
	return Decode(snap)
}

// Save writes the book's snapshot, replacing any previous file. The
// write goes through a temp file and rename so a crash mid-save never
// leaves a truncated snapshot behind.
func (s *JSONFile) Save(b *book.AddressBook) error {
	data, err := json.MarshalIndent(Encode(b), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".rolo-snapshot-*")
	if err != nil {
		return fmt.Errorf("creating snapshot temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing snapshot temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("setting snapshot permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing snapshot %s: %w", s.path, err)
	}
	return nil
}
