// Package manifest reads and rewrites package.json documents without
// disturbing their key order.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
)

const indent = "  "

// Store implements ports.ManifestStore on the local filesystem.
//
// It fingerprints every manifest it reads or writes. Update refuses to
// overwrite a manifest whose bytes changed on disk since then.
type Store struct {
	mu           sync.Mutex
	fingerprints map[string]uint64
}

// NewStore creates a new manifest Store.
func NewStore() *Store {
	return &Store{fingerprints: make(map[string]uint64)}
}

type document struct {
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	Dependencies json.RawMessage `json:"dependencies"`
	Workspaces   json.RawMessage `json:"workspaces"`
}

// workspacesObject is the yarn classic form {"packages": [...], "nohoist": [...]}.
type workspacesObject struct {
	Packages []string `json:"packages"`
}

// Read parses the manifest at path.
func (s *Store) Read(path string) (*domain.Manifest, error) {
	data, err := s.load(path)
	if err != nil {
		return nil, err
	}
	s.remember(path, data)

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(path, err)
	}

	m := &domain.Manifest{
		Name:    doc.Name,
		Version: doc.Version,
	}

	if !isNull(doc.Dependencies) {
		deps, err := decodeObject(doc.Dependencies)
		if err != nil {
			return nil, malformed(path, err)
		}
		for pair := deps.Oldest(); pair != nil; pair = pair.Next() {
			var rng string
			if err := json.Unmarshal(pair.Value, &rng); err != nil {
				rng = string(pair.Value)
			}
			m.Dependencies = append(m.Dependencies, domain.Dependency{Name: pair.Key, Range: rng})
		}
	}

	if !isNull(doc.Workspaces) {
		patterns, err := workspacePatterns(doc.Workspaces)
		if err != nil {
			return nil, malformed(path, err)
		}
		m.Workspaces = patterns
	}

	return m, nil
}

// Update applies edit to the manifest at path. Keys keep their position; a
// version field missing from the document is appended. It reports false and
// leaves the file alone when the rewritten bytes are identical.
func (s *Store) Update(path string, edit domain.ManifestEdit) (bool, error) {
	data, err := s.load(path)
	if err != nil {
		return false, err
	}
	if err := s.verify(path, data); err != nil {
		return false, err
	}

	doc, err := decodeObject(data)
	if err != nil {
		return false, malformed(path, err)
	}

	if edit.Version != "" {
		raw, err := encodeString(edit.Version)
		if err != nil {
			return false, err
		}
		doc.Set("version", raw)
	}

	if len(edit.Dependencies) > 0 {
		if raw, ok := doc.Get("dependencies"); ok && !isNull(raw) {
			deps, err := decodeObject(raw)
			if err != nil {
				return false, malformed(path, err)
			}
			for name, rng := range edit.Dependencies {
				if _, declared := deps.Get(name); !declared {
					continue
				}
				value, err := encodeString(rng)
				if err != nil {
					return false, err
				}
				deps.Set(name, value)
			}
			encoded, err := encodeObject(deps)
			if err != nil {
				return false, err
			}
			doc.Set("dependencies", encoded)
		}
	}

	out, err := Format(doc)
	if err != nil {
		return false, malformed(path, err)
	}

	if bytes.Equal(out, data) {
		return false, nil
	}

	if err := s.save(path, out); err != nil {
		return false, err
	}
	s.remember(path, out)
	return true, nil
}

// Format renders doc with two space indentation and a trailing newline.
// String contents are written as they appear in the source document.
func Format(doc *orderedmap.OrderedMap[string, json.RawMessage]) ([]byte, error) {
	compact, err := encodeObject(doc)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (s *Store) load(path string) ([]byte, error) {
	//nolint:gosec // Path comes from the workspace catalog
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestMissing, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	return data, nil
}

func (s *Store) remember(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fingerprints[filepath.Clean(path)] = xxhash.Sum64(data)
}

// verify fails when path was fingerprinted and its current bytes differ.
func (s *Store) verify(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, ok := s.fingerprints[filepath.Clean(path)]
	if !ok || want == xxhash.Sum64(data) {
		return nil
	}
	return zerr.With(domain.ErrManifestChanged, "path", path)
}

func (s *Store) save(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	//nolint:gosec // Path comes from the workspace catalog
	if err := os.WriteFile(filepath.Clean(path), data, mode); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

func workspacePatterns(raw json.RawMessage) ([]string, error) {
	var patterns []string
	if err := json.Unmarshal(raw, &patterns); err == nil {
		return patterns, nil
	}

	var obj workspacesObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return obj.Packages, nil
}

func decodeObject(data []byte) (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	// The ordered map parser is lenient; reject what encoding/json would reject.
	if !json.Valid(data) {
		return nil, zerr.New("invalid JSON")
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, zerr.New("expected a JSON object")
	}

	doc := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(trimmed, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// encodeObject writes the pairs of m in order. Values are copied verbatim so
// no HTML escaping is introduced.
func encodeObject(m *orderedmap.OrderedMap[string, json.RawMessage]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := encodeString(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func malformed(path string, err error) error {
	return zerr.With(zerr.Wrap(err, domain.ErrManifestMalformed.Error()), "path", path)
}
