package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for manifest files whose extension has no backend.
var ErrUnsupportedFormat = errors.New("loader: unsupported manifest format")

// loaderBackend decodes one manifest encoding.
type loaderBackend interface {
	// Decode reads a manifest from r. Unknown fields are rejected.
	//
	// Parameters:
	//   - r: the reader providing manifest data
	//
	// Returns:
	//   - *Manifest: the decoded manifest
	//   - error: error if decoding fails
	Decode(r io.Reader) (*Manifest, error)
}

type yamlLoaderBackend struct{}

var _ loaderBackend = yamlLoaderBackend{}

func (yamlLoaderBackend) Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &m, nil
}

type tomlLoaderBackend struct{}

var _ loaderBackend = tomlLoaderBackend{}

func (tomlLoaderBackend) Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// resolveBackend picks the backend for path by its extension.
func resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yamlLoaderBackend{}, nil
	case ".toml":
		return tomlLoaderBackend{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadManifest decodes and validates the manifest at path.
//
// Parameters:
//   - path: a .yaml, .yml or .toml manifest file
//
// Returns:
//   - *Manifest: the manifest
//   - error: ErrUnsupportedFormat, an I/O or decode error, or a validation error
func ReadManifest(path string) (*Manifest, error) {
	backend, err := resolveBackend(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := backend.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
