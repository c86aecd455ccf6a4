package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Source looks up a single variable by exact name.
type Source interface {
	Lookup(key string) (string, bool)
}

// OSSource reads the process environment.
type OSSource struct{}

func (OSSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource serves variables from an in-memory map.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Layered consults its sources in order; the first one holding the key wins,
// even when its value is empty.
type Layered []Source

func (l Layered) Lookup(key string) (string, bool) {
	for _, src := range l {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// DotenvSource holds the declarations parsed from a local .env file.
// Reading it never touches the process environment.
type DotenvSource struct {
	path string
	vars map[string]string
}

// ReadDotenv parses the file at path. A missing file yields an empty source
// unless required is set.
func ReadDotenv(path string, required bool) (*DotenvSource, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &DotenvSource{path: path, vars: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	return &DotenvSource{path: path, vars: vars}, nil
}

func (d *DotenvSource) Lookup(key string) (string, bool) {
	v, ok := d.vars[key]
	return v, ok
}

// Path returns the file the declarations were read from.
func (d *DotenvSource) Path() string {
	return d.path
}

// Len returns the number of declarations in the file.
func (d *DotenvSource) Len() int {
	return len(d.vars)
}
