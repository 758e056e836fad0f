package feature

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type flagsFile struct {
	Flags []Flag `yaml:"flags"`
}

// LoadYAML reads flags from a document shaped like:
//
//	flags:
//	  - name: hero.portrait.enabled
//	    enabled: true
func LoadYAML(r io.Reader) (*MemoryProvider, error) {
	var doc flagsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	return NewMemoryProvider(doc.Flags...)
}

// LoadYAMLFile is LoadYAML for a path on disk.
func LoadYAMLFile(path string) (*MemoryProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	defer f.Close()
	return LoadYAML(f)
}
