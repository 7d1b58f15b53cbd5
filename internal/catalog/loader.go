package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/socks.yaml
var defaultProductYAML []byte

// LoadProduct decodes and validates one product from YAML.
func LoadProduct(r io.Reader) (Product, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Product
	if err := dec.Decode(&p); err != nil {
		return Product{}, fmt.Errorf("decode product: %w", err)
	}
	if err := Validate(p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// LoadProductFile reads a product from path, or the bundled product when path
// is empty.
func LoadProductFile(path string) (Product, error) {
	if path == "" {
		return DefaultProduct()
	}
	f, err := os.Open(path)
	if err != nil {
		return Product{}, fmt.Errorf("open product file: %w", err)
	}
	defer f.Close()
	return LoadProduct(f)
}

func DefaultProduct() (Product, error) {
	return LoadProduct(bytes.NewReader(defaultProductYAML))
}
