package client

import (
	"fmt"
	"slices"
	"strings"
)

// Products are the catalog items whose base texture the recolor mode sends.
var Products = []string{"giorgio", "riders", "superior", "camaro"}

const DefaultProduct = "giorgio"

// Catalog locates product texture assets. Root is a directory or a URL
// (normally the server's /textures route).
type Catalog struct {
	Root string
}

// AssetName is the file name of a product's base texture.
func AssetName(product string) string {
	return product + "-base.jpg"
}

func ValidProduct(product string) bool {
	return slices.Contains(Products, product)
}

// AssetRef returns a reference the image codec can resolve.
func (c Catalog) AssetRef(product string) (string, error) {
	if !ValidProduct(product) {
		return "", fmt.Errorf("unknown product %q", product)
	}
	return strings.TrimSuffix(c.Root, "/") + "/" + AssetName(product), nil
}
