package corpus

import (
	_ "embed"
	"fmt"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in greeting corpus.
func Default() *Corpus {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in corpus is invalid: %v", err))
	}

	return c
}
