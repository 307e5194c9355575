package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sandell/mkbsc"
	"github.com/sandell/mkbsc/internal/gamefile"
)

// loadGame reads either an HCL definition (.hcl) or a persisted TOML game.
// Persisted games skip revalidation when trusted is set.
func loadGame(path string, trusted bool) (*mkbsc.Game, error) {
	if strings.HasSuffix(path, ".hcl") {
		return gamefile.LoadDefinition(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var opts []gamefile.DecodeOption
	if trusted {
		opts = append(opts, gamefile.WithoutValidation())
	}
	g, err := gamefile.Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return g, nil
}

// saveGame persists a game to path as TOML.
func saveGame(path string, g *mkbsc.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := gamefile.Encode(f, g); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
