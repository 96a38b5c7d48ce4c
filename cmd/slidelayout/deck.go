package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/slidelayout"
	"github.com/tsawler/slidelayout/format"
	"github.com/tsawler/slidelayout/model"
)

// loadDeck reads a deck either from an extracted JSON deck (a top-level
// array) or by extracting a snapshot.
func (a *app) loadDeck(cmd *cobra.Command, path string, opts extractOptions) (model.Deck, []slidelayout.Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if f, _ := format.Resolve(path, data); f == format.JSON && isDeckJSON(data) {
		var deck model.Deck
		if err := json.Unmarshal(data, &deck); err != nil {
			return nil, nil, fmt.Errorf("decoding deck: %w", err)
		}
		return deck, nil, nil
	}

	return a.extractor(cmd, path, opts).Deck()
}

func isDeckJSON(data []byte) bool {
	data = bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	return len(data) > 0 && data[0] == '['
}
