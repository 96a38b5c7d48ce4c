// Command slidelayout converts rendered slide snapshots into JSON slide
// decks, renders decks as PDF previews and summarises their contents.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
