package slidelayout

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tsawler/slidelayout/layout"
	"github.com/tsawler/slidelayout/media"
)

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	ctx    context.Context
	config layout.Config
	logger zerolog.Logger

	// Media probing for HTML fixtures
	probe  bool
	prober *media.Prober
	ocr    bool

	// JSON output
	indent string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		ctx:    context.Background(),
		config: layout.DefaultConfig(),
		logger: zerolog.Nop(),
		indent: "  ",
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	c := o
	c.config.Clusters = append([]layout.ClusterRule(nil), o.config.Clusters...)
	c.config.FlexGroupClasses = append([]string(nil), o.config.FlexGroupClasses...)
	c.config.GroupTags = append([]string(nil), o.config.GroupTags...)
	return c
}
