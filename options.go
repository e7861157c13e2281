// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import "github.com/rs/zerolog"

// config holds a RIB's construction-time settings.
type config struct {
	log zerolog.Logger
}

// Option is a function that modifies a RIB's configuration at construction
// time.
type Option func(*config)

// defaultConfig is the configuration used when no Option overrides it: a
// disabled logger, so a RIB built with no options produces no output.
var defaultConfig = config{
	log: zerolog.Nop(),
}

// WithLogger attaches the logger that the RIB's Add, Delete, Change and
// Destroy operations log through.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}
