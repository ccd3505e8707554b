// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package config

import (
	"github.com/untangled-web/server/internal/document"
	"github.com/untangled-web/server/internal/logger"
)

// Component is the lifecycle resource wrapping the resolved configuration.
// Start runs the resolution pipeline once and holds the result; Stop
// releases it. The held value is immutable and safe for unsynchronized
// concurrent reads between Start and Stop.
type Component struct {
	opts   Options
	static document.Document
	log    *logger.Logger

	value document.Document
}

// NewComponent constructs a Component that resolves the configuration on
// Start using production wiring.
func NewComponent(opts Options, log *logger.Logger) *Component {
	if log == nil {
		log = logger.Nop()
	}

	return &Component{opts: opts, log: log}
}

// NewStaticComponent constructs a Component holding an already-resolved
// configuration, bypassing the resolution pipeline. Intended for tests and
// static deployments.
func NewStaticComponent(value document.Document) *Component {
	return &Component{static: value, log: logger.Nop()}
}

// Start makes the configuration available through Value. For a resolving
// component this triggers the full pipeline; any resolution failure is
// returned as-is and the component holds no value. For a static component
// Start installs the injected value and cannot fail.
func (c *Component) Start() error {
	if c.static != nil {
		c.value = c.static
		return nil
	}

	value, err := ResolveConfiguration(c.opts, c.log)
	if err != nil {
		return err
	}

	c.log.Info().Msg("configuration resolved")
	c.value = value

	return nil
}

// Value returns the held configuration, or nil before Start and after Stop.
func (c *Component) Value() document.Document {
	return c.value
}

// Stop releases the held configuration. It performs no I/O.
func (c *Component) Stop() {
	c.value = nil
}
