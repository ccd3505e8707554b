// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package subst

import (
	"fmt"
	"os"
	"strings"

	"github.com/untangled-web/server/internal/document"
	"github.com/untangled-web/server/internal/logger"
	"olympos.io/encoding/edn"
)

// Marker namespaces of environment-reference keywords.
const (
	rawNamespace    = "env"
	parsedNamespace = "env.edn"
)

// Environ reads named variables from the process environment. Lookup follows
// os.LookupEnv semantics: the second return reports whether the variable is
// set at all.
type Environ interface {
	Lookup(name string) (string, bool)
}

type osEnviron struct{}

func (osEnviron) Lookup(name string) (string, bool) { return os.LookupEnv(name) }

// OS returns an Environ backed by the real process environment.
func OS() Environ { return osEnviron{} }

// Substituter replaces environment-reference markers in a document tree.
type Substituter struct {
	env Environ
	log *logger.Logger
}

// New constructs a Substituter reading variables through env.
func New(env Environ, log *logger.Logger) *Substituter {
	if log == nil {
		log = logger.Nop()
	}

	return &Substituter{env: env, log: log}
}

// Substitute returns a copy of v with every environment-reference marker
// replaced. Container kind and element order are preserved; mapping keys are
// never substituted. Inputs without markers come back unchanged.
//
// A marker naming an unset variable is replaced with nil. A parsed marker
// whose value is not a readable EDN datum yields an error naming the
// variable.
func (s *Substituter) Substitute(v any) (any, error) {
	return document.Transform(v, s.substituteScalar)
}

func (s *Substituter) substituteScalar(v any) (any, error) {
	kw, ok := v.(edn.Keyword)
	if !ok {
		return v, nil
	}

	namespace, name, qualified := strings.Cut(string(kw), "/")
	if !qualified {
		return v, nil
	}

	switch namespace {
	case rawNamespace:
		value, set := s.env.Lookup(name)
		if !set {
			s.log.Debug().Str("variable", name).Msg("environment variable unset, substituting nil")
			return nil, nil
		}
		return value, nil

	case parsedNamespace:
		value, set := s.env.Lookup(name)
		if !set {
			s.log.Debug().Str("variable", name).Msg("environment variable unset, substituting nil")
			return nil, nil
		}
		var parsed any
		if err := edn.Unmarshal([]byte(value), &parsed); err != nil {
			return nil, fmt.Errorf("error parsing environment variable %s as edn: %w", name, err)
		}
		return parsed, nil

	default:
		return v, nil
	}
}
