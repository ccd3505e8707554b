// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package document

// Merge deep-merges override into base and returns the combined document.
//
// Keys present in both documents whose values are both mappings are merged
// recursively; for every other collision the override value wins outright.
// Sequences, sets, and scalars are atomic: they are replaced, never
// concatenated or unioned. Keys present in only one document are retained.
//
// Merge is pure: the result shares no containers with either argument and
// neither argument is mutated. Merge(base, nil) equals base and
// Merge(nil, override) equals override.
func Merge(base, override Document) (Document, error) {
	merged, ok := DeepCopy(base).(Document)
	if !ok || merged == nil {
		merged = Document{}
	}

	for key, overrideValue := range override {
		baseValue, both := merged[key]
		baseMapping, baseIsMapping := baseValue.(map[any]any)
		overrideMapping, overrideIsMapping := overrideValue.(map[any]any)

		if both && baseIsMapping && overrideIsMapping {
			sub, err := Merge(baseMapping, overrideMapping)
			if err != nil {
				return nil, err
			}
			merged[key] = sub
			continue
		}

		merged[key] = DeepCopy(overrideValue)
	}

	return merged, nil
}
