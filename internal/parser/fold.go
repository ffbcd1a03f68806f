package parser

import "github.com/stellaris-save/parser/value"

// fold implements the repeated-key rule for a single map body: a key seen
// more than once does not overwrite its prior value but accumulates into a
// List, in order of appearance. The tricky case is a key whose values are
// themselves repeated Lists (e.g. `x={1 1 1} x={2 2 2} x={3 3 3}`): the
// first repeat wraps the two Lists into a List of Lists, but every
// subsequent repeat appends as a sibling of that wrapper rather than
// wrapping again. nested tracks, per key, whether that one-time wrap has
// already happened.
func fold(pairs []rawPair) *value.MapValue {
	m := value.NewMapValue()
	nested := make(map[string]bool)

	for _, pr := range pairs {
		existing, ok := m.Get(pr.key)
		if !ok {
			m.Set(pr.key, pr.value)
			continue
		}

		existingList, existingIsList := existing.List()
		if !existingIsList {
			m.Set(pr.key, value.NewList([]*value.Value{existing, pr.value}))
			continue
		}

		if _, valueIsList := pr.value.List(); valueIsList && !nested[pr.key] {
			m.Set(pr.key, value.NewList([]*value.Value{existing, pr.value}))
			nested[pr.key] = true
			continue
		}

		appended := append(append([]*value.Value{}, existingList...), pr.value)
		m.Set(pr.key, value.NewList(appended))
	}

	return m
}
