package menu

import "strings"

// Increments maps item names to the weight a merge added to them, in the
// order the items were first raised.
type Increments struct {
	names   []string
	amounts map[string]float64
}

func (inc *Increments) add(name string, w float64) {
	if inc.amounts == nil {
		inc.amounts = make(map[string]float64)
	}
	if _, ok := inc.amounts[name]; !ok {
		inc.names = append(inc.names, name)
	}
	inc.amounts[name] += w
}

func (inc Increments) Len() int { return len(inc.names) }

// Names returns the raised items in order.
func (inc Increments) Names() []string {
	return append([]string(nil), inc.names...)
}

// Get returns the accumulated increment for name.
func (inc Increments) Get(name string) (float64, bool) {
	w, ok := inc.amounts[name]
	return w, ok
}

// String renders "name(w)" pairs joined by ListSeparator.
func (inc Increments) String() string {
	parts := make([]string, len(inc.names))
	for i, n := range inc.names {
		parts[i] = n + "(" + FormatWeight(inc.amounts[n]) + ")"
	}
	return strings.Join(parts, ListSeparator)
}
