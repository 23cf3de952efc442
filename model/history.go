package model

// History is the append-only calculation log for one interactive session.
type History struct {
	entries []Entry
}

func (h *History) Add(e Entry) {
	h.entries = append(h.entries, e)
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) At(i int) Entry {
	return h.entries[i]
}

// Entries returns a copy so callers cannot mutate the log.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Clear() {
	h.entries = nil
}
