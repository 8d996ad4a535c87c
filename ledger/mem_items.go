package ledger

type memItems[T ILedgerItem] struct {
	gotItems     map[LedgerKey]T
	updatedItems map[LedgerKey]T
}

func newMemItems[T ILedgerItem]() *memItems[T] {
	return &memItems[T]{
		gotItems:     make(map[LedgerKey]T),
		updatedItems: make(map[LedgerKey]T),
	}
}

func (m *memItems[T]) setGotItem(item T) {
	m.gotItems[item.Key()] = item
}

func (m *memItems[T]) setUpdatedItem(item T) {
	m.updatedItems[item.Key()] = item
}

func (m *memItems[T]) getGotItem(key LedgerKey) (T, bool) {
	item, ok := m.gotItems[key]
	return item, ok
}

func (m *memItems[T]) reset() {
	m.gotItems = make(map[LedgerKey]T)
	m.updatedItems = make(map[LedgerKey]T)
}
