package muncher

// ItemKind classifies what was found at a tile during consumption.
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemPellet
	ItemPower
)

// Items is the mutable ledger of remaining collectibles, keyed by tile.
// A tile holds at most one item. The ledger is owned exclusively by the
// Sim; renderers read it through PelletAt/PowerAt only.
type Items struct {
	pellets map[Cell]struct{}
	power   map[Cell]struct{}
}

func newItems() *Items {
	return &Items{
		pellets: make(map[Cell]struct{}),
		power:   make(map[Cell]struct{}),
	}
}

func (it *Items) addPellet(c Cell) {
	it.pellets[c] = struct{}{}
}

func (it *Items) addPower(c Cell) {
	it.power[c] = struct{}{}
}

// ConsumeAt removes and reports the item at the tile. A tile with no item
// is a no-op returning ItemNone; most tiles have no item, so this is the
// common case, not an error.
func (it *Items) ConsumeAt(c Cell) ItemKind {
	if _, ok := it.pellets[c]; ok {
		delete(it.pellets, c)
		return ItemPellet
	}
	if _, ok := it.power[c]; ok {
		delete(it.power, c)
		return ItemPower
	}
	return ItemNone
}

// Remaining returns the combined count of pellets and power pellets.
// The round is won exactly when this reaches zero.
func (it *Items) Remaining() int {
	return len(it.pellets) + len(it.power)
}

// PelletAt reports whether a regular pellet remains at the tile.
func (it *Items) PelletAt(c Cell) bool {
	_, ok := it.pellets[c]
	return ok
}

// PowerAt reports whether a power pellet remains at the tile.
func (it *Items) PowerAt(c Cell) bool {
	_, ok := it.power[c]
	return ok
}

// removeAll empties both sets. Used by the force-clear debug hook.
func (it *Items) removeAll() {
	clear(it.pellets)
	clear(it.power)
}
