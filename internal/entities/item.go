package entities

// ItemType is the stat an item boosts
type ItemType int

// Item types
const (
	ItemTypeAttack ItemType = iota
	ItemTypeDefense
)

// String returns the string representation of the item type
func (t ItemType) String() string {
	switch t {
	case ItemTypeAttack:
		return "Attack"
	case ItemTypeDefense:
		return "Defense"
	default:
		return "Unknown"
	}
}

// Item is an immutable stat boost.
type Item struct {
	Name      string
	StatBoost float64
	Type      ItemType
}
