package entities

import (
	"github.com/KirkDiggler/battle-arena/internal/errors"
)

// Player is an Entity with a job, a fixed inventory and one optional equip
// slot. The equipped item's boost is folded into DerivedAttack and
// DerivedDefense; the embedded base stats are never modified by equipment.
type Player struct {
	Entity
	Job JobName

	items       []Item
	equipped    int
	hasEquipped bool
}

// NewPlayer creates a player with the job's base stats and items and
// nothing equipped.
func NewPlayer(id, name string, job *Job) *Player {
	items := make([]Item, len(job.Items))
	copy(items, job.Items)

	return &Player{
		Entity: Entity{
			ID:           id,
			Name:         name,
			Health:       job.Health,
			AttackPower:  job.AttackPower,
			DefensePower: job.DefensePower,
		},
		Job:   job.Name,
		items: items,
	}
}

// GetType returns the entity type for rpg-toolkit
func (p *Player) GetType() string {
	return EntityTypePlayer
}

// Items returns a copy of the inventory
func (p *Player) Items() []Item {
	items := make([]Item, len(p.items))
	copy(items, p.items)
	return items
}

// ItemNames returns the inventory names in order, for menus.
func (p *Player) ItemNames() []string {
	names := make([]string, len(p.items))
	for i, item := range p.items {
		names[i] = item.Name
	}
	return names
}

// EquippedIndex returns the equipped slot and whether anything is equipped.
func (p *Player) EquippedIndex() (int, bool) {
	return p.equipped, p.hasEquipped
}

// EquippedItem returns the equipped item and whether anything is equipped.
func (p *Player) EquippedItem() (Item, bool) {
	if !p.hasEquipped {
		return Item{}, false
	}
	return p.items[p.equipped], true
}

// Equip puts the item at index into the equip slot. Equipping the item that
// is already equipped succeeds and changes nothing.
// Returns errors.OutOfRange if index is not in the inventory; the slot is
// left unchanged.
func (p *Player) Equip(index int) error {
	if index < 0 || index >= len(p.items) {
		return errors.OutOfRangef("There is no item in slot %d.", index+1).
			WithMeta("index", index).
			WithMeta("item_count", len(p.items))
	}

	p.equipped = index
	p.hasEquipped = true
	return nil
}

// Unequip empties the equip slot.
// Returns errors.FailedPrecondition if nothing is equipped.
func (p *Player) Unequip() error {
	if !p.hasEquipped {
		return errors.FailedPrecondition("You don't have anything equipped.")
	}

	p.equipped = 0
	p.hasEquipped = false
	return nil
}

// DerivedAttack is base attack plus the equipped item's boost when it is an
// attack item.
func (p *Player) DerivedAttack() float64 {
	return p.AttackPower + p.boost(ItemTypeAttack)
}

// DerivedDefense is base defense plus the equipped item's boost when it is a
// defense item.
func (p *Player) DerivedDefense() float64 {
	return p.DefensePower + p.boost(ItemTypeDefense)
}

func (p *Player) boost(t ItemType) float64 {
	item, ok := p.EquippedItem()
	if !ok || item.Type != t {
		return 0
	}
	return item.StatBoost
}
