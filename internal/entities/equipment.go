package entities

// EquipmentSlot names one of the eight loadout positions
type EquipmentSlot string

// The eight loadout slots
const (
	SlotWeapon     EquipmentSlot = "weapon"
	SlotOffhand    EquipmentSlot = "offhand"
	SlotHead       EquipmentSlot = "head"
	SlotArmor      EquipmentSlot = "armor"
	SlotFeet       EquipmentSlot = "feet"
	SlotAccessory1 EquipmentSlot = "accessory_1"
	SlotAccessory2 EquipmentSlot = "accessory_2"
	SlotPet        EquipmentSlot = "pet"
)

// NumEquipmentSlots is the size of a loadout
const NumEquipmentSlots = 8

var slotOrder = [NumEquipmentSlots]EquipmentSlot{
	SlotWeapon,
	SlotOffhand,
	SlotHead,
	SlotArmor,
	SlotFeet,
	SlotAccessory1,
	SlotAccessory2,
	SlotPet,
}

var slotIndex = map[EquipmentSlot]int{
	SlotWeapon:     0,
	SlotOffhand:    1,
	SlotHead:       2,
	SlotArmor:      3,
	SlotFeet:       4,
	SlotAccessory1: 5,
	SlotAccessory2: 6,
	SlotPet:        7,
}

// String returns the string representation of the slot
func (s EquipmentSlot) String() string {
	return string(s)
}

// IsValid checks if the slot name is one of the eight loadout slots
func (s EquipmentSlot) IsValid() bool {
	_, ok := slotIndex[s]
	return ok
}

// AllEquipmentSlots returns the slots in loadout order
func AllEquipmentSlots() []EquipmentSlot {
	return slotOrder[:]
}

// EquippedItem pairs an item with the slot it occupies, the unit of input
// for equipment stat aggregation.
type EquippedItem struct {
	Slot EquipmentSlot `json:"slot"`
	Item *Item         `json:"item"`
}

// EquipmentLoadout holds at most one item per slot, backed by a fixed array
// for O(1) occupancy checks.
type EquipmentLoadout struct {
	items [NumEquipmentSlots]*Item
}

// At returns the item in the given slot, or nil
func (l *EquipmentLoadout) At(slot EquipmentSlot) *Item {
	idx, ok := slotIndex[slot]
	if !ok {
		return nil
	}
	return l.items[idx]
}

// Equip places an item in a slot. Fails if the slot name is unknown or
// already occupied.
func (l *EquipmentLoadout) Equip(slot EquipmentSlot, item *Item) bool {
	idx, ok := slotIndex[slot]
	if !ok || l.items[idx] != nil {
		return false
	}
	l.items[idx] = item
	return true
}

// Unequip clears a slot and returns the removed item, if any
func (l *EquipmentLoadout) Unequip(slot EquipmentSlot) *Item {
	idx, ok := slotIndex[slot]
	if !ok {
		return nil
	}
	item := l.items[idx]
	l.items[idx] = nil
	return item
}

// Equipped returns the occupied slots in loadout order
func (l *EquipmentLoadout) Equipped() []EquippedItem {
	out := make([]EquippedItem, 0, NumEquipmentSlots)
	for i, item := range l.items {
		if item != nil {
			out = append(out, EquippedItem{Slot: slotOrder[i], Item: item})
		}
	}
	return out
}
