package core

import "fmt"

// SlotAllocator hands out the lowest free integer slot to an owner and lets
// released slots be reused.
type SlotAllocator struct {
	owners []interface{}
}

func NewSlotAllocator(capacity int) *SlotAllocator {
	return &SlotAllocator{owners: make([]interface{}, capacity)}
}

func (a *SlotAllocator) Acquire(owner interface{}) uint32 {
	length := uint32(len(a.owners))
	for i := uint32(0); i < length; i++ {
		// Existing free spot. Take it.
		if a.owners[i] == nil {
			a.owners[i] = owner
			return i
		}
	}

	// No free slot left, grow by one.
	a.owners = append(a.owners, owner)
	return uint32(len(a.owners)) - 1
}

func (a *SlotAllocator) Release(id uint32) error {
	length := uint32(len(a.owners))
	if id >= length {
		return fmt.Errorf("slot allocator: id '%d' out of range (max=%d). Nothing was done", id, length)
	}
	a.owners[id] = nil
	return nil
}

// Owner returns the owner holding the slot, or nil.
func (a *SlotAllocator) Owner(id uint32) interface{} {
	if id >= uint32(len(a.owners)) {
		return nil
	}
	return a.owners[id]
}
