package texture

import "github.com/go-gl/gl/v4.1-core/gl"

// Slot is a texture unit. Slot0 holds the default texture.
type Slot int

const (
	Slot0 Slot = iota
	Slot1
	Slot2
	Slot3
	Slot4
	Slot5
	Slot6
	Slot7
	Slot8
	Slot9
	Slot10
	Slot11
	Slot12
	Slot13
	Slot14
	Slot15
	Slot16
	Slot17

	SlotCount
)

func (s Slot) Valid() bool {
	return s >= Slot0 && s < SlotCount
}

// Unit returns the GL texture unit enum of the slot.
func (s Slot) Unit() uint32 {
	if !s.Valid() {
		return gl.TEXTURE0
	}
	return gl.TEXTURE0 + uint32(s)
}
