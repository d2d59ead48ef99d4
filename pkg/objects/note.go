package objects

// NoteData is a single note. FlipIndex is the lane of the note this one is
// flip-linked to; FlipY is the vertical offset used when animating the flip.
type NoteData struct {
	Type       NoteType      `json:"type"`
	Time       float32       `json:"time"`
	Index      int32         `json:"index"`
	ID         int32         `json:"id"`
	Direction  NoteDirection `json:"direction"`
	Layer      NoteLayer     `json:"layer"`
	StartLayer NoteLayer     `json:"startLayer"`
	FlipIndex  int32         `json:"flipIndex"`
	FlipY      float32       `json:"flipY"`
	TimeToNext float32       `json:"timeToNext"`
	TimeToPrev float32       `json:"timeToPrev"`
}

// SetFlipTo links n to target. FlipY points away from the target's lane and
// is inverted when the pair crosses in layer order relative to lane order.
func (n *NoteData) SetFlipTo(target NoteData) {
	n.FlipIndex = target.FlipIndex
	if n.Index > target.Index {
		n.FlipY = 1
	} else {
		n.FlipY = -1
	}
	if (n.Index > target.Index && n.Layer < target.Layer) ||
		(n.Index < target.Index && n.Layer > target.Layer) {
		n.FlipY = -n.FlipY
	}
}

// Switch swaps NoteA and NoteB. Other types are unchanged.
func (n *NoteData) Switch() {
	switch n.Type {
	case NoteA:
		n.Type = NoteB
	case NoteB:
		n.Type = NoteA
	}
}

// Mirror flips the note's direction horizontally.
func (n *NoteData) Mirror() {
	n.Direction = n.Direction.Mirrored()
}

// MirrorIndex reflects Index and FlipIndex across a field of lanes lanes.
func (n *NoteData) MirrorIndex(lanes int32) {
	n.Index = lanes - 1 - n.Index
	n.FlipIndex = lanes - 1 - n.FlipIndex
}
