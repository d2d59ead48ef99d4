package objects

// MirrorObject returns the left/right flip of o over lanes lanes. Notes and
// long notes have their lane, flip lane and direction reflected; obstacles
// are reflected over their full width.
func MirrorObject(o Object, lanes int32) Object {
	switch o.Kind() {
	case KindNote, KindLongNote:
		n := o.note
		n.MirrorIndex(lanes)
		n.Mirror()
		o.note = n
		return o
	case KindObstacle:
		obs := o.obstacle
		obs.Mirror(lanes)
		o.obstacle = obs
		return o
	}
	panic(o.badKind())
}

// MirrorObjects applies MirrorObject to each element and returns a new slice.
func MirrorObjects(objs []Object, lanes int32) []Object {
	out := make([]Object, len(objs))
	for i, o := range objs {
		out[i] = MirrorObject(o, lanes)
	}
	return out
}

// LinkFlipPair flip-links a and b to each other. Both sides are computed from
// the notes as they were before linking.
func LinkFlipPair(a, b *NoteData) {
	origA, origB := *a, *b
	a.SetFlipTo(origB)
	b.SetFlipTo(origA)
}
