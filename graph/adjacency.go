package graph

import (
	"github.com/lrleon/alephw/dynarray"
	"github.com/lrleon/alephw/list"
)

// incidentArcs is the per-node adjacency set: the arc IDs incident to
// one node, in whatever order the chosen back-end happens to store
// them. Each of the three
// back-ends below implements it over a different package-level
// container so the storage tradeoff (footprint vs. removal cost) is
// selected once per Graph, at NewGraph/NewDigraph time.
type incidentArcs interface {
	add(id ArcID)
	remove(id ArcID) bool
	each(fn func(ArcID) bool)
	len() int
}

func newIncidentArcs(b Backend) incidentArcs {
	switch b {
	case SinglyLinked:
		return &singlyLinkedArcs{}
	case Packed:
		return &packedArcs{data: dynarray.New[ArcID](0)}
	default:
		return &doublyLinkedArcs{handles: make(map[ArcID]list.DNode[ArcID])}
	}
}

// doublyLinkedArcs gives O(1) add/remove by keeping a handle per arc ID
// alongside the DList (list.DList has no built-in lookup by value).
type doublyLinkedArcs struct {
	l       list.DList[ArcID]
	handles map[ArcID]list.DNode[ArcID]
}

func (a *doublyLinkedArcs) add(id ArcID) {
	a.handles[id] = a.l.PushBack(id)
}

func (a *doublyLinkedArcs) remove(id ArcID) bool {
	h, ok := a.handles[id]
	if !ok {
		return false
	}
	a.l.Remove(h)
	delete(a.handles, id)

	return true
}

func (a *doublyLinkedArcs) each(fn func(ArcID) bool) {
	a.l.Each(func(h list.DNode[ArcID]) bool { return fn(h.Value()) })
}

func (a *doublyLinkedArcs) len() int { return a.l.Len() }

// singlyLinkedArcs trades O(1) removal for a smaller per-arc footprint
//: removal is an O(degree) scan.
type singlyLinkedArcs struct {
	l list.SList[ArcID]
}

func (a *singlyLinkedArcs) add(id ArcID) { a.l.PushBack(id) }

func (a *singlyLinkedArcs) remove(id ArcID) bool {
	return a.l.Remove(func(v ArcID) bool { return v == id })
}

func (a *singlyLinkedArcs) each(fn func(ArcID) bool) { a.l.Each(fn) }

func (a *singlyLinkedArcs) len() int { return a.l.Len() }

// packedArcs stores incident arc IDs in a flat, swap-with-last slice:
// smallest footprint, O(degree) removal, adjacency order not preserved
// across removals.
type packedArcs struct {
	data *dynarray.DynArray[ArcID]
}

func (a *packedArcs) add(id ArcID) { a.data.Append(id) }

func (a *packedArcs) remove(id ArcID) bool {
	for i := 0; i < a.data.Len(); i++ {
		v, _ := a.data.At(i)
		if v == id {
			_, _ = a.data.RemoveAtSwap(i)

			return true
		}
	}

	return false
}

func (a *packedArcs) each(fn func(ArcID) bool) {
	for i := 0; i < a.data.Len(); i++ {
		v, _ := a.data.At(i)
		if !fn(v) {
			return
		}
	}
}

func (a *packedArcs) len() int { return a.data.Len() }
