// Package flatten rebuilds nested parent/children views from the flat rows of
// a LEFT JOIN. It performs no I/O: repositories fetch the rows, services pass
// them through here before the handler serializes the result.
package flatten

// Optional là phần child của một join row: Present hoặc Absent.
// Absent nghĩa là LEFT JOIN không tìm thấy child nào cho parent đó.
type Optional[T any] struct {
	value   T
	present bool
}

// Present wraps a child value found by the join.
func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Absent marks a row whose child columns were all NULL.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr maps a nullable scan target onto Optional.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether the row carries a child.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Row is one flat join row: the parent identity, the parent fields and the
// (possibly absent) child.
type Row[K comparable, P any, C any] struct {
	Key    K
	Parent P
	Child  Optional[C]
}

// Node is a parent with its children in join order.
type Node[P any, C any] struct {
	Parent   P
	Children []C
}

// Group collapses rows into one node per distinct key, in order of first
// appearance. Every present child is appended, duplicates included; a parent
// whose only row is Absent ends up with an empty, non-nil child slice.
func Group[K comparable, P any, C any](rows []Row[K, P, C]) []Node[P, C] {
	nodes := make([]Node[P, C], 0, len(rows))
	index := make(map[K]int, len(rows))

	for _, row := range rows {
		pos, seen := index[row.Key]
		if !seen {
			pos = len(nodes)
			index[row.Key] = pos
			nodes = append(nodes, Node[P, C]{
				Parent:   row.Parent,
				Children: []C{},
			})
		}

		if child, ok := row.Child.Get(); ok {
			nodes[pos].Children = append(nodes[pos].Children, child)
		}
	}

	return nodes
}

// Single builds the node for rows already filtered to one parent.
// found is false only when rows is empty; one Absent row yields a found node
// with zero children.
func Single[K comparable, P any, C any](rows []Row[K, P, C]) (node Node[P, C], found bool) {
	if len(rows) == 0 {
		return Node[P, C]{}, false
	}

	node = Node[P, C]{
		Parent:   rows[0].Parent,
		Children: make([]C, 0, len(rows)),
	}
	for _, row := range rows {
		if child, ok := row.Child.Get(); ok {
			node.Children = append(node.Children, child)
		}
	}
	return node, true
}

// Expand is the inverse of Group: one row per child, or a single Absent row
// for a parent without children.
func Expand[K comparable, P any, C any](nodes []Node[P, C], key func(P) K) []Row[K, P, C] {
	rows := make([]Row[K, P, C], 0, len(nodes))
	for _, n := range nodes {
		k := key(n.Parent)
		if len(n.Children) == 0 {
			rows = append(rows, Row[K, P, C]{Key: k, Parent: n.Parent, Child: Absent[C]()})
			continue
		}
		for _, c := range n.Children {
			rows = append(rows, Row[K, P, C]{Key: k, Parent: n.Parent, Child: Present(c)})
		}
	}
	return rows
}
