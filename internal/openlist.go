package internal

import "sort"

// Open set of the search, kept fully sorted by ascending Cost. Positions are
// found by binary search; a new node goes after any nodes of equal cost.
//
// A node's Cost must not be changed while it is in the list except through
// DecreaseKey, since Find relies on it to locate the node.
type OpenList []*Node

func (l OpenList) Len() int {
	return len(l)
}

func (l OpenList) Empty() bool {
	return len(l) == 0
}

// First position whose cost is greater than cost, searching [0, end).
func (l OpenList) upperBound(cost float64, end int) int {
	return sort.Search(end, func(i int) bool {
		return l[i].Cost > cost
	})
}

func (l *OpenList) Insert(node *Node) {
	i := l.upperBound(node.Cost, len(*l))
	*l = append(*l, nil)
	copy((*l)[i+1:], (*l)[i:])
	(*l)[i] = node
}

func (l *OpenList) PopMin() *Node {
	if l.Empty() {
		fatalf("pop from empty open list")
	}
	node := (*l)[0]
	copy(*l, (*l)[1:])
	(*l)[len(*l)-1] = nil
	*l = (*l)[:len(*l)-1]
	return node
}

// Position of node in the list. Binary search finds the run of nodes with the
// same cost, which is then scanned.
func (l OpenList) Find(node *Node) int {
	i := sort.Search(len(l), func(i int) bool {
		return l[i].Cost >= node.Cost
	})
	for ; i < len(l) && l[i].Cost == node.Cost; i++ {
		if l[i] == node {
			return i
		}
	}
	fatalf("node for triangle %d is not in the open list", node.Triangle)
	return -1
}

// Lower the cost of a node already in the list and move it into place. Only
// the entries in front of it need to shift.
func (l OpenList) DecreaseKey(node *Node, cost float64) {
	if cost > node.Cost {
		fatalf("cannot raise cost of triangle %d from %g to %g", node.Triangle, node.Cost, cost)
	}
	index := l.Find(node)
	target := l.upperBound(cost, index)
	copy(l[target+1:index+1], l[target:index])
	l[target] = node
	node.Cost = cost
}
