// SPDX-FileCopyrightText: 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package graph

import (
	"sort"
)

// Node is a vertex of the dependency graph, ID is the plugin name.
type Node struct {
	ID string

	outEdges map[*Node]int
	inDegree int
}

func NewNode(id string) *Node {
	return &Node{
		ID:       id,
		outEdges: make(map[*Node]int),
	}
}

// Data is a directed graph, an edge from -> to means "to" depends on "from".
type Data struct {
	nodes map[string]*Node
	order []string
}

func New() *Data {
	return &Data{
		nodes: make(map[string]*Node),
	}
}

// AddNode returns false if a node with the same ID already exists.
func (d *Data) AddNode(node *Node) bool {
	if node == nil {
		return false
	}
	if _, ok := d.nodes[node.ID]; ok {
		return false
	}
	d.nodes[node.ID] = node
	d.order = append(d.order, node.ID)
	return true
}

func (d *Data) GetNodeByID(id string) *Node {
	return d.nodes[id]
}

func (d *Data) NodeCount() int {
	return len(d.nodes)
}

// UpdateEdgeWeight adds the edge from -> to, or updates its weight.
func (d *Data) UpdateEdgeWeight(from, to *Node, weight int) {
	if from == nil || to == nil {
		return
	}
	if _, ok := from.outEdges[to]; !ok {
		to.inDegree++
	}
	from.outEdges[to] = weight
}

// TopologicalDag sorts nodes so that every node comes after the nodes it
// depends on. The second return value is false when the graph has a cycle.
func (d *Data) TopologicalDag() ([]*Node, bool) {
	inDegree := make(map[*Node]int, len(d.nodes))
	var queue []*Node
	for _, id := range d.order {
		node := d.nodes[id]
		inDegree[node] = node.inDegree
		if node.inDegree == 0 {
			queue = append(queue, node)
		}
	}

	result := make([]*Node, 0, len(d.nodes))
	for len(queue) != 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		// keep the output stable between runs
		next := make([]*Node, 0, len(node.outEdges))
		for to := range node.outEdges {
			next = append(next, to)
		}
		sort.Slice(next, func(i, j int) bool {
			return next[i].ID < next[j].ID
		})
		for _, to := range next {
			inDegree[to]--
			if inDegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(result) != len(d.nodes) {
		return nil, false
	}
	return result, true
}
