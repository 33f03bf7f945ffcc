// Package catalog holds the category tree engine and the product display rules.
// Everything here is pure: callers fetch records from the store and pass them in.
package catalog

import (
	"strings"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OptionIndent is repeated once per tree level in dropdown labels.
const OptionIndent = "—"

type CategoryNode struct {
	models.Category
	Children []*CategoryNode `json:"children"`
}

// CategoryOption is one row of a category <select>.
type CategoryOption struct {
	ID    primitive.ObjectID `json:"id"`
	Label string             `json:"label"`
}

// BuildTree nests a flat list of parent-referencing categories. Roots and children keep
// the order of the input. A category whose parent is not in the list is promoted to a
// root so it stays reachable. Repeated ids are ignored after the first occurrence.
func BuildTree(categories []models.Category) []*CategoryNode {
	nodes := make(map[primitive.ObjectID]*CategoryNode, len(categories))
	order := make([]*CategoryNode, 0, len(categories))
	for _, c := range categories {
		if _, dup := nodes[c.ID]; dup {
			continue
		}
		n := &CategoryNode{Category: c, Children: []*CategoryNode{}}
		nodes[c.ID] = n
		order = append(order, n)
	}

	roots := []*CategoryNode{}
	for _, n := range order {
		if n.ParentID != nil {
			if parent, ok := nodes[*n.ParentID]; ok {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// Flatten walks the tree depth-first, parent before children, and labels every node
// with its depth. The input is not modified.
func Flatten(roots []*CategoryNode) []CategoryOption {
	out := []CategoryOption{}
	var walk func(n *CategoryNode, level int)
	walk = func(n *CategoryNode, level int) {
		out = append(out, CategoryOption{
			ID:    n.ID,
			Label: strings.Repeat(OptionIndent, level) + " " + n.Name,
		})
		for _, child := range n.Children {
			walk(child, level+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	return out
}
