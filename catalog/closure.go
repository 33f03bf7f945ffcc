package catalog

import (
	"errors"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrCategoryNotFound = errors.New("category not found")

// Closure is a category together with the ids of the categories listed under it.
type Closure struct {
	Root models.Category
	IDs  []primitive.ObjectID
}

func (c Closure) Contains(id primitive.ObjectID) bool {
	for _, x := range c.IDs {
		if x == id {
			return true
		}
	}
	return false
}

// ResolveClosure returns the category with the given slug plus its direct children.
// Grandchildren are not included.
func ResolveClosure(categories []models.Category, slug string) (Closure, error) {
	return ResolveClosureDepth(categories, slug, 1)
}

// ResolveClosureDepth is ResolveClosure with a configurable number of levels below the
// root. depth <= 0 collects every descendant. Ids are ordered root first, then level by level.
func ResolveClosureDepth(categories []models.Category, slug string, depth int) (Closure, error) {
	var root *models.Category
	for i := range categories {
		if categories[i].Slug == slug {
			root = &categories[i]
			break
		}
	}
	if root == nil {
		return Closure{}, ErrCategoryNotFound
	}

	children := childIndex(categories)
	ids := []primitive.ObjectID{root.ID}
	seen := map[primitive.ObjectID]bool{root.ID: true}
	frontier := []primitive.ObjectID{root.ID}
	for level := 1; len(frontier) > 0 && (depth <= 0 || level <= depth); level++ {
		var next []primitive.ObjectID
		for _, id := range frontier {
			for _, child := range children[id] {
				if seen[child] {
					continue
				}
				seen[child] = true
				ids = append(ids, child)
				next = append(next, child)
			}
		}
		frontier = next
	}
	return Closure{Root: *root, IDs: ids}, nil
}

// IsAncestor reports whether ancestor appears on the parent chain of id.
// Broken or cyclic chains stop the walk.
func IsAncestor(categories []models.Category, ancestor, id primitive.ObjectID) bool {
	parents := make(map[primitive.ObjectID]*primitive.ObjectID, len(categories))
	for _, c := range categories {
		parents[c.ID] = c.ParentID
	}
	visited := map[primitive.ObjectID]bool{id: true}
	cur := parents[id]
	for cur != nil && !visited[*cur] {
		if *cur == ancestor {
			return true
		}
		visited[*cur] = true
		cur = parents[*cur]
	}
	return false
}

func childIndex(categories []models.Category) map[primitive.ObjectID][]primitive.ObjectID {
	idx := make(map[primitive.ObjectID][]primitive.ObjectID)
	for _, c := range categories {
		if c.ParentID != nil {
			idx[*c.ParentID] = append(idx[*c.ParentID], c.ID)
		}
	}
	return idx
}
