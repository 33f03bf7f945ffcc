package catalog

import (
	"testing"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildTreeNestsChildrenInInputOrder(t *testing.T) {
	all, byName := sportsCatalog()

	roots := BuildTree(all)

	require.Len(t, roots, 2)
	assert.Equal(t, "Team Sports", roots[0].Name)
	assert.Equal(t, "Racquet Sports", roots[1].Name)

	team := roots[0]
	require.Len(t, team.Children, 2)
	assert.Equal(t, byName["Cricket"].ID, team.Children[0].ID)
	assert.Equal(t, byName["Football"].ID, team.Children[1].ID)
	require.Len(t, team.Children[0].Children, 1)
	assert.Equal(t, "Leather Balls", team.Children[0].Children[0].Name)
	assert.Empty(t, team.Children[1].Children)
	assert.NotNil(t, team.Children[1].Children, "leaf children should encode as [] not null")
}

func TestBuildTreeChildBeforeParentInInput(t *testing.T) {
	parent := category("Water Sports", nil)
	child := category("Swimming", &parent)

	roots := BuildTree([]models.Category{child, parent})

	require.Len(t, roots, 1)
	assert.Equal(t, parent.ID, roots[0].ID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, child.ID, roots[0].Children[0].ID)
}

func TestBuildTreePromotesOrphansToRoot(t *testing.T) {
	missing := models.Category{ID: primitive.NewObjectID(), Name: "Deleted"}
	orphan := category("Darts", &missing)
	root := category("Indoor Games", nil)

	roots := BuildTree([]models.Category{orphan, root})

	require.Len(t, roots, 2)
	assert.Equal(t, orphan.ID, roots[0].ID)
	assert.Equal(t, root.ID, roots[1].ID)
}

func TestBuildTreeEmpty(t *testing.T) {
	roots := BuildTree(nil)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
	assert.Empty(t, Flatten(roots))
}

func TestFlattenLabelsByDepth(t *testing.T) {
	all, _ := sportsCatalog()

	opts := Flatten(BuildTree(all))

	labels := make([]string, 0, len(opts))
	for _, o := range opts {
		labels = append(labels, o.Label)
	}
	assert.Equal(t, []string{
		" Team Sports",
		"— Cricket",
		"—— Leather Balls",
		"— Football",
		" Racquet Sports",
		"— Tennis",
	}, labels)
}

func TestFlattenIsDeterministicAndDoesNotMutate(t *testing.T) {
	all, _ := sportsCatalog()
	roots := BuildTree(all)

	first := Flatten(roots)
	second := Flatten(roots)

	assert.Equal(t, first, second)
	assert.Len(t, roots[0].Children, 2)
}

func TestBuildThenFlattenVisitsEveryNodeOnceParentFirst(t *testing.T) {
	all, _ := sportsCatalog()

	opts := Flatten(BuildTree(all))

	require.Len(t, opts, len(all))
	position := make(map[primitive.ObjectID]int, len(opts))
	for i, o := range opts {
		_, dup := position[o.ID]
		require.False(t, dup, "id %s visited twice", o.ID.Hex())
		position[o.ID] = i
	}
	for _, c := range all {
		_, ok := position[c.ID]
		require.True(t, ok, "%s missing from flattened list", c.Name)
		if c.ParentID != nil {
			assert.Less(t, position[*c.ParentID], position[c.ID], "%s listed before its parent", c.Name)
		}
	}
}

func TestBuildTreeIgnoresCycles(t *testing.T) {
	a := models.Category{ID: primitive.NewObjectID(), Name: "A"}
	b := models.Category{ID: primitive.NewObjectID(), Name: "B"}
	a.ParentID, b.ParentID = &b.ID, &a.ID
	root := category("Root", nil)

	opts := Flatten(BuildTree([]models.Category{a, b, root}))

	require.Len(t, opts, 1)
	assert.Equal(t, root.ID, opts[0].ID)
}
