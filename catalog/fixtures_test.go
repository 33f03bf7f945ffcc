package catalog

import (
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func category(name string, parent *models.Category) models.Category {
	c := models.Category{ID: primitive.NewObjectID(), Name: name, Slug: Slugify(name)}
	if parent != nil {
		id := parent.ID
		c.ParentID = &id
	}
	return c
}

// sportsCatalog returns Team Sports > {Cricket > Leather Balls, Football} and Racquet Sports > Tennis.
func sportsCatalog() (all []models.Category, byName map[string]models.Category) {
	team := category("Team Sports", nil)
	cricket := category("Cricket", &team)
	football := category("Football", &team)
	balls := category("Leather Balls", &cricket)
	racquet := category("Racquet Sports", nil)
	tennis := category("Tennis", &racquet)

	all = []models.Category{team, cricket, football, balls, racquet, tennis}
	byName = make(map[string]models.Category, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}
	return all, byName
}
