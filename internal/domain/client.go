package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender labels used on client profiles.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// DefaultMealsPerDay is assumed when a profile does not specify a count.
const DefaultMealsPerDay = 3

// Client represents a coached client profile. The profile is the read-only
// input of the diet generation pipeline; plans are stored separately and
// reference the client by ID.
type Client struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Age                 int                `bson:"age" json:"age"`
	Weight              float64            `bson:"weight" json:"weight"` // kg
	Height              float64            `bson:"height" json:"height"` // cm
	Gender              Gender             `bson:"gender" json:"gender"`
	Goal                string             `bson:"goal,omitempty" json:"goal,omitempty"`
	DietaryRestrictions string             `bson:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`
	ActivityLevel       string             `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"`
	MealsPerDay         int                `bson:"mealsPerDay" json:"mealsPerDay"` // 3-6
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EffectiveMealsPerDay returns the meals-per-day count, falling back to the
// default when the profile never set one.
func (c *Client) EffectiveMealsPerDay() int {
	if c.MealsPerDay < DefaultMealsPerDay {
		return DefaultMealsPerDay
	}
	return c.MealsPerDay
}
