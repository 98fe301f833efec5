package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alert is an immutable incident record: who raised it, where, and when.
// Name is a loose reference to User.Name and is not validated against the
// users collection.
type Alert struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Address   string             `json:"address" bson:"address"`
	Contact   string             `json:"contact" bson:"contact"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}
