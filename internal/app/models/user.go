package models

import "time"

type User struct {
	ID                     string    `bson:"_id,omitempty"`
	Username               string    `bson:"username"`
	Password               string    `bson:"password"`
	PractitionerID         string    `bson:"practitionerId,omitempty"`
	PractitionerIdentifier string    `bson:"practitionerIdentifier"`
	CreatedAt              time.Time `bson:"createdAt"`
	UpdatedAt              time.Time `bson:"updatedAt"`
}
