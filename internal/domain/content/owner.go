package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kabarettimpro/theater-api/internal/validation"
)

// Owner represents one of the people running the venue
type Owner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	BioDE     string             `bson:"bio_de" json:"bio_de"`
	BioEN     string             `bson:"bio_en" json:"bio_en"`
	Avatar    *string            `bson:"avatar,omitempty" json:"avatar"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName returns the name of the backing collection
func (Owner) CollectionName() string {
	return "owner"
}

// OwnerOut is the external projection of Owner, without the internal identifier
type OwnerOut struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	BioDE  string  `json:"bio_de"`
	BioEN  string  `json:"bio_en"`
	Avatar *string `json:"avatar"`
}

// Out returns the external projection with internal-only fields dropped
func (o *Owner) Out() *OwnerOut {
	return &OwnerOut{
		Name:   o.Name,
		Role:   o.Role,
		BioDE:  o.BioDE,
		BioEN:  o.BioEN,
		Avatar: o.Avatar,
	}
}

// Validate checks if the owner data is valid
func (o *Owner) Validate() error {
	if err := validation.ValidateRequired(o.Name, "name"); err != nil {
		return err
	}
	if err := validation.ValidateRequired(o.Role, "role"); err != nil {
		return err
	}
	if err := validation.ValidateRequired(o.BioDE, "bio_de"); err != nil {
		return err
	}
	if err := validation.ValidateRequired(o.BioEN, "bio_en"); err != nil {
		return err
	}
	if o.Avatar != nil {
		if err := validation.ValidateURL(*o.Avatar, "avatar"); err != nil {
			return err
		}
	}
	return nil
}
