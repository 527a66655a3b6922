package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kabarettimpro/theater-api/internal/validation"
)

// Info is the stored venue identity record. The collection is singleton-like:
// reads pick the document with the most recent created_at.
type Info struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Address       string             `bson:"address" json:"address"`
	City          string             `bson:"city" json:"city"`
	Country       string             `bson:"country" json:"country"`
	Phone         *string            `bson:"phone,omitempty" json:"phone"`
	Email         *string            `bson:"email,omitempty" json:"email"`
	Website       *string            `bson:"website,omitempty" json:"website"`
	DescriptionDE *string            `bson:"description_de,omitempty" json:"description_de"`
	DescriptionEN *string            `bson:"description_en,omitempty" json:"description_en"`
	HowToGetDE    *string            `bson:"how_to_get_de,omitempty" json:"how_to_get_de"`
	HowToGetEN    *string            `bson:"how_to_get_en,omitempty" json:"how_to_get_en"`
	VideoReelURL  *string            `bson:"video_reel_url,omitempty" json:"video_reel_url"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName returns the name of the backing collection
func (Info) CollectionName() string {
	return "info"
}

// InfoOut is the external projection of Info, without the internal identifier
type InfoOut struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Website       *string `json:"website"`
	DescriptionDE *string `json:"description_de"`
	DescriptionEN *string `json:"description_en"`
	HowToGetDE    *string `json:"how_to_get_de"`
	HowToGetEN    *string `json:"how_to_get_en"`
	VideoReelURL  *string `json:"video_reel_url"`
}

// Out returns the external projection with internal-only fields dropped
func (i *Info) Out() *InfoOut {
	return &InfoOut{
		Name:          i.Name,
		Address:       i.Address,
		City:          i.City,
		Country:       i.Country,
		Phone:         i.Phone,
		Email:         i.Email,
		Website:       i.Website,
		DescriptionDE: i.DescriptionDE,
		DescriptionEN: i.DescriptionEN,
		HowToGetDE:    i.HowToGetDE,
		HowToGetEN:    i.HowToGetEN,
		VideoReelURL:  i.VideoReelURL,
	}
}

// Validate checks if the info data is valid
func (i *Info) Validate() error {
	if err := validation.ValidateRequired(i.Name, "name"); err != nil {
		return err
	}
	if err := validation.ValidateRequired(i.Address, "address"); err != nil {
		return err
	}
	if err := validation.ValidateRequired(i.City, "city"); err != nil {
		return err
	}
	if err := validation.ValidateRequired(i.Country, "country"); err != nil {
		return err
	}
	if i.Email != nil {
		if err := validation.ValidateEmail(*i.Email); err != nil {
			return err
		}
	}
	if i.Website != nil {
		if err := validation.ValidateURL(*i.Website, "website"); err != nil {
			return err
		}
	}
	if i.VideoReelURL != nil {
		if err := validation.ValidateURL(*i.VideoReelURL, "video_reel_url"); err != nil {
			return err
		}
	}
	return nil
}
