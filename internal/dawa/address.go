package dawa

import (
	"github.com/google/uuid"
)

// Address is one registry address in the flat "mini" structure.
// Optional fields are nil when the registry sends null or omits them.
type Address struct {
	ID                          uuid.UUID
	Status                      int
	DarStatus                   int
	RoadCode                    string
	RoadName                    string
	AddressingRoadName          string
	HouseNumber                 string
	Floor                       *string
	Door                        *string
	SupplementaryTownName       *string
	PostalCode                  string
	PostalCodeName              string
	BulkRecipientPostalCode     *string
	BulkRecipientPostalCodeName *string
	MunicipalityCode            string
	AccessAddressID             uuid.UUID
	X                           float64
	Y                           float64
	Href                        string
	DisplayLabel                string
}

// String returns the registry's one-line display label.
func (a Address) String() string {
	return a.DisplayLabel
}

// wireAddress mirrors the registry's JSON. Required fields are pointers so
// that an absent key can be told apart from a zero value.
type wireAddress struct {
	ID                          *uuid.UUID `json:"id" validate:"required"`
	Status                      *int       `json:"status" validate:"required"`
	DarStatus                   *int       `json:"darstatus" validate:"required"`
	RoadCode                    *string    `json:"vejkode" validate:"required"`
	RoadName                    *string    `json:"vejnavn" validate:"required"`
	AddressingRoadName          *string    `json:"adresseringsvejnavn" validate:"required"`
	HouseNumber                 *string    `json:"husnr" validate:"required"`
	Floor                       *string    `json:"etage"`
	Door                        *string    `json:"dør"`
	SupplementaryTownName       *string    `json:"supplerendebynavn"`
	PostalCode                  *string    `json:"postnr" validate:"required"`
	PostalCodeName              *string    `json:"postnrnavn" validate:"required"`
	BulkRecipientPostalCode     *string    `json:"stormodtagerpostnr"`
	BulkRecipientPostalCodeName *string    `json:"stormodtagerpostnrnavn"`
	MunicipalityCode            *string    `json:"kommunekode" validate:"required"`
	AccessAddressID             *uuid.UUID `json:"adgangsadresseid" validate:"required"`
	X                           *float64   `json:"x" validate:"required"`
	Y                           *float64   `json:"y" validate:"required"`
	Href                        *string    `json:"href" validate:"required"`
	DisplayLabel                *string    `json:"betegnelse" validate:"required"`
}

// toAddress copies a validated wire record into an Address.
func (w *wireAddress) toAddress() Address {
	return Address{
		ID:                          *w.ID,
		Status:                      *w.Status,
		DarStatus:                   *w.DarStatus,
		RoadCode:                    *w.RoadCode,
		RoadName:                    *w.RoadName,
		AddressingRoadName:          *w.AddressingRoadName,
		HouseNumber:                 *w.HouseNumber,
		Floor:                       w.Floor,
		Door:                        w.Door,
		SupplementaryTownName:       w.SupplementaryTownName,
		PostalCode:                  *w.PostalCode,
		PostalCodeName:              *w.PostalCodeName,
		BulkRecipientPostalCode:     w.BulkRecipientPostalCode,
		BulkRecipientPostalCodeName: w.BulkRecipientPostalCodeName,
		MunicipalityCode:            *w.MunicipalityCode,
		AccessAddressID:             *w.AccessAddressID,
		X:                           *w.X,
		Y:                           *w.Y,
		Href:                        *w.Href,
		DisplayLabel:                *w.DisplayLabel,
	}
}
