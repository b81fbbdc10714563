package model

import "time"

// HomeOwnership values accepted on an adoption application.
const (
	OwnershipOwn  = "own"
	OwnershipRent = "rent"
)

// FencedYard values accepted on an adoption application.
const (
	FencedYardYes = "yes"
	FencedYardNo  = "no"
)

// AdoptionApplication is a prospective adopter's request for one dog.
// DogID references a Dog by identity; the free-text fields pass through
// as submitted.
type AdoptionApplication struct {
	ID            string    `json:"id"`
	DogID         string    `json:"dogId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	HomeOwnership string    `json:"homeOwnership,omitempty"`
	FencedYard    string    `json:"fencedYard,omitempty"`
	OtherPets     string    `json:"otherPets,omitempty"`
	Environment   string    `json:"environment,omitempty"`
	Motivation    string    `json:"motivation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
