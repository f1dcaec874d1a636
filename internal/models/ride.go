package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// RideCapacity is the number of passenger seats every shared ride offers,
// including the seats the creator keeps for themselves.
const RideCapacity = 4

type Ride struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatorName    string             `json:"name" bson:"creator_name"`
	CreatorContact string             `json:"contact" bson:"creator_contact"`
	PickupLocation string             `json:"pickupLocation" bson:"pickup_location"`
	Destination    string             `json:"destination" bson:"destination"`
	DepartureDate  string             `json:"departureDate" bson:"departure_date"`
	DepartureTime  string             `json:"departureTime" bson:"departure_time"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	TotalCapacity  int                `json:"totalCapacity" bson:"total_capacity"`
	CreatorSeats   int                `json:"creatorSeats" bson:"creator_seats"`
	AvailableSeats int                `json:"availableSeats" bson:"available_seats"`
	JoinedUsers    []JoinedUser       `json:"joinedUsers" bson:"joined_users"`
	Status         RideStatus         `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

// JoinedUser is embedded in its ride and has no identity of its own; Phone is
// the dedup key within the ride.
type JoinedUser struct {
	Name        string    `json:"name" bson:"name"`
	Phone       string    `json:"phone" bson:"phone"`
	WhatsApp    string    `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	SeatsNeeded int       `json:"seatsNeeded" bson:"seats_needed"`
	JoinedAt    time.Time `json:"joinedAt" bson:"joined_at"`
}

// ReservedSeats sums the seats held by joined passengers.
func (r *Ride) ReservedSeats() int {
	total := 0
	for _, u := range r.JoinedUsers {
		total += u.SeatsNeeded
	}
	return total
}

func (r *Ride) HasJoined(phone string) bool {
	for _, u := range r.JoinedUsers {
		if u.Phone == phone {
			return true
		}
	}
	return false
}

func (r *Ride) IsFull() bool {
	return r.AvailableSeats <= 0
}
