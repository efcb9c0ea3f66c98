package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderTypeRental is the only order type the storefront sells.
const OrderTypeRental = "rental"

type Rental struct {
	PickupDate      time.Time `bson:"pickupDate" json:"pickupDate"`
	ReturnDate      time.Time `bson:"returnDate" json:"returnDate"`
	PickupTime      string    `bson:"pickupTime" json:"pickupTime"`
	ReturnTime      string    `bson:"returnTime" json:"returnTime"`
	PickupLocation  string    `bson:"pickupLocation" json:"pickupLocation"`
	DropoffLocation string    `bson:"dropoffLocation" json:"dropoffLocation"`
	AdditionalNotes string    `bson:"additionalNotes,omitempty" json:"additionalNotes,omitempty"`
	Days            int64     `bson:"days" json:"days"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Product     primitive.ObjectID `bson:"product" json:"product"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Currency    string             `bson:"currency" json:"currency"`
	Type        string             `bson:"type" json:"type"`
	Status      OrderStatus        `bson:"status" json:"status"`
	Rental      Rental             `bson:"rental" json:"rental"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
