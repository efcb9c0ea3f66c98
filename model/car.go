package model

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

type CarType string

const (
	CarSedan       CarType = "Sedan"
	CarSUV         CarType = "SUV"
	CarSports      CarType = "Sports"
	CarHatchback   CarType = "Hatchback"
	CarCoupe       CarType = "Coupe"
	CarConvertible CarType = "Convertible"
	CarVan         CarType = "Van"
	CarTruck       CarType = "Truck"
)

type Car struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Make          string             `bson:"make" json:"make" validate:"required"`
	ModelName     string             `bson:"modelName" json:"modelName" validate:"required"`
	Year          int                `bson:"year" json:"year" validate:"required,min=1900"`
	Transmission  Transmission       `bson:"transmission" json:"transmission" validate:"required,oneof=Automatic Manual"`
	FuelType      FuelType           `bson:"fuelType" json:"fuelType" validate:"required,oneof=Petrol Diesel Electric Hybrid"`
	Seats         int                `bson:"seats" json:"seats" validate:"required,min=2,max=8"`
	Doors         int                `bson:"doors" json:"doors" validate:"required,min=2,max=5"`
	PricePerDay   float64            `bson:"pricePerDay" json:"pricePerDay" validate:"min=0"`
	Images        []string           `bson:"images" json:"images" validate:"required,min=1"`
	Description   string             `bson:"description" json:"description" validate:"required,min=10"`
	Features      []string           `bson:"features" json:"features"`
	Location      string             `bson:"location" json:"location" validate:"required"`
	IsAvailable   bool               `bson:"isAvailable" json:"isAvailable"`
	AverageRating float64            `bson:"averageRating" json:"averageRating" validate:"min=0,max=5"`
	TotalReviews  int                `bson:"totalReviews" json:"totalReviews" validate:"min=0"`
	Mileage       int                `bson:"mileage" json:"mileage" validate:"min=0"`
	Color         string             `bson:"color" json:"color" validate:"required"`
	LicensePlate  string             `bson:"licensePlate" json:"licensePlate" validate:"required"`
	CarType       CarType            `bson:"carType" json:"carType" validate:"required,oneof=Sedan SUV Sports Hatchback Coupe Convertible Van Truck"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var carValidate = validator.New()

// Validate enforces the catalog field rules. Cars enter the collection out of
// band, so the rules live on the model rather than on a request DTO.
func (c *Car) Validate() error {
	if err := carValidate.Struct(c); err != nil {
		return err
	}
	if max := time.Now().Year() + 1; c.Year > max {
		return fmt.Errorf("year %d is in the future (max %d)", c.Year, max)
	}
	return nil
}

// CarSummary is the projection embedded into order reads.
type CarSummary struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Make        string             `bson:"make" json:"make"`
	ModelName   string             `bson:"modelName" json:"modelName"`
	Images      []string           `bson:"images" json:"images"`
	PricePerDay float64            `bson:"pricePerDay" json:"pricePerDay"`
	CarType     CarType            `bson:"carType" json:"carType,omitempty"`
}
