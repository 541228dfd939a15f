package models

import "time"

// Shipping methods accepted at checkout.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// ShippingForm is the checkout address form exactly as submitted. Field
// names mirror the storefront's stored formData keys.
type ShippingForm struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`
	Country        string `json:"country"`
	ShippingMethod string `json:"shippingMethod"`
}

// Order is an immutable record of a completed purchase: the cart and form
// snapshots taken at payment time plus the rounded payable total in rupees.
type Order struct {
	ID    string       `json:"id"`
	Items []CartItem   `json:"cart"`
	Form  ShippingForm `json:"formData"`
	Total float64      `json:"total"`
	Date  time.Time    `json:"date"`
}
