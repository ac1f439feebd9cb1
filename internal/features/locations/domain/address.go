package domain

import "strings"

// DefaultCountry is the only country the store ships to.
const DefaultCountry = "CL"

// RequiredAddressFields lists, in reporting order, the fields an address needs
// before it can be attached to an order.
var RequiredAddressFields = []string{"name", "surname", "address", "city", "region", "country"}

// Address is a shipping or billing address.
type Address struct {
	// Name is the recipient's first name.
	Name string `json:"name"`
	// Surname is the recipient's last name.
	Surname string `json:"surname"`
	// TaxID is the billing tax identifier (RUT). Empty for shipping addresses.
	TaxID string `json:"taxid,omitempty"`
	// Address is the street line.
	Address string `json:"address"`
	// City is the city name.
	City string `json:"city"`
	// Postal is the optional postal code.
	Postal string `json:"postal,omitempty"`
	// Municipality is the comuna name.
	Municipality string `json:"municipality"`
	// Region is the region code (e.g. "13").
	Region string `json:"region"`
	// Country is the ISO country code.
	Country string `json:"country"`
}

// field returns the value of a required field by name.
func (a Address) field(name string) string {
	switch name {
	case "name":
		return a.Name
	case "surname":
		return a.Surname
	case "address":
		return a.Address
	case "city":
		return a.City
	case "region":
		return a.Region
	case "country":
		return a.Country
	}
	return ""
}

// MissingFields returns the required fields that are blank, in RequiredAddressFields order.
// A nil slice means the address is complete.
func (a Address) MissingFields() []string {
	var missing []string
	for _, f := range RequiredAddressFields {
		if strings.TrimSpace(a.field(f)) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// IsComplete reports whether every required field is present.
func (a Address) IsComplete() bool {
	return len(a.MissingFields()) == 0
}

// Region is a first-level division of the country.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Municipality is a comuna within a region.
type Municipality struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Country is a country the store knows about.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
