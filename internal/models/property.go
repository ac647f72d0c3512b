package models

// Property types accepted on create/update.
var PropertyTypes = []string{"Apartments", "Villas", "Penthouses", "Independent Houses", "Lands"}

type Property struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	City         string   `json:"city"`
	Area         string   `json:"area"`
	PropertyType string   `json:"propertyType"`
	Price        string   `json:"price"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Sqft         int      `json:"sqft"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	Latitude     *string  `json:"latitude"`
	Longitude    *string  `json:"longitude"`
	Status       string   `json:"status"`
	Featured     int      `json:"featured"`
	OwnerID      string   `json:"ownerId"`
}

// PropertyFilter narrows the listing endpoint. Zero values mean "no filter".
type PropertyFilter struct {
	City         string
	Area         string
	PropertyType string
	Status       string
	Featured     *int
	MinPrice     float64
	MaxPrice     float64
}

func isPropertyType(t string) bool {
	for _, pt := range PropertyTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// ValidateProperty checks the shape of a create/update payload. Status and
// ownership are decided by the service layer, not validated here.
func ValidateProperty(p Property) error {
	switch {
	case p.Title == "":
		return &ValidationError{Field: "title", Message: "Title is required"}
	case p.Description == "":
		return &ValidationError{Field: "description", Message: "Description is required"}
	case p.City == "":
		return &ValidationError{Field: "city", Message: "City is required"}
	case p.Area == "":
		return &ValidationError{Field: "area", Message: "Area is required"}
	case p.PropertyType == "":
		return &ValidationError{Field: "propertyType", Message: "Property type is required"}
	case !isPropertyType(p.PropertyType):
		return &ValidationError{Field: "propertyType", Message: "Unknown property type"}
	case p.Price == "":
		return &ValidationError{Field: "price", Message: "Price is required"}
	case p.Sqft <= 0:
		return &ValidationError{Field: "sqft", Message: "Sqft must be positive"}
	case p.Featured != 0 && p.Featured != 1:
		return &ValidationError{Field: "featured", Message: "Featured must be 0 or 1"}
	}
	return nil
}
