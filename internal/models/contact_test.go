package models

import "testing"

func TestContactFormValidate(t *testing.T) {
	valid := ContactForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "9876543210",
		Message: "Interested in the villa listing",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error for a valid form: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*ContactForm)
		wantField string
	}{
		{"short name", func(f *ContactForm) { f.Name = "J" }, "name"},
		{"name only spaces", func(f *ContactForm) { f.Name = "   " }, "name"},
		{"missing at sign", func(f *ContactForm) { f.Email = "jane.example.com" }, "email"},
		{"at sign first", func(f *ContactForm) { f.Email = "@example.com" }, "email"},
		{"at sign last", func(f *ContactForm) { f.Email = "jane@" }, "email"},
		{"short phone", func(f *ContactForm) { f.Phone = "12345" }, "phone"},
		{"short message", func(f *ContactForm) { f.Message = "hi" }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			err := form.Validate()
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Fatalf("got field %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidateProperty(t *testing.T) {
	valid := Property{
		Title:        "Lakeview Apartment",
		Description:  "Two bedroom apartment with lake view",
		City:         "Tirupati",
		Area:         "Tiruchanur",
		PropertyType: "Apartments",
		Price:        "4500000",
		Sqft:         1200,
	}
	if err := ValidateProperty(valid); err != nil {
		t.Fatalf("unexpected error for a valid property: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*Property)
		wantField string
	}{
		{"missing title", func(p *Property) { p.Title = "" }, "title"},
		{"missing description", func(p *Property) { p.Description = "" }, "description"},
		{"missing city", func(p *Property) { p.City = "" }, "city"},
		{"missing area", func(p *Property) { p.Area = "" }, "area"},
		{"unknown type", func(p *Property) { p.PropertyType = "Castles" }, "propertyType"},
		{"missing price", func(p *Property) { p.Price = "" }, "price"},
		{"zero sqft", func(p *Property) { p.Sqft = 0 }, "sqft"},
		{"negative sqft", func(p *Property) { p.Sqft = -10 }, "sqft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			property := valid
			tt.mutate(&property)
			err := ValidateProperty(property)
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Fatalf("got field %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}
