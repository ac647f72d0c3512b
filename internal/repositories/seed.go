package repositories

import (
	"estateBack/internal/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// SeedProperties returns the fixture listings loaded at process start.
func SeedProperties() []models.Property {
	return []models.Property{
		{
			Title:        "Elegant 4BHK Penthouse with City View",
			Description:  "Experience luxury living in this spacious 4BHK penthouse featuring panoramic city views, private terrace, and premium amenities. Ideal for families seeking comfort and style.",
			City:         "Tirupati",
			Area:         "City Center",
			PropertyType: "Apartments",
			Price:        "12500000",
			Bedrooms:     intPtr(4),
			Bathrooms:    intPtr(4),
			Sqft:         3200,
			Images:       []string{"https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd?w=1200"},
			Amenities:    []string{"Private Terrace", "Gym", "Swimming Pool", "24/7 Security", "Parking", "Smart Home Features"},
			Latitude:     strPtr("13.6285"),
			Longitude:    strPtr("79.4200"),
			Status:       "available",
			Featured:     1,
		},
		{
			Title:        "Luxury 3BHK Villa in Renigunta Road",
			Description:  "Spacious luxury villa with modern amenities, premium fittings, and beautiful landscaped gardens. Located in the heart of Tirupati with excellent connectivity to all major landmarks.",
			City:         "Tirupati",
			Area:         "Renigunta Road",
			PropertyType: "Villas",
			Price:        "8500000",
			Bedrooms:     intPtr(3),
			Bathrooms:    intPtr(3),
			Sqft:         2500,
			Images:       []string{"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200"},
			Amenities:    []string{"Swimming Pool", "Gym", "24/7 Security", "Power Backup", "Parking", "Garden"},
			Latitude:     strPtr("13.6288"),
			Longitude:    strPtr("79.4192"),
			Status:       "available",
			Featured:     1,
		},
		{
			Title:        "Modern 2BHK Apartment Near Tirumala",
			Description:  "Well-designed 2BHK apartment with contemporary interiors, located near the spiritual city of Tirumala. Perfect for families seeking a peaceful environment.",
			City:         "Tirupati",
			Area:         "Alipiri",
			PropertyType: "Apartments",
			Price:        "4500000",
			Bedrooms:     intPtr(2),
			Bathrooms:    intPtr(2),
			Sqft:         1200,
			Images:       []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=1200"},
			Amenities:    []string{"Lift", "Parking", "Security", "Water Supply", "Intercom"},
			Latitude:     strPtr("13.6503"),
			Longitude:    strPtr("79.4189"),
			Status:       "available",
			Featured:     1,
		},
		{
			Title:        "Spacious Independent House in Gandhi Nagar",
			Description:  "Beautiful independent house with ample space for family living. Features a large compound, modern kitchen, and well-ventilated rooms.",
			City:         "Tirupati",
			Area:         "Gandhi Nagar",
			PropertyType: "Independent Houses",
			Price:        "6500000",
			Bedrooms:     intPtr(3),
			Bathrooms:    intPtr(2),
			Sqft:         2000,
			Images:       []string{"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=1200"},
			Amenities:    []string{"Parking", "Garden", "Bore Well", "Solar Panels", "Compound Wall"},
			Latitude:     strPtr("13.6352"),
			Longitude:    strPtr("79.4192"),
			Status:       "available",
		},
		{
			Title:        "Cozy 1BHK Apartment in University Area",
			Description:  "Compact and well-maintained 1BHK apartment perfect for students or young professionals. Located near SVU with easy access to educational institutions.",
			City:         "Tirupati",
			Area:         "SV University",
			PropertyType: "Apartments",
			Price:        "2500000",
			Bedrooms:     intPtr(1),
			Bathrooms:    intPtr(1),
			Sqft:         650,
			Images:       []string{"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200"},
			Amenities:    []string{"Parking", "Security", "Water Supply", "24/7 Power"},
			Latitude:     strPtr("13.6352"),
			Longitude:    strPtr("79.4065"),
			Status:       "available",
		},
		{
			Title:        "2BHK Furnished Apartment near Bus Stand",
			Description:  "Bright 2BHK apartment, fully furnished with modular kitchen and balcony. Close to transport, shops and schools. Suitable for small families.",
			City:         "Tirupati",
			Area:         "Bus Stand",
			PropertyType: "Apartments",
			Price:        "3800000",
			Bedrooms:     intPtr(2),
			Bathrooms:    intPtr(2),
			Sqft:         980,
			Images:       []string{"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=1200"},
			Amenities:    []string{"Lift", "Parking", "Gas Pipeline", "Security"},
			Latitude:     strPtr("13.6280"),
			Longitude:    strPtr("79.4100"),
			Status:       "available",
		},
		{
			Title:        "Family Independent House in Old Town",
			Description:  "Spacious independent house with courtyard, ideal for multigenerational families. Close-knit neighbourhood with schools and markets nearby.",
			City:         "Tirupati",
			Area:         "Old Town",
			PropertyType: "Independent Houses",
			Price:        "5200000",
			Bedrooms:     intPtr(3),
			Bathrooms:    intPtr(2),
			Sqft:         1800,
			Images:       []string{"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200"},
			Amenities:    []string{"Parking", "Garden", "Borewell", "Compound Wall"},
			Latitude:     strPtr("13.6340"),
			Longitude:    strPtr("79.4170"),
			Status:       "available",
		},
		{
			Title:        "Countryside Luxury Villa",
			Description:  "A luxury villa set amidst rolling hills with private orchard and guest house.",
			City:         "Tirupati",
			Area:         "Hillview",
			PropertyType: "Villas",
			Price:        "14500000",
			Bedrooms:     intPtr(4),
			Bathrooms:    intPtr(4),
			Sqft:         4200,
			Images:       []string{"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200"},
			Amenities:    []string{"Orchard", "Guest House", "Solar Panels"},
			Latitude:     strPtr("13.6365"),
			Longitude:    strPtr("79.4210"),
			Status:       "available",
		},
		{
			Title:        "Corner Commercial Plot",
			Description:  "High-footfall corner commercial plot ideal for retail or restaurant development.",
			City:         "Tirupati",
			Area:         "Business District",
			PropertyType: "Lands",
			Price:        "20000000",
			Sqft:         8000,
			Images:       []string{"https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=1200"},
			Amenities:    []string{"Main Road", "Electricity", "Water"},
			Latitude:     strPtr("13.6300"),
			Longitude:    strPtr("79.4150"),
			Status:       "available",
		},
	}
}

// SeedBlogs returns the fixture posts. Blogs have no write path.
func SeedBlogs() []models.Blog {
	return []models.Blog{
		{
			Title:         "7 Essential Tips for First-Time Real Estate Investors",
			Excerpt:       "Practical advice for new investors: budgeting, legal checks, location, and more. Avoid common mistakes and make smart property decisions.",
			Content:       "Investing in real estate can be a rewarding way to build wealth and secure your financial future.\n\n1. **Research the Market:** Study local trends, property prices, and future development plans.\n\n2. **Set a Realistic Budget:** Factor in not just the property cost, but also registration fees, taxes, maintenance, and possible renovation expenses.\n\n3. **Check Legal Clearances:** Ensure the property has clear titles, necessary approvals, and is free from disputes.\n\n4. **Location Matters:** Choose areas with good connectivity, infrastructure, and growth potential.\n\n5. **Inspect the Property:** Visit the site, check construction quality, amenities, and talk to neighbors.\n\n6. **Plan for the Long Term:** Real estate is best suited for long-term investment.\n\n7. **Consult Professionals:** Work with trusted agents, lawyers, and financial advisors.",
			Category:      "Investment Tips",
			Author:        "Dream Dwellings Team",
			Date:          "2025-10-13",
			FeaturedImage: "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200",
		},
		{
			Title:         "Top 10 Reasons to Invest in Tirupati Real Estate",
			Excerpt:       "Discover why Tirupati is emerging as one of the most promising real estate markets in South India. From spiritual tourism to educational hubs, learn what makes this city special.",
			Content:       "Tirupati has become a hotspot for real estate investment in recent years. Spiritual tourism keeps demand for residential and commercial properties growing, Sri Venkateswara University creates steady demand for student housing, and major road and rail connectivity improvements have enhanced accessibility and property values. Compared to metro cities, Tirupati offers excellent value, a growing IT sector, strong rental yields, and significant appreciation potential from planned metro rail and airport expansion.",
			Category:      "Investment Guide",
			Author:        "Ramesh Kumar",
			Date:          "2025-10-01",
			FeaturedImage: "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800",
		},
		{
			Title:         "Understanding Property Documentation in Andhra Pradesh",
			Excerpt:       "A comprehensive guide to essential documents you need when buying property in Tirupati. Ensure a smooth transaction with proper documentation.",
			Content:       "When buying property in Andhra Pradesh, particularly in cities like Tirupati, proper documentation is crucial. Essential documents include the sale deed registered with the Sub-Registrar office, an encumbrance certificate showing the property is free from liabilities, the last five years of property tax receipts, the municipal-approved building plan, the occupancy certificate, the mother deed showing the chain of ownership, and an NOC from the housing society where applicable. Verify the seller's identity through land records, check for pending litigation, and confirm adherence to RERA regulations before registration.",
			Category:      "Legal Guide",
			Author:        "Advocate Lakshmi Devi",
			Date:          "2025-09-28",
			FeaturedImage: "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?w=800",
		},
	}
}
