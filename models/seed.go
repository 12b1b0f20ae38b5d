package models

import (
	"github.com/lib/pq"
)

// SeedHotels returns the static catalog loaded at startup. Order is
// significant: search and filter results preserve it.
func SeedHotels() []Hotel {
	return []Hotel{
		{
			ID:          "m1",
			Name:        "The Taj Mahal Palace",
			City:        "Mumbai",
			Address:     "Apollo Bunder, Colaba, Mumbai",
			Description: "Historic luxury hotel with stunning sea views and exceptional service.",
			Price:       18500,
			Rating:      4.8,
			RatingCount: 2145,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1566073771259-6a8506099945",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b",
			},
			Amenities: pq.StringArray{"Free WiFi", "Pool", "Spa", "Restaurant", "Room Service"},
			Featured:  true,
		},
		{
			ID:          "m2",
			Name:        "The Oberoi Mumbai",
			City:        "Mumbai",
			Address:     "Nariman Point, Mumbai",
			Description: "Contemporary luxury hotel with panoramic views of the Arabian Sea.",
			Price:       16500,
			Rating:      4.7,
			RatingCount: 1890,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9",
				"https://images.unsplash.com/photo-1566073771259-6a8506099945",
			},
			Amenities: pq.StringArray{"Free WiFi", "Pool", "Spa", "Restaurant", "Gym"},
			Featured:  true,
		},
		{
			ID:          "m3",
			Name:        "Trident Nariman Point",
			City:        "Mumbai",
			Address:     "Nariman Point, Mumbai",
			Description: "Elegant hotel with stunning views of Marine Drive.",
			Price:       12000,
			Rating:      4.5,
			RatingCount: 1560,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1618773928121-c32242e63f39",
				"https://images.unsplash.com/photo-1590490360182-c33d57733427",
			},
			Amenities: pq.StringArray{"Free WiFi", "Restaurant", "Gym", "Room Service"},
		},
		{
			ID:          "p1",
			Name:        "JW Marriott Pune",
			City:        "Pune",
			Address:     "Senapati Bapat Road, Pune",
			Description: "Luxurious 5-star hotel with world-class amenities.",
			Price:       12500,
			Rating:      4.6,
			RatingCount: 1780,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1615460549969-36fa19521a4f",
				"https://images.unsplash.com/photo-1578683010236-d716f9a3f461",
			},
			Amenities: pq.StringArray{"Free WiFi", "Pool", "Spa", "Restaurant", "Gym"},
			Featured:  true,
		},
		{
			ID:          "p2",
			Name:        "The Westin Pune",
			City:        "Pune",
			Address:     "Koregaon Park, Pune",
			Description: "Elegant hotel with serene surroundings and premium amenities.",
			Price:       11000,
			Rating:      4.5,
			RatingCount: 1450,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1566073771259-6a8506099945",
				"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa",
			},
			Amenities: pq.StringArray{"Free WiFi", "Pool", "Restaurant", "Gym", "Room Service"},
			Featured:  true,
		},
		{
			ID:          "p3",
			Name:        "Novotel Pune",
			City:        "Pune",
			Address:     "Nagar Road, Pune",
			Description: "Modern hotel with comfortable accommodations and convenient location.",
			Price:       7500,
			Rating:      4.3,
			RatingCount: 1230,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1576354302919-96748cb8299e",
				"https://images.unsplash.com/photo-1578683010236-d716f9a3f461",
			},
			Amenities: pq.StringArray{"Free WiFi", "Restaurant", "Gym", "Room Service"},
		},
		{
			ID:          "n1",
			Name:        "Radisson Blu Nagpur",
			City:        "Nagpur",
			Address:     "Wardha Road, Nagpur",
			Description: "Contemporary hotel offering comfortable stays with excellent service.",
			Price:       8500,
			Rating:      4.4,
			RatingCount: 980,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa",
				"https://images.unsplash.com/photo-1566073771259-6a8506099945",
			},
			Amenities: pq.StringArray{"Free WiFi", "Pool", "Restaurant", "Gym"},
			Featured:  true,
		},
		{
			ID:          "n2",
			Name:        "Le Meridien Nagpur",
			City:        "Nagpur",
			Address:     "Airport Road, Nagpur",
			Description: "Sophisticated hotel with premium amenities and elegant design.",
			Price:       9500,
			Rating:      4.5,
			RatingCount: 870,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1611892440504-42a792e24d32",
				"https://images.unsplash.com/photo-1618773928121-c32242e63f39",
			},
			Amenities: pq.StringArray{"Free WiFi", "Pool", "Spa", "Restaurant", "Gym"},
			Featured:  true,
		},
		{
			ID:          "n3",
			Name:        "The Pride Hotel Nagpur",
			City:        "Nagpur",
			Address:     "IT Park, Nagpur",
			Description: "Comfort and convenience in the heart of the city.",
			Price:       6500,
			Rating:      4.2,
			RatingCount: 750,
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1568084680786-a84f91d1153c",
				"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa",
			},
			Amenities: pq.StringArray{"Free WiFi", "Restaurant", "Gym", "Room Service"},
		},
	}
}

// SeedHolidays returns the default holiday calendar used when the
// holidays table is empty.
func SeedHolidays() []Holiday {
	return []Holiday{
		{Name: "Republic Day", Date: "26/01/2024"},
		{Name: "Independence Day", Date: "15/08/2024"},
		{Name: "Gandhi Jayanti", Date: "02/10/2024"},
		{Name: "Christmas", Date: "25/12/2024"},
	}
}
