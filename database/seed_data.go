package database

import "github.com/Madhav-Gupta-28/sportsmart-backend-go/models"

const placeholderImage = "/uploads/products/placeholder.png"

func seedLocations() []models.Location {
	return []models.Location{
		{State: "Andhra Pradesh", Cities: []string{"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Kurnool"}},
		{State: "Arunachal Pradesh", Cities: []string{"Itanagar", "Tawang", "Ziro", "Bomdila"}},
		{State: "Assam", Cities: []string{"Guwahati", "Dispur", "Dibrugarh", "Silchar", "Jorhat"}},
		{State: "Bihar", Cities: []string{"Patna", "Gaya", "Bhagalpur", "Muzaffarpur", "Purnia"}},
		{State: "Chhattisgarh", Cities: []string{"Raipur", "Bhilai", "Bilaspur", "Korba", "Durg"}},
		{State: "Goa", Cities: []string{"Panaji", "Margao", "Vasco da Gama", "Mapusa"}},
		{State: "Gujarat", Cities: []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Gandhinagar"}},
		{State: "Haryana", Cities: []string{"Faridabad", "Gurugram", "Panipat", "Ambala", "Karnal"}},
		{State: "Himachal Pradesh", Cities: []string{"Shimla", "Manali", "Dharamshala", "Solan", "Kullu"}},
		{State: "Jharkhand", Cities: []string{"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro Steel City"}},
		{State: "Karnataka", Cities: []string{"Bengaluru", "Mysuru", "Hubballi", "Mangaluru", "Belagavi"}},
		{State: "Kerala", Cities: []string{"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam"}},
		{State: "Madhya Pradesh", Cities: []string{"Indore", "Bhopal", "Jabalpur", "Gwalior", "Ujjain"}},
		{State: "Maharashtra", Cities: []string{"Mumbai", "Pune", "Nagpur", "Thane", "Nashik"}},
		{State: "Manipur", Cities: []string{"Imphal", "Bishnupur", "Thoubal"}},
		{State: "Meghalaya", Cities: []string{"Shillong", "Tura", "Jowai"}},
		{State: "Mizoram", Cities: []string{"Aizawl", "Lunglei", "Champhai"}},
		{State: "Nagaland", Cities: []string{"Kohima", "Dimapur", "Mokokchung"}},
		{State: "Odisha", Cities: []string{"Bhubaneswar", "Cuttack", "Rourkela", "Puri", "Sambalpur"}},
		{State: "Punjab", Cities: []string{"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Chandigarh"}},
		{State: "Rajasthan", Cities: []string{"Jaipur", "Jodhpur", "Udaipur", "Kota", "Bikaner"}},
		{State: "Sikkim", Cities: []string{"Gangtok", "Namchi", "Gyalshing"}},
		{State: "Tamil Nadu", Cities: []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"}},
		{State: "Telangana", Cities: []string{"Hyderabad", "Warangal", "Nizamabad", "Karimnagar", "Khammam"}},
		{State: "Tripura", Cities: []string{"Agartala", "Udaipur", "Dharmanagar"}},
		{State: "Uttar Pradesh", Cities: []string{"Lucknow", "Kanpur", "Ghaziabad", "Agra", "Varanasi", "Meerut"}},
		{State: "Uttarakhand", Cities: []string{"Dehradun", "Haridwar", "Rishikesh", "Nainital"}},
		{State: "West Bengal", Cities: []string{"Kolkata", "Asansol", "Siliguri", "Durgapur", "Howrah"}},
		{State: "Andaman and Nicobar Islands", Cities: []string{"Port Blair"}},
		{State: "Chandigarh", Cities: []string{"Chandigarh"}},
		{State: "Dadra and Nagar Haveli and Daman and Diu", Cities: []string{"Daman", "Silvassa"}},
		{State: "Delhi", Cities: []string{"New Delhi", "Delhi"}},
		{State: "Jammu and Kashmir", Cities: []string{"Srinagar", "Jammu", "Anantnag"}},
		{State: "Ladakh", Cities: []string{"Leh", "Kargil"}},
		{State: "Lakshadweep", Cities: []string{"Kavaratti"}},
		{State: "Puducherry", Cities: []string{"Puducherry", "Karaikal"}},
	}
}

type seedCategory struct {
	Name string
	Slug string
}

type seedCategoryGroup struct {
	seedCategory
	Children []seedCategory
}

// Slugs are fixed here rather than derived so storefront links stay stable.
var seedCategoryGroups = []seedCategoryGroup{
	{seedCategory{"Team Sports", "team-sports"}, []seedCategory{
		{"Cricket", "cricket"},
		{"Football", "football"},
		{"Basketball", "basketball"},
		{"Volleyball", "volleyball"},
		{"Hockey", "hockey"},
	}},
	{seedCategory{"Racquet Sports", "racquet-sports"}, []seedCategory{
		{"Badminton", "badminton"},
		{"Tennis", "tennis"},
		{"Table Tennis", "table-tennis"},
		{"Squash", "squash"},
	}},
	{seedCategory{"Fitness & Training", "fitness-training"}, []seedCategory{
		{"Gym Equipment", "gym-equipment"},
		{"Yoga & Pilates", "yoga-pilates"},
		{"Strength Training", "strength-training"},
		{"Cardio Equipment", "cardio-equipment"},
	}},
	{seedCategory{"Athletics & Running", "athletics-running"}, []seedCategory{
		{"Running Shoes", "running-shoes"},
		{"Track & Field", "track-field"},
		{"Apparel", "running-apparel"},
	}},
	{seedCategory{"Outdoor & Adventure", "outdoor-adventure"}, []seedCategory{
		{"Cycling", "cycling"},
		{"Skateboarding", "skateboarding"},
		{"Hiking & Camping", "hiking-camping"},
	}},
	{seedCategory{"Combat Sports", "combat-sports"}, []seedCategory{
		{"Boxing", "boxing"},
		{"Wrestling", "wrestling"},
		{"Martial Arts", "martial-arts"},
	}},
	{seedCategory{"Water Sports", "water-sports"}, []seedCategory{
		{"Swimming", "swimming"},
		{"Surfing", "surfing"},
	}},
	{seedCategory{"Indoor & Table Games", "indoor-games"}, []seedCategory{
		{"Carrom", "carrom"},
		{"Chess", "chess"},
		{"Darts", "darts"},
	}},
}

type seedProduct struct {
	CategoryName string
	Product      models.Product
}

func opt(name, value string) models.VariantOption {
	return models.VariantOption{Name: name, Value: value}
}

func seedProducts() []seedProduct {
	return []seedProduct{
		{"Cricket", models.Product{
			Name:        "SG Cricket Bat - Kashmir Willow",
			Description: "A high-quality Kashmir Willow cricket bat for professional players.",
			ImageURL:    placeholderImage,
			Offer:       models.SimpleOffer{Price: models.NewMoney(2499), Stock: 50},
		}},
		{"Football", models.Product{
			Name:        "Nivia Storm Football - Size 5",
			Description: "Durable, all-weather football suitable for training and matches.",
			ImageURL:    placeholderImage,
			Offer:       models.SimpleOffer{Price: models.NewMoney(899), Stock: 150},
		}},
		{"Gym Equipment", models.Product{
			Name:        "Pro-Fit Training T-Shirt",
			Description: "A breathable, sweat-wicking t-shirt perfect for any workout.",
			ImageURL:    placeholderImage,
			Offer: models.VariantOffer{
				OptionNames: []string{"Color", "Size"},
				Variants: []models.Variant{
					{SKU: "TS-BLK-M", Options: []models.VariantOption{opt("Color", "Black"), opt("Size", "M")}, Price: models.NewMoney(799), Stock: 100},
					{SKU: "TS-BLK-L", Options: []models.VariantOption{opt("Color", "Black"), opt("Size", "L")}, Price: models.NewMoney(799), Stock: 120},
					{SKU: "TS-BLU-M", Options: []models.VariantOption{opt("Color", "Blue"), opt("Size", "M")}, Price: models.NewMoney(849), Stock: 80},
				},
			},
		}},
		{"Badminton", models.Product{
			Name:        "Yonex Badminton Racquet",
			Description: "Lightweight and powerful racquet for intermediate players.",
			ImageURL:    placeholderImage,
			Offer: models.VariantOffer{
				OptionNames: []string{"Grip Size"},
				Variants: []models.Variant{
					{SKU: "YBR-G4", Options: []models.VariantOption{opt("Grip Size", "G4")}, Price: models.NewMoney(1999), Stock: 40},
					{SKU: "YBR-G5", Options: []models.VariantOption{opt("Grip Size", "G5")}, Price: models.NewMoney(1999), Stock: 35},
				},
			},
		}},
	}
}
