package taxonomy

// Default returns the built-in residential real-estate taxonomy. The
// theme and keyword ordering is load-bearing: tie-breaks in count and
// growth tables follow it.
func Default() *Taxonomy {
	t, err := New(defaultThemes)
	if err != nil {
		// defaultThemes is static and validated by tests; a failure
		// here is a programming error.
		panic(err)
	}
	return t
}

var defaultThemes = []Theme{
	{Name: "Sustainability", Keywords: []string{
		"Solar System", "Energy-efficient", "Solar Energy", "Eco-friendly",
		"Renewable Energy", "Sustainable materials", "Water saving",
		"LEED certification", "Green Building", "Passive design",
		"Rainwater harvesting", "Greywater system", "Composting facilities",
		"Energy star products", "Solar panels", "Energy-efficient appliances",
		"LED lighting", "Low-flow fixtures", "Programmable thermostats",
		"Efficient insulation", "Energy-efficient windows", "Sustainable flooring",
		"Water-saving faucets", "Water-saving showerheads", "LEED",
		"Recycled content", "Salvaged wood", "Cork flooring", "Hemp insulation",
		"Sustainable concrete", "Rammed earth walls", "Bamboo flooring",
		"Clay plaster", "Sustainable Energy",
	}},
	{Name: "Smart Home Technology", Keywords: []string{
		"Home Automation", "Voice control", "Smart Sensors", "Smart Connectivity",
		"Remote access", "Smart security", "Energy monitoring", "App-based control",
		"Smart locks", "Energy management systems", "Voice assistant",
		"Smart meters", "Automated lighting", "Smart blinds", "Smart shades",
		"Remote surveillance", "Motion sensors", "Home energy monitoring",
		"Remote camera", "Smart home features", "Virtual concierge app",
		"Smart Home",
	}},
	{Name: "Health & Wellness Spaces", Keywords: []string{
		"Meditation rooms", "Spa facilities", "Health club", "Wellness center",
		"Wellness classes", "Hydrotherapy", "Saunas", "Massage therapy",
		"Nutritional counseling", "General Wellness",
	}},
	{Name: "House Features", Keywords: []string{
		"Open floor plan", "Granite countertops", "Stainless steel appliances",
		"Hardwood floors", "Walk-in closets", "Master suite", "Soaking tub",
		"Fireplace", "Outdoor living space", "Attached garage", "High ceilings",
		"Pantry", "Laundry room", "Bonus room", "Covered patio",
		"Central air conditioning", "Kitchen island", "Breakfast bar",
		"Walk-in pantry", "Recessed lighting", "Crown molding", "Home office",
		"Mudroom", "Wine cellar", "Wine fridge", "Jetted bathtub", "Home theater",
		"Storage space", "Built-in shelving", "Media room", "Sunroom", "Wet bar",
		"Gas fireplace", "Heated floors", "Vaulted ceilings", "Custom cabinetry",
		"Enclosed porch", "Nanny room", "Spacious living area", "Dining area",
		"Top notch features", "Exquisite space", "Terrace", "Balcony",
		"Large windows", "Modern kitchen", "Open-plan kitchen", "Open-plan living",
		"Wood floors", "Cycle storage", "Open-plan reception", "Private garden",
		"Basement Access", "Roof Access",
	}},
	{Name: "Interior Style", Keywords: []string{
		"Luxury flooring", "Neutral color palette", "Architectural details",
		"Statement feature walls", "Tile work", "Trendy backsplash designs",
		"Cozy", "Attention to detail", "Modern Interiors", "Classic Interiors",
		"Bohemian Interiors", "Contemporary Interiors", "Minimalist Interiors",
		"Industrial Interiors", "Farmhouse", "Scandinavian Interiors",
		"Mediterranean Interiors", "Victorian Interiors", "Craftsman",
		"Mid-Century Modern Interiors", "Eclectic Interiors",
		"Transitional Interiors", "Rustic Interiors", "Coastal Interiors",
		"Colonial Interiors", "Art Deco", "Tudor Interiors",
		"Asian-inspired Interiors", "Luxury design", "Luxury interior",
		"Timeless Interiors", "Prestigious Brands", "Award-winning Interiors",
		"Luxurious décor", "Chic Interiors", "Semi-custom Interiors",
		"Custom homes", "General Interior Design",
	}},
	{Name: "Sports & Recreation Facilities", Keywords: []string{
		"Tennis", "Basketball", "Football", "Baseball", "Volleyball", "Swimming",
		"Fitness center", "Running track", "Golf Club", "Yoga", "Cycling paths",
		"Outdoor gym", "CrossFit area", "Climbing wall", "Gym", "Dance studio",
		"Pool", "Aerobics room", "Personal training", "Billiards room",
		"Sports courts", "Cycling trail", "Fitness classes",
		"Group sports tournaments", "Group workout", "Bike lanes", "Bike racks",
		"Running trails", "General fitness facilities",
	}},
	{Name: "Safety", Keywords: []string{
		"Gated community", "Gated entry", "Security patrols", "Access control",
		"Security cameras", "Emergency call", "Neighborhood watch",
		"On-site security", "Perimeter fencing", "Motion-sensor lighting",
		"Alarm systems", "Fire safety", "Visitor management", "Intercom system",
		"Crime prevention", "Emergency response", "Evacuation plan",
		"Safety meetings", "Controlled access", "Secure parking",
		"Well-lit pathways", "General security", "General safety",
		"Security alarms",
	}},
	{Name: "Entertainment", Keywords: []string{
		"Gaming", "Events", "Game room", "Movie theater", "Playground",
		"Picnic area", "BBQ grills", "BBQ area", "Social events", "Craft nights",
		"Community parties", "Live music", "Outdoor concerts",
		"Holiday celebrations", "Cooking classes", "Outdoor movie nights",
		"Pool parties", "Art workshops", "Cultural festivals", "Talent shows",
		"Cultural events", "Cinema", "Comedy shows", "Family game nights",
		"Coffee bar", "Bars", "Cafes", "Lounge", "Non-alcoholic bar",
		"General entertainment",
	}},
	{Name: "Working Space", Keywords: []string{
		"Co-working space", "Business center", "Conference rooms",
		"Private offices", "High-speed internet", "Printing facility",
		"Photocopying facility", "Workstations", "Quiet zones", "Lounge areas",
		"Meeting pods", "Collaborative workspaces", "Networking events",
		"Business workshops", "Seminars", "Workspaces",
	}},
	{Name: "Greenery", Keywords: []string{
		"Garden", "Parks", "Nature trails", "Green belts", "Arboretum",
		"Botanical gardens", "Green rooftops", "Urban forests", "Rain gardens",
		"Meditation gardens", "Butterfly gardens", "Greenery", "Green space",
		"Shade trees", "Flowering gardens", "Orchards", "Community orchards",
		"Tree-lined streets", "Rooftop gardens", "Trees", "Flowers", "Park",
		"Green vibes", "Green living", "Nature", "Lagoon", "River",
	}},
	{Name: "Pet-friendly Amenities", Keywords: []string{
		"Dog park", "Pet grooming", "Pet trails", "Pet waste stations",
		"Pet clinic", "Pet events", "Pet spa", "Pet friendly",
	}},
	{Name: "Accessibility for People of Determination", Keywords: []string{
		"Accessible entrances", "Wheelchair ramps", "Elevators",
		"Handicap parking", "Roll-in showers", "Lowered countertops",
		"Accessible pathways", "Visual fire alarms", "Hearing loop systems",
		"Accessible fitness equipment", "Accessible swimming pool",
		"Disability-friendly landscaping",
	}},
	{Name: "Children Amenities", Keywords: []string{
		"Playground", "Splash pad", "Kids' club", "Children's pool", "Nursery",
		"Outdoor play area", "Childcare center", "Kid-friendly events",
		"Babysitting services", "Scooter lanes", "Children's library",
		"Storytime sessions", "Kid-friendly trails", "Summer camps",
		"Teen center", "School bus stop", "Kid-friendly facilities",
	}},
	{Name: "Parking Amenities", Keywords: []string{
		"Garage", "Covered parking", "Underground parking", "Driveway parking",
		"Carport", "Assigned parking spaces", "Guest parking",
		"Electric vehicle charging stations", "Secured parking", "Valet parking",
		"Bicycle storage", "Oversized garage", "Tandem parking",
		"Remote-controlled garage door", "Garage storage cabinets",
		"On-street parking", "Parking permits", "Car wash stations",
		"Parking space",
	}},
	{Name: "Views", Keywords: []string{
		"Panoramic views", "City skyline", "Mountain view", "Waterfront",
		"Park views", "Golf course view", "Lake view", "Oceanfront",
		"Forest views", "Sunset views", "Sunrise views", "Valley views",
		"Nature vistas", "River views", "Coastal panoramas", "Scenic overlooks",
		"Stunning views", "Lagoon views", "Golf views", "Nature view",
		"Beachfront", "Burj Khalifa view",
	}},
	{Name: "Location Connectivity & Access", Keywords: []string{
		"Quick access", "Highway access", "School accessibility",
		"Accessibility to malls", "City centre", "Walking distances",
		"Minutes’ drive away", "Good connectivity", "Metro accessibility",
		"Train accessibility", "Bus accessibility", "Prime location",
	}},
	{Name: "LifeStyle Messaging & Identity", Keywords: []string{
		"Luxury", "Modern living", "Convenience living", "City living",
		"Built for perfection", "Elegant ambiance", "Prime living", "Elegant",
		"First-class", "Comfort living", "Beach living", "World-class amenities",
		"Modern lifestyles", "Luxurious living", "Urban lifestyle",
		"Comfortable lifestyle", "Prestigious",
	}},
	{Name: "Types of residential properties", Keywords: []string{
		"Townhouse", "Penthouse", "Apartment", "Glasshouse",
		"Single-family home", "Duplex", "Villa", "Cottage", "Bungalow", "Loft",
		"Studio apartment", "Mobile home", "Mansion", "Ranch-style house",
		"Row house", "Tiny house", "Cluster home",
	}},
	{Name: "Branded Developments", Keywords: []string{
		"Branded launches", "Branded residences", "Branded projects",
		"Branded community", "Branded communities", "Armani", "Fendi",
		"Missoni", "Versace", "Bulgari", "Baccarat", "Porsche", "Bentley",
		"Bugatti", "Aston Martin",
	}},
}
