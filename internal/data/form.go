package data

// FormField is one input on the listing details form
type FormField struct {
	Label string
	Help  string
}

// FormFields returns the listing details form in display order
func FormFields() []FormField {
	return []FormField{
		{Label: "Property Type", Help: "e.g. condo, single-family home, townhouse"},
		{Label: "Address", Help: "street address of the listing"},
		{Label: "City"},
		{Label: "Neighborhood"},
		{Label: "Bedrooms"},
		{Label: "Bathrooms"},
		{Label: "Sqft", Help: "interior square footage"},
		{Label: "Price", Help: "asking price, formatted as you want it to appear"},
		{Label: "HOA Fee", Help: "monthly HOA dues, if any"},
		{Label: "Year Built"},
		{Label: "Lot Size"},
		{Label: "School District"},
		{Label: "Key Features", Help: "comma-separated highlights"},
		{Label: "Neighborhood Characteristics"},
		{Label: "Lifestyle Benefits"},
		{Label: "Word Count", Help: "target length of the generated copy"},
		{Label: "Date"},
		{Label: "Start Time"},
		{Label: "End Time"},
		{Label: "Lead Source", Help: "where the lead came from, e.g. Zillow"},
	}
}
