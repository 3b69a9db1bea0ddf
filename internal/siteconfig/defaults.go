package siteconfig

// Default returns the built-in roofing contractor vertical. A site config
// file overrides any of these fields to retarget the directory.
func Default() *Config {
	return &Config{
		Name:              "RoofCompare",
		Domain:            "roofcompare.com",
		Tagline:           "Compare Roofing Contractors Near You",
		Description:       "Find and compare roofing contractors, get estimates for roof repair, replacement, and inspections from trusted local pros.",
		ContactEmail:      "hello@roofcompare.com",
		NotificationEmail: "fred@tunajam.com",
		Industry: Industry{
			Singular:          "Roofing Contractor",
			Plural:            "Roofing Contractors",
			Slug:              "roofing-contractor",
			CompanyNoun:       "contractor",
			CompanyNounPlural: "contractors",
			ServiceVerb:       "hire",
		},
		ServiceOptions: ServiceOptions{
			Label: "Service Type",
			Options: []ServiceOption{
				{Value: 1, Label: "Inspection", Icon: "🔍", Description: "Comprehensive roof assessment and condition report", Capacity: "$150–$400"},
				{Value: 2, Label: "Repair", Icon: "🔧", Description: "Leak fixes, shingle replacement, flashing repair", Capacity: "$300–$1,500"},
				{Value: 3, Label: "Partial Re-roof", Icon: "🏗️", Description: "Section replacement for localized damage", Capacity: "$3,000–$8,000"},
				{Value: 4, Label: "Full Replacement", Icon: "🏠", Description: "Complete tear-off and new roof installation", Capacity: "$8,000–$25,000+"},
			},
		},
		Steps: []Step{
			{Title: "Search Your City", Description: "Enter your city to see local roofing contractors."},
			{Title: "Compare Estimates", Description: "View side-by-side pricing, ratings, and specialties."},
			{Title: "Get a Free Estimate", Description: "Request a free estimate directly from the contractor."},
		},
		Theme: Theme{
			Primary:      "#1e293b",
			PrimaryLight: "#334155",
			PrimaryDark:  "#0f172a",
			Accent:       "#2563eb",
			AccentLight:  "#3b82f6",
			AccentDark:   "#1d4ed8",
		},
		SEO: SEO{
			CityTitle:          "{industryPlural} in {city}, {state} — Compare {count} Local Pros | {siteName}",
			CityDescription:    "Compare {count} roofing contractors in {city}, {state}. Get free estimates for roof repair, replacement, and inspections.",
			CompanyTitle:       "{companyName} — Roofing Contractor in {city}, {state} | {siteName}",
			CompanyDescription: "{companyName} offers roof repair, replacement, and inspections in {city}, {state}. Compare pricing and read reviews.",
		},
		Hero: Hero{
			Heading:           `Compare Roofing\nContractors Near You`,
			Subheading:        "Stop calling around. Find the best roofing contractors in your area — compare estimates, ratings, and specialties side by side.",
			SearchPlaceholder: "Enter your city (e.g. Houston, Denver)",
			SearchButton:      "Find Roofers →",
		},
		QuoteForm: QuoteForm{
			Heading:        "Get a Free Estimate",
			Subheading:     "Fill out the form and {companyName} will contact you with a detailed estimate.",
			SubmitButton:   "Get My Free Estimate →",
			SuccessMessage: "{companyName} will get back to you within 1 business day.",
			Fields:         []string{"name", "phone", "email", "serviceOption", "message"},
		},
		Blog: Blog{
			Title:       "Roofing Blog",
			Description: "Expert advice on roof replacement costs, repair tips, and maintenance guides.",
		},
		Monetization: Monetization{
			Ads: Ads{Enabled: true, TopSlot: true, SidebarSlot: true},
			ClaimListing: ClaimListing{
				Enabled:    true,
				Heading:    "Is this your business?",
				Subheading: "Claim this listing to update your info, add real pricing, respond to quotes, and get a verified badge.",
				ButtonText: "Claim This Listing — It's Free",
			},
			LeadCapture: LeadCapture{
				Enabled:        true,
				Heading:        "Get Free Quotes",
				Subheading:     "Tell us what you need and get quotes from top-rated local companies.",
				ButtonText:     "Get My Free Quotes →",
				SuccessMessage: "Thanks! Local companies will reach out within 1 business day.",
			},
		},
	}
}
