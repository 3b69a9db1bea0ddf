package entity

// ServiceTier is one offering a company advertises. Value maps to the
// enumerated service catalog defined in the site configuration.
type ServiceTier struct {
	Value      int    `json:"value"`
	PriceRange string `json:"price_range"`
}

// Company represents one directory listing loaded from the dataset file.
type Company struct {
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	City             string        `json:"city"`
	State            string        `json:"state"`
	StateSlug        string        `json:"state_slug"`
	CitySlug         string        `json:"city_slug"`
	Phone            string        `json:"phone"`
	Website          string        `json:"website"`
	Address          string        `json:"address"`
	Description      string        `json:"description"`
	Services         []ServiceTier `json:"services"`
	Amenities        []string      `json:"amenities"`
	ServiceAreaMiles int           `json:"service_area_miles"`
	Rating           float64       `json:"rating"`
	ReviewCount      int           `json:"review_count"`
	Verified         bool          `json:"verified"`
	PricingEstimated bool          `json:"pricing_estimated"`
}

// HasService reports whether the company offers the given service tier.
func (c Company) HasService(value int) bool {
	for _, s := range c.Services {
		if s.Value == value {
			return true
		}
	}
	return false
}

// City is a derived grouping of companies sharing a (state_slug, city_slug)
// pair. It is never persisted; the store recomputes it from the dataset.
type City struct {
	City      string `json:"city"`
	CitySlug  string `json:"city_slug"`
	State     string `json:"state"`
	StateSlug string `json:"state_slug"`
	Count     int    `json:"count"`
}
