package siteconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Industry holds the vertical-specific vocabulary substituted into copy.
type Industry struct {
	Singular          string `mapstructure:"singular"`
	Plural            string `mapstructure:"plural"`
	Slug              string `mapstructure:"slug"`
	CompanyNoun       string `mapstructure:"company_noun"`
	CompanyNounPlural string `mapstructure:"company_noun_plural"`
	ServiceVerb       string `mapstructure:"service_verb"`
}

// ServiceOption is one entry of the enumerated service catalog. Option
// values are the tier identifiers referenced by company service entries.
type ServiceOption struct {
	Value       int    `mapstructure:"value"`
	Label       string `mapstructure:"label"`
	Icon        string `mapstructure:"icon"`
	Description string `mapstructure:"description"`
	Capacity    string `mapstructure:"capacity"`
}

// ServiceOptions describes the catalog and its presentation label.
type ServiceOptions struct {
	Label   string          `mapstructure:"label"`
	Unit    string          `mapstructure:"unit"`
	Options []ServiceOption `mapstructure:"options"`
}

// Step is one entry of the "how it works" section on the home page.
type Step struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

// Theme carries the color palette used by pages and OG images.
type Theme struct {
	Primary      string `mapstructure:"primary"`
	PrimaryLight string `mapstructure:"primary_light"`
	PrimaryDark  string `mapstructure:"primary_dark"`
	Accent       string `mapstructure:"accent"`
	AccentLight  string `mapstructure:"accent_light"`
	AccentDark   string `mapstructure:"accent_dark"`
}

// SEO holds the placeholder templates rendered into page titles and
// descriptions.
type SEO struct {
	CityTitle          string `mapstructure:"city_title"`
	CityDescription    string `mapstructure:"city_description"`
	CompanyTitle       string `mapstructure:"company_title"`
	CompanyDescription string `mapstructure:"company_description"`
}

// Hero is the home page search section copy.
type Hero struct {
	Heading           string `mapstructure:"heading"`
	Subheading        string `mapstructure:"subheading"`
	SearchPlaceholder string `mapstructure:"search_placeholder"`
	SearchButton      string `mapstructure:"search_button"`
}

// QuoteForm configures the per-company quote request form.
type QuoteForm struct {
	Heading        string   `mapstructure:"heading"`
	Subheading     string   `mapstructure:"subheading"`
	SubmitButton   string   `mapstructure:"submit_button"`
	SuccessMessage string   `mapstructure:"success_message"`
	Fields         []string `mapstructure:"fields"`
}

// Blog holds the blog index copy.
type Blog struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

// LeadCapture configures the city-page lead form.
type LeadCapture struct {
	Enabled        bool   `mapstructure:"enabled"`
	Heading        string `mapstructure:"heading"`
	Subheading     string `mapstructure:"subheading"`
	ButtonText     string `mapstructure:"button_text"`
	SuccessMessage string `mapstructure:"success_message"`
}

// ClaimListing configures the claim-this-listing block on company pages.
type ClaimListing struct {
	Enabled    bool   `mapstructure:"enabled"`
	Heading    string `mapstructure:"heading"`
	Subheading string `mapstructure:"subheading"`
	ButtonText string `mapstructure:"button_text"`
}

// Ads toggles the ad slots rendered on listing pages.
type Ads struct {
	Enabled     bool `mapstructure:"enabled"`
	TopSlot     bool `mapstructure:"top_slot"`
	SidebarSlot bool `mapstructure:"sidebar_slot"`
}

// Monetization groups the optional revenue features.
type Monetization struct {
	Ads          Ads          `mapstructure:"ads"`
	ClaimListing ClaimListing `mapstructure:"claim_listing"`
	LeadCapture  LeadCapture  `mapstructure:"lead_capture"`
}

// Config is the single configuration object parameterizing the directory to
// a vertical. Everything the presentation layer needs comes from here.
type Config struct {
	Name              string         `mapstructure:"name"`
	Domain            string         `mapstructure:"domain"`
	Tagline           string         `mapstructure:"tagline"`
	Description       string         `mapstructure:"description"`
	ContactEmail      string         `mapstructure:"contact_email"`
	NotificationEmail string         `mapstructure:"notification_email"`
	Industry          Industry       `mapstructure:"industry"`
	ServiceOptions    ServiceOptions `mapstructure:"service_options"`
	Steps             []Step         `mapstructure:"steps"`
	Theme             Theme          `mapstructure:"theme"`
	SEO               SEO            `mapstructure:"seo"`
	Hero              Hero           `mapstructure:"hero"`
	QuoteForm         QuoteForm      `mapstructure:"quote_form"`
	Blog              Blog           `mapstructure:"blog"`
	Monetization      Monetization   `mapstructure:"monetization"`
}

// ServiceOptionByValue resolves a tier identifier against the catalog.
func (c *Config) ServiceOptionByValue(value int) (ServiceOption, bool) {
	for _, opt := range c.ServiceOptions.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return ServiceOption{}, false
}

// BaseURL is the canonical https origin for absolute links.
func (c *Config) BaseURL() string {
	return "https://" + c.Domain
}

// Load reads the site configuration file, falling back to the built-in
// roofing vertical when no file exists at path.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read site config %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode site config %s: %w", path, err)
	}
	return cfg, nil
}
