package render

import (
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/octobees/roofcompare/internal/entity"
	"github.com/octobees/roofcompare/internal/siteconfig"
)

// CompanyJSONLD builds the LocalBusiness structured data for a company page.
func CompanyJSONLD(site *siteconfig.Config, company entity.Company) template.JS {
	doc := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"name":        company.Name,
		"description": company.Description,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": company.City,
			"addressRegion":   company.State,
		},
	}
	if company.Phone != "" {
		doc["telephone"] = company.Phone
	}
	if company.Website != "" {
		doc["url"] = company.Website
	}
	return marshalJSONLD(doc)
}

// CityJSONLD builds the ItemList structured data for a city listing page.
func CityJSONLD(site *siteconfig.Config, cityName, stateName string, companies []entity.Company) template.JS {
	items := make([]map[string]any, 0, len(companies))
	for i, c := range companies {
		business := map[string]any{
			"@type": "LocalBusiness",
			"name":  c.Name,
			"url":   site.BaseURL() + "/company/" + c.Slug,
		}
		if c.Address != "" {
			business["address"] = c.Address
		}
		if c.Phone != "" {
			business["telephone"] = c.Phone
		}
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     business,
		})
	}

	doc := map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            fmt.Sprintf("%s %s in %s, %s", site.Industry.Singular, site.Industry.CompanyNounPlural, cityName, stateName),
		"itemListElement": items,
	}
	return marshalJSONLD(doc)
}

// BlogJSONLD builds the Blog structured data for the blog index.
func BlogJSONLD(site *siteconfig.Config, blogTitle string) template.JS {
	doc := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Blog",
		"name":        blogTitle,
		"url":         site.BaseURL() + "/blog",
		"description": site.Render(site.Blog.Description, map[string]string{"industry": site.Industry.Singular}),
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  site.Name,
			"url":   site.BaseURL(),
		},
	}
	return marshalJSONLD(doc)
}

func marshalJSONLD(doc map[string]any) template.JS {
	data, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return template.JS(data)
}
