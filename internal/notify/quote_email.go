package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/octobees/roofcompare/internal/entity"
	"github.com/octobees/roofcompare/internal/siteconfig"
)

const quoteEmailTemplate = `<h2>New Quote Request</h2>
<table style="border-collapse:collapse;font-family:sans-serif;">
  <tr><td style="padding:4px 12px 4px 0;font-weight:bold;">Company</td><td>{{.CompanyName}}</td></tr>
  <tr><td style="padding:4px 12px 4px 0;font-weight:bold;">Customer</td><td>{{.Name}}</td></tr>
  <tr><td style="padding:4px 12px 4px 0;font-weight:bold;">Email</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
  <tr><td style="padding:4px 12px 4px 0;font-weight:bold;">Phone</td><td><a href="tel:{{.Phone}}">{{.Phone}}</a></td></tr>
  <tr><td style="padding:4px 12px 4px 0;font-weight:bold;">{{.ServiceLabel}}</td><td>{{.ServiceOption}}</td></tr>
{{- if .Message}}
  <tr><td style="padding:4px 12px 4px 0;font-weight:bold;">Message</td><td>{{.Message}}</td></tr>
{{- end}}
</table>
<p style="margin-top:16px;color:#666;font-size:13px;">
  <a href="{{.ListingURL}}">View listing</a>
</p>
`

var quoteEmail = template.Must(template.New("quote_email").Parse(quoteEmailTemplate))

type quoteEmailData struct {
	CompanyName   string
	Name          string
	Email         string
	Phone         string
	ServiceLabel  string
	ServiceOption string
	Message       string
	ListingURL    string
}

// BuildQuoteEmail renders the operator notification for a quote request.
// The message row is omitted entirely when the submitter left it blank.
func BuildQuoteEmail(site *siteconfig.Config, submission entity.Submission) (EmailMessage, error) {
	// Sized verticals (e.g. storage) qualify the selected option with the
	// catalog unit; the roofing default leaves it empty.
	service := submission.ServiceOption
	if service != "" && site.ServiceOptions.Unit != "" {
		service += " " + site.ServiceOptions.Unit
	}

	data := quoteEmailData{
		CompanyName:   submission.CompanyName,
		Name:          submission.Name,
		Email:         submission.Email,
		Phone:         submission.Phone,
		ServiceLabel:  site.ServiceOptions.Label,
		ServiceOption: service,
		Message:       submission.Message,
		ListingURL:    site.BaseURL() + "/company/" + submission.CompanySlug,
	}

	var body bytes.Buffer
	if err := quoteEmail.Execute(&body, data); err != nil {
		return EmailMessage{}, fmt.Errorf("render quote email: %w", err)
	}

	return EmailMessage{
		From:    fmt.Sprintf("%s <notifications@%s>", site.Name, site.Domain),
		To:      []string{site.NotificationEmail},
		Subject: fmt.Sprintf("📥 New Quote Request: %s (%s)", submission.CompanyName, service),
		HTML:    body.String(),
	}, nil
}
