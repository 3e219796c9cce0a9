package services

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"labsite/pkg/models"

	"github.com/goodsign/monday"
)

// NoPublicationsPlaceholder is the whole feature include when there is
// nothing to feature.
const NoPublicationsPlaceholder = "_Aucune publication trouvée._\n"

const (
	readLabel     = "Lire"
	homepageLabel = "Page personnelle"
)

// RenderFeature renders the featured publication include. A nil publication
// renders NoPublicationsPlaceholder.
func RenderFeature(pub *models.Publication) string {
	if pub == nil {
		return NoPublicationsPlaceholder
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n", html.EscapeString(pub.Title))
	fmt.Fprintf(&b, "*%s*\n\n", pub.SortDate.Format(isoDateLayout))
	fmt.Fprintf(&b, "[%s](%s){.btn .btn-primary .me-2}\n", readLabel, pub.URL)
	fmt.Fprintf(&b, "[PDF](%s){.btn .btn-outline-secondary}\n", pub.PDF)
	return b.String()
}

type memberPageHeader struct {
	Title      string `yaml:"title"`
	PageLayout string `yaml:"page-layout"`
	Class      string `yaml:"class"`
}

// Links are template.URL so the template attribute-escapes them without
// filtering schemes such as data: or whatsapp:.
type socialButton struct {
	Key  string
	URL  template.URL
	Icon template.HTML
}

type publicationCard struct {
	Title    string
	Subtitle string
	Date     string
	URL      template.URL
	PDF      template.URL
	Image    template.URL
}

type memberView struct {
	Name          string
	Role          string
	Photo         template.URL
	Bio           string
	URL           template.URL
	HomepageLabel string
	Socials       []socialButton
	Publications  []publicationCard
}

var memberBody = template.Must(template.New("member").Parse(`<div class='member-hero'>
{{- if .Photo}}
<img class='member-hero-photo' src='{{.Photo}}' alt='{{.Name}}'>
{{- end}}
<div class='member-hero-text'>
<h1 class='member-hero-name'>{{.Name}}</h1>
{{- if .Role}}
<div class='member-hero-role'>{{.Role}}</div>
{{- end}}
{{- if or .URL .Socials}}
<div class='member-hero-actions'>
{{- if .URL}}
<a href='{{.URL}}'>{{.HomepageLabel}}</a>
{{- end}}
{{- if .Socials}}
<div class='socials'>{{range .Socials}}<a href='{{.URL}}' class='btn-icon btn-{{.Key}}' aria-label='{{.Key}}'>{{.Icon}}</a>{{end}}</div>
{{- end}}
</div>
{{- end}}
{{- if .Bio}}
<p class='member-hero-bio'>{{.Bio}}</p>
{{- end}}
</div></div>
{{- if .Publications}}

## Publications
<div class="member-pubs">
{{- range .Publications}}
` + "```{=html}" + `
<div class="member-pub">
{{- if .Image}}
  <a class="thumb" href="{{.URL}}"><img src="{{.Image}}" alt=""></a>
{{- end}}
  <div class="meta">
    <h3 class="t"><a href="{{.URL}}">{{.Title}}</a></h3>
{{- if .Subtitle}}
    <div class='s'>{{.Subtitle}}</div>
{{- end}}
{{- if .Date}}
    <div class='d'>{{.Date}}</div>
{{- end}}
{{- if .PDF}}
    <div class="links">
      <a class='btn-pdf' href='{{.PDF}}'>PDF</a>
    </div>
{{- end}}
  </div>
</div>
` + "```" + `
{{- end}}
</div>
{{- end}}
`))

// RenderMemberPage renders the profile page of m listing pubs in the given
// order. Dates are shown with the month names of locale.
func RenderMemberPage(m models.Member, pubs []models.Publication, locale monday.Locale) (string, error) {
	view := memberView{
		Name:          strings.TrimSpace(m.Name),
		Role:          strings.TrimSpace(m.Role),
		Photo:         link(m.Photo),
		Bio:           strings.TrimSpace(m.Bio),
		URL:           link(m.URL),
		HomepageLabel: homepageLabel,
	}

	for _, platform := range socialPlatforms {
		href := link(m.Social[platform.Key])
		if href == "" {
			continue
		}
		view.Socials = append(view.Socials, socialButton{Key: platform.Key, URL: href, Icon: platform.Icon})
	}

	for _, p := range pubs {
		view.Publications = append(view.Publications, publicationCard{
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Date:     FormatDateLocalized(p.Date, locale),
			URL:      link(p.URL),
			PDF:      link(p.PDF),
			Image:    link(p.Image),
		})
	}

	var body strings.Builder
	if err := memberBody.Execute(&body, view); err != nil {
		return "", fmt.Errorf("render member %s: %w", m.ID, err)
	}

	page, err := ConstructFileContent(memberPageHeader{
		Title:      view.Name,
		PageLayout: "full",
		Class:      "memberpage",
	}, body.String())
	if err != nil {
		return "", fmt.Errorf("render member %s header: %w", m.ID, err)
	}
	return string(page), nil
}

func link(s string) template.URL {
	return template.URL(strings.TrimSpace(s))
}
