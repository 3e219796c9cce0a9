package services

import (
	"strings"
	"testing"

	"labsite/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFeature_Placeholder(t *testing.T) {
	assert.Equal(t, "_Aucune publication trouvée._\n", RenderFeature(nil))
}

func TestRenderFeature(t *testing.T) {
	pub := &models.Publication{
		Slug:     "nets",
		Title:    "Nets & <Graphs>",
		SortDate: day("2024-03-15"),
		URL:      "/pubs/nets/",
		PDF:      "/files/papers/nets.pdf",
	}

	want := "### Nets &amp; &lt;Graphs&gt;\n" +
		"*2024-03-15*\n\n" +
		"[Lire](/pubs/nets/){.btn .btn-primary .me-2}\n" +
		"[PDF](/files/papers/nets.pdf){.btn .btn-outline-secondary}\n"
	assert.Equal(t, want, RenderFeature(pub))
}

func TestRenderMemberPage_Minimal(t *testing.T) {
	page, err := RenderMemberPage(models.Member{ID: "jane", Name: " Jane Doe "}, nil, "fr_FR")
	require.NoError(t, err)

	want := "---\n" +
		"title: Jane Doe\n" +
		"page-layout: full\n" +
		"class: memberpage\n" +
		"---\n\n" +
		"<div class='member-hero'>\n" +
		"<div class='member-hero-text'>\n" +
		"<h1 class='member-hero-name'>Jane Doe</h1>\n" +
		"</div></div>\n"
	assert.Equal(t, want, page)
	assert.NotContains(t, page, "member-hero-actions")
	assert.NotContains(t, page, "## Publications")
}

func TestRenderMemberPage_Socials(t *testing.T) {
	m := models.Member{
		ID:   "jane",
		Name: "Jane",
		Social: map[string]string{
			"linkedin": "https://linkedin.com/in/jane",
			"x":        "   ",
			"unknown":  "https://example.org",
		},
	}

	page, err := RenderMemberPage(m, nil, "fr_FR")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(page, "class='btn-icon"))
	assert.Contains(t, page, "<a href='https://linkedin.com/in/jane' class='btn-icon btn-linkedin' aria-label='linkedin'><svg")
	assert.Contains(t, page, "<div class='member-hero-actions'>")
	assert.NotContains(t, page, "Page personnelle")
}

func TestRenderMemberPage_SocialOrder(t *testing.T) {
	m := models.Member{
		ID:   "jane",
		Name: "Jane",
		URL:  "https://jane.example.org",
		Social: map[string]string{
			"email": "mailto:jane@example.org",
			"x":     "https://x.com/jane",
		},
	}

	page, err := RenderMemberPage(m, nil, "fr_FR")
	require.NoError(t, err)

	assert.Contains(t, page, "<a href='https://jane.example.org'>Page personnelle</a>")
	assert.Equal(t, 2, strings.Count(page, "class='btn-icon"))
	assert.Less(t, strings.Index(page, "btn-x"), strings.Index(page, "btn-email"))
}

func TestRenderMemberPage_EscapesText(t *testing.T) {
	m := models.Member{
		ID:   "jane",
		Name: "Jane",
		Role: "R&D",
		Bio:  "Works on a < b & c",
	}

	page, err := RenderMemberPage(m, nil, "fr_FR")
	require.NoError(t, err)

	assert.Contains(t, page, "<div class='member-hero-role'>R&amp;D</div>")
	assert.Contains(t, page, "<p class='member-hero-bio'>Works on a &lt; b &amp; c</p>")
}

func TestRenderMemberPage_Publications(t *testing.T) {
	pubs := []models.Publication{
		{
			Title:    "Deep Nets",
			Subtitle: "A survey",
			Date:     "2024-03-15",
			URL:      "/pubs/deep-nets/",
			PDF:      "/files/papers/deep-nets.pdf",
			Image:    "/images/pubs/deep-nets.png",
		},
		{
			Title: "Undated",
			Date:  "sometime",
			URL:   "/pubs/undated/",
		},
	}

	page, err := RenderMemberPage(models.Member{ID: "jane", Name: "Jane"}, pubs, "fr_FR")
	require.NoError(t, err)

	assert.Contains(t, page, "</div></div>\n\n## Publications\n<div class=\"member-pubs\">\n```{=html}\n")
	assert.Equal(t, 2, strings.Count(page, "```{=html}"))
	assert.Contains(t, page, `<a class="thumb" href="/pubs/deep-nets/"><img src="/images/pubs/deep-nets.png" alt=""></a>`)
	assert.Contains(t, page, "<div class='s'>A survey</div>")
	assert.Contains(t, page, "<div class='d'>15 mars 2024</div>")
	assert.Contains(t, page, "<div class='d'>sometime</div>")
	assert.Equal(t, 1, strings.Count(page, "class='btn-pdf'"))
	assert.Equal(t, 1, strings.Count(page, `class="thumb"`))
	assert.True(t, strings.HasSuffix(page, "```\n</div>\n"))
	assert.Less(t, strings.Index(page, "Deep Nets"), strings.Index(page, "Undated"))
}

func TestRenderMemberPage_KeepsLinkSchemes(t *testing.T) {
	m := models.Member{
		ID:    "jane",
		Name:  "Jane",
		Photo: "data:image/png;base64,AAAA",
		Social: map[string]string{
			"wh": "whatsapp://send?phone=33600000000&text=Bonjour",
		},
	}
	pubs := []models.Publication{
		{Title: "Paper", URL: "/pubs/paper/", PDF: "ftp://files.example.org/paper.pdf"},
	}

	page, err := RenderMemberPage(m, pubs, "fr_FR")
	require.NoError(t, err)

	assert.NotContains(t, page, "ZgotmplZ")
	assert.Contains(t, page, "<img class='member-hero-photo' src='data:image/png;base64,AAAA' alt='Jane'>")
	assert.Contains(t, page, "<a href='whatsapp://send?phone=33600000000&amp;text=Bonjour' class='btn-icon btn-wh'")
	assert.Contains(t, page, "href='ftp://files.example.org/paper.pdf'>PDF</a>")
}

func TestRenderMemberPage_LinksStayInsideAttribute(t *testing.T) {
	m := models.Member{ID: "jane", Name: "Jane", URL: "https://jane.example.org/' onclick='x"}

	page, err := RenderMemberPage(m, nil, "fr_FR")
	require.NoError(t, err)

	assert.NotContains(t, page, "' onclick='")
	assert.Contains(t, page, "<a href='https://jane.example.org/%27%20onclick=%27x'>")
}
