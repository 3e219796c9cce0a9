package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Public URL folders for publication pages and their default assets.
const (
	PubsURLFolder   = "pubs"
	PapersURLFolder = "files/papers"
	ImagesURLFolder = "images/pubs"
)

// PublicationURL is the rendered page of a publication: /pubs/<slug>/.
func PublicationURL(slug string) string {
	return usagePath(PubsURLFolder, slug) + "/"
}

// DefaultPDFPath is /files/papers/<slug>.pdf.
func DefaultPDFPath(slug string) string {
	return usagePath(PapersURLFolder, slug+".pdf")
}

// DefaultImagePath is /images/pubs/<slug>.png.
func DefaultImagePath(slug string) string {
	return usagePath(ImagesURLFolder, slug+".png")
}

func usagePath(folder, name string) string {
	p := "/" + strings.Trim(folder, "/") + "/" + name
	return strings.ReplaceAll(p, "//", "/")
}

// TitleFromSlug turns "my-first-paper" into "My First Paper".
func TitleFromSlug(slug string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(slug, "-", " "))
}
