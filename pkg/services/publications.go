package services

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"labsite/pkg/config"
	"labsite/pkg/models"
)

// ScanAll builds a publication for every immediate subdirectory of the
// publications root that holds a content entry file, in directory order.
// A missing root yields no publications.
func ScanAll(cfg *config.Config) ([]models.Publication, error) {
	root := cfg.PubsPath()
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read publications dir: %w", err)
	}

	var pubs []models.Publication
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if !isDir(dir) {
			continue
		}
		if pub, ok := candidateFromDir(cfg, dir); ok {
			pubs = append(pubs, pub)
		}
	}
	return pubs, nil
}

func candidateFromDir(cfg *config.Config, dir string) (models.Publication, bool) {
	name := filepath.Base(dir)
	contentPath := filepath.Join(dir, cfg.ContentFile)
	if !fileExists(contentPath) {
		return models.Publication{}, false
	}

	fm := ReadFrontMatterFile(contentPath)
	meta := ReadMetadata(filepath.Join(dir, cfg.SidecarFile))

	return models.Publication{
		Slug:      name,
		Path:      contentPath,
		Title:     firstNonEmpty(fm["title"], TitleFromSlug(name)),
		Subtitle:  fm["subtitle"],
		Date:      fm["date"],
		SortDate:  resolveSortDate(fm["date"], contentPath),
		URL:       PublicationURL(name),
		PDF:       firstNonEmpty(fm["pdf"], meta["pdf"], DefaultPDFPath(name)),
		Image:     firstNonEmpty(fm["image"], meta["image"], DefaultImagePath(name)),
		AuthorIDs: SplitIDList(fm[authorIDsKey]),
	}, true
}

// resolveSortDate falls back from the front matter date to the content file's
// modification time, then to Epoch.
func resolveSortDate(raw, contentPath string) time.Time {
	if t, ok := ParseDate(raw); ok {
		return t
	}
	if info, err := os.Stat(contentPath); err == nil && !info.ModTime().IsZero() {
		return info.ModTime()
	}
	return Epoch
}

// PickLatest returns the publication with the latest SortDate. Ties keep the
// earlier one in scan order. ok is false for an empty input.
func PickLatest(pubs []models.Publication) (latest models.Publication, ok bool) {
	if len(pubs) == 0 {
		return models.Publication{}, false
	}
	latest = pubs[0]
	for _, p := range pubs[1:] {
		if p.SortDate.After(latest.SortDate) {
			latest = p
		}
	}
	return latest, true
}

// ScanAuthored walks the publications root recursively and parses every
// content entry file with the structured front matter reader. SortDate is the
// zero time when the date cannot be parsed.
func ScanAuthored(cfg *config.Config) ([]models.Publication, error) {
	root := cfg.PubsPath()
	var pubs []models.Publication

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			slog.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || d.Name() != cfg.ContentFile {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable publication", "path", path, "error", err)
			return nil
		}
		pubs = append(pubs, publicationFromMeta(path, ParseStructuredFrontMatter(content)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk publications: %w", err)
	}
	return pubs, nil
}

func publicationFromMeta(path string, meta map[string]any) models.Publication {
	name := filepath.Base(filepath.Dir(path))
	date := StringValue(meta["date"])
	sortDate, _ := ParseDate(date)

	return models.Publication{
		Slug:      name,
		Path:      path,
		Title:     firstNonEmpty(StringValue(meta["title"]), TitleFromSlug(name)),
		Subtitle:  StringValue(meta["subtitle"]),
		Date:      date,
		SortDate:  sortDate,
		URL:       PublicationURL(name),
		PDF:       firstNonEmpty(StringValue(meta["pdf"]), DefaultPDFPath(name)),
		Image:     firstNonEmpty(StringValue(meta["image"]), DefaultImagePath(name)),
		AuthorIDs: AuthorIDs(meta[authorIDsKey]),
	}
}

// FilterByAuthor keeps the publications listing id among their authors,
// newest first. Undated publications come last; equal dates keep input order.
func FilterByAuthor(pubs []models.Publication, id string) []models.Publication {
	var out []models.Publication
	for _, p := range pubs {
		if p.HasAuthor(id) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortDate.After(out[j].SortDate)
	})
	return out
}

// ListForAuthor returns the publications of author id, newest first.
func ListForAuthor(cfg *config.Config, id string) ([]models.Publication, error) {
	pubs, err := ScanAuthored(cfg)
	if err != nil {
		return nil, err
	}
	return FilterByAuthor(pubs, id), nil
}
