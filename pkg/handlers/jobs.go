package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"labsite/pkg/config"
	"labsite/pkg/models"
	"labsite/pkg/services"

	"github.com/goodsign/monday"
)

// HandleFeature writes the featured publication include.
func HandleFeature(cfg *config.Config) error {
	out := cfg.FeaturePath()
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("create feature dir: %w", err)
	}

	pubs, err := services.ScanAll(cfg)
	if err != nil {
		return err
	}

	var featured *models.Publication
	if latest, ok := services.PickLatest(pubs); ok {
		featured = &latest
		slog.Info("featured publication", "slug", latest.Slug, "date", latest.SortDate.Format("2006-01-02"))
	} else {
		slog.Info("no publications to feature", "path", cfg.PubsPath())
	}

	if _, err := services.WriteIfChanged(out, []byte(services.RenderFeature(featured))); err != nil {
		return fmt.Errorf("write feature: %w", err)
	}
	return nil
}

// HandleMembers writes one page per roster member and returns how many were
// written. A missing roster fails the job before anything is written.
func HandleMembers(cfg *config.Config) (int, error) {
	roster, err := services.LoadRoster(cfg.RosterPath())
	if err != nil {
		return 0, err
	}

	pubs, err := services.ScanAuthored(cfg)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(cfg.MembersOutPath(), 0755); err != nil {
		return 0, fmt.Errorf("create members dir: %w", err)
	}

	locale := monday.Locale(cfg.Locale)
	owners := make(map[string]string)
	n := 0
	for _, m := range roster.Members {
		id := m.ID.String()
		if id == "" {
			slog.Warn("skipping member without id", "name", m.Name)
			continue
		}
		out, err := services.MemberPagePath(cfg, id)
		if err != nil {
			slog.Warn("skipping member", "member", id, "error", err)
			continue
		}
		if owner, taken := owners[out]; taken {
			slog.Warn("skipping member, page name already used", "member", id, "by", owner, "path", out)
			continue
		}
		owners[out] = id

		page, err := services.RenderMemberPage(m, services.FilterByAuthor(pubs, id), locale)
		if err != nil {
			slog.Warn("skipping member", "member", id, "error", err)
			continue
		}
		if _, err := services.WriteIfChanged(out, []byte(page)); err != nil {
			return n, fmt.Errorf("write member page %s: %w", id, err)
		}
		n++
	}

	slog.Info("member pages generated", "count", n)
	return n, nil
}

// HandlePubMeta backfills the default sidecar entries of every publication.
func HandlePubMeta(cfg *config.Config) (int, error) {
	n, err := services.BackfillMetadata(cfg)
	if err != nil {
		return 0, err
	}
	slog.Info("sidecars updated", "count", n)
	return n, nil
}

// HandleAll runs the sidecar backfill, the feature include and the member
// pages in that order. A failing job does not stop the next one.
func HandleAll(cfg *config.Config) error {
	var errs []error
	if _, err := HandlePubMeta(cfg); err != nil {
		errs = append(errs, fmt.Errorf("pub-meta: %w", err))
	}
	if err := HandleFeature(cfg); err != nil {
		errs = append(errs, fmt.Errorf("feature: %w", err))
	}
	if _, err := HandleMembers(cfg); err != nil {
		errs = append(errs, fmt.Errorf("members: %w", err))
	}
	return errors.Join(errs...)
}

// HandleWatch runs HandleAll, then again whenever the publications tree or the
// roster directory changes, until ctx is done.
func HandleWatch(ctx context.Context, cfg *config.Config, debounce time.Duration) error {
	regenerate := func() {
		if err := HandleAll(cfg); err != nil {
			slog.Error("regeneration failed", "error", err)
		}
	}
	regenerate()

	// sidecar writes come from pub-meta itself
	accept := func(path string) bool { return filepath.Base(path) != cfg.SidecarFile }

	w, err := services.NewWatcher(debounce, accept, regenerate)
	if err != nil {
		return err
	}

	watched := 0
	if err := w.AddRecursive(cfg.PubsPath()); err != nil {
		slog.Warn("cannot watch publications", "path", cfg.PubsPath(), "error", err)
	} else {
		watched++
	}
	if err := w.Add(filepath.Dir(cfg.RosterPath())); err != nil {
		slog.Warn("cannot watch roster directory", "path", filepath.Dir(cfg.RosterPath()), "error", err)
	} else {
		watched++
	}
	if watched == 0 {
		w.Close()
		return fmt.Errorf("nothing to watch under %s", cfg.Root)
	}

	slog.Info("watching for changes", "pubs", cfg.PubsPath(), "roster", cfg.RosterPath())
	return w.Run(ctx)
}
