package repository

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/infra/collection"
	"careerlaunch/internal/infra/kvstore"
)

type PreferencesRepository struct {
	doc *collection.Document[notification.Preferences]
}

func NewPreferencesRepository(store kvstore.Store, logger *slog.Logger) *PreferencesRepository {
	return &PreferencesRepository{
		doc: collection.NewDocument[notification.Preferences](store, KeyPreferences, logger),
	}
}

// Load reports found=false when nothing usable is stored.
func (r *PreferencesRepository) Load(ctx context.Context) (notification.Preferences, bool, error) {
	prefs, found, err := r.doc.Load(ctx)
	if err != nil || !found {
		return notification.Preferences{}, false, err
	}
	if prefs.Notifications == nil {
		prefs.Notifications = map[notification.Type]notification.TypePreference{}
	}
	if prefs.Categories.FilterByIndustry == nil {
		prefs.Categories.FilterByIndustry = []string{}
	}
	return prefs, true, nil
}

func (r *PreferencesRepository) Save(ctx context.Context, prefs notification.Preferences) error {
	return r.doc.Save(ctx, prefs)
}
