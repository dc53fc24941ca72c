package services

import (
	"context"
	"fmt"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/models/view_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/observable"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type SettingsServiceInterface interface {
	UserID() string
	Settings() observable.Readable[[]view_models.UserSettingRow]
	Loading() observable.Readable[bool]
	Err() observable.Readable[string]
	LoadSettings(ctx context.Context)
	PostUserSetting(ctx context.Context, settingID string, value bool)
	Close()
}

// SettingsService joins the global setting catalog with one user's overrides.
type SettingsService struct {
	*taskScope
	settingRepo     repositories.SettingRepository
	userSettingRepo repositories.UserSettingRepository
	log             logrus.FieldLogger
	userID          string
	rows            *observable.Value[[]view_models.UserSettingRow]
	loading         *observable.Value[bool]
	err             *observable.Value[string]
}

func NewSettingsService(
	settingRepo repositories.SettingRepository,
	userSettingRepo repositories.UserSettingRepository,
	userID string,
	opts ...Option,
) *SettingsService {
	o := newOptions("settings", opts)
	s := &SettingsService{
		taskScope:       newTaskScope(),
		settingRepo:     settingRepo,
		userSettingRepo: userSettingRepo,
		log:             o.logger.WithField("user_id", userID),
		userID:          userID,
		rows:            observable.NewValue[[]view_models.UserSettingRow](nil),
		loading:         observable.NewValue(false),
		err:             observable.NewValue(""),
	}
	if !o.skipInitialFetch {
		s.launch(s.LoadSettings)
	}
	return s
}

func (s *SettingsService) UserID() string {
	return s.userID
}

func (s *SettingsService) Settings() observable.Readable[[]view_models.UserSettingRow] {
	return s.rows
}

func (s *SettingsService) Loading() observable.Readable[bool] {
	return s.loading
}

func (s *SettingsService) Err() observable.Readable[string] {
	return s.err
}

// LoadSettings needs both the catalog and the overrides; if either call
// fails the rows keep their previous value.
func (s *SettingsService) LoadSettings(ctx context.Context) {
	s.loading.Set(true)
	s.err.Set("")
	defer s.loading.Set(false)

	var (
		catalog   []response_models.Setting
		overrides []response_models.UserSetting
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = s.settingRepo.ListSettings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		overrides, err = s.userSettingRepo.ListUserSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.WithError(err).Error("failed to load settings")
		s.err.Set(fmt.Sprintf("Failed to load settings: %s", err.Error()))
		return
	}

	s.rows.Set(buildSettingRows(catalog, overrides, s.userID))
}

func buildSettingRows(catalog []response_models.Setting, overrides []response_models.UserSetting, userID string) []view_models.UserSettingRow {
	bySetting := make(map[string]response_models.UserSetting, len(overrides))
	for _, o := range overrides {
		if o.UserID == userID {
			bySetting[o.SettingID] = o
		}
	}

	rows := make([]view_models.UserSettingRow, 0, len(catalog))
	for _, setting := range catalog {
		row := view_models.UserSettingRow{
			SettingID: setting.ID,
			Label:     setting.Label,
			Value:     setting.DefaultValue,
		}
		if o, ok := bySetting[setting.ID]; ok {
			row.ID = o.ID
			row.Value = o.Value
		}
		rows = append(rows, row)
	}
	return rows
}

// PostUserSetting updates an existing override or creates one when the row
// has no id yet. A created override's id is kept on the row so the next
// change goes out as an update.
func (s *SettingsService) PostUserSetting(ctx context.Context, settingID string, value bool) {
	overrideID := ""
	for _, row := range s.rows.Get() {
		if row.SettingID == settingID {
			overrideID = row.ID
			break
		}
	}

	request := request_models.UserSettingRequest{
		UserID:    s.userID,
		SettingID: settingID,
		Value:     value,
	}

	var (
		saved *response_models.UserSetting
		err   error
	)
	if overrideID != "" {
		saved, err = s.userSettingRepo.UpdateUserSetting(ctx, overrideID, request)
	} else {
		saved, err = s.userSettingRepo.CreateUserSetting(ctx, request)
	}
	if err != nil {
		s.log.WithError(err).WithField("setting_id", settingID).Error("failed to save user setting")
		return
	}

	s.rows.Update(func(current []view_models.UserSettingRow) []view_models.UserSettingRow {
		next := make([]view_models.UserSettingRow, len(current))
		copy(next, current)
		for i := range next {
			if next[i].SettingID != settingID {
				continue
			}
			next[i].Value = value
			if next[i].ID == "" && saved != nil {
				next[i].ID = saved.ID
			}
		}
		return next
	})
}
