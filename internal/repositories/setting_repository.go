package repositories

import (
	"context"
	"net/url"

	"accessitrip/internal/infra"
	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
)

type SettingRepository interface {
	ListSettings(ctx context.Context) ([]response_models.Setting, error)
}

type settingRepository struct {
	client *infra.APIClient
}

func NewSettingRepository(client *infra.APIClient) SettingRepository {
	return &settingRepository{client: client}
}

func (r *settingRepository) ListSettings(ctx context.Context) ([]response_models.Setting, error) {
	var settings []response_models.Setting
	if err := r.client.Get(ctx, "/api/settings", &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

type UserSettingRepository interface {
	ListUserSettings(ctx context.Context) ([]response_models.UserSetting, error)
	CreateUserSetting(ctx context.Context, request request_models.UserSettingRequest) (*response_models.UserSetting, error)
	UpdateUserSetting(ctx context.Context, id string, request request_models.UserSettingRequest) (*response_models.UserSetting, error)
}

type userSettingRepository struct {
	client *infra.APIClient
}

func NewUserSettingRepository(client *infra.APIClient) UserSettingRepository {
	return &userSettingRepository{client: client}
}

func (r *userSettingRepository) ListUserSettings(ctx context.Context) ([]response_models.UserSetting, error) {
	var overrides []response_models.UserSetting
	if err := r.client.Get(ctx, "/api/user-settings", &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *userSettingRepository) CreateUserSetting(ctx context.Context, request request_models.UserSettingRequest) (*response_models.UserSetting, error) {
	var created response_models.UserSetting
	if err := r.client.Post(ctx, "/api/user-settings", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *userSettingRepository) UpdateUserSetting(ctx context.Context, id string, request request_models.UserSettingRequest) (*response_models.UserSetting, error) {
	var updated response_models.UserSetting
	if err := r.client.Put(ctx, "/api/user-settings/"+url.PathEscape(id), request, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
