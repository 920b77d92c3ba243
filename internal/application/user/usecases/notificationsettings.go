package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// UpdateNotificationSettingsCommand leaves a nil switch as stored.
type UpdateNotificationSettingsCommand struct {
	UserID   uint
	Messages *bool
	Ads      *bool
}

type UpdateNotificationSettingsUseCase struct {
	profileRepo user.ProfileRepository
	logger      logger.Interface
}

func NewUpdateNotificationSettingsUseCase(profileRepo user.ProfileRepository, logger logger.Interface) *UpdateNotificationSettingsUseCase {
	return &UpdateNotificationSettingsUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *UpdateNotificationSettingsUseCase) Execute(ctx context.Context, cmd UpdateNotificationSettingsCommand) (*dto.NotificationSettingsResponse, error) {
	settings, err := uc.profileRepo.GetNotificationSettings(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get notification settings", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	if cmd.Messages != nil {
		settings.Messages = *cmd.Messages
	}
	if cmd.Ads != nil {
		settings.Ads = *cmd.Ads
	}

	if err := uc.profileRepo.SaveNotificationSettings(ctx, cmd.UserID, settings); err != nil {
		return nil, fmt.Errorf("failed to save notification settings: %w", err)
	}

	uc.logger.Infow("notification settings updated", "user_id", cmd.UserID, "messages", settings.Messages, "ads", settings.Ads)
	return dto.ToNotificationSettingsResponse(settings), nil
}
