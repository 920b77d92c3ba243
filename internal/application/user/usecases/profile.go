package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/domain/user"
	vo "github.com/darna-inc/darna/internal/domain/user/valueobjects"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// GetProfileUseCase loads the caller's own account with its side records.
type GetProfileUseCase struct {
	userRepo    user.Repository
	profileRepo user.ProfileRepository
	logger      logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, profileRepo user.ProfileRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.ProfileResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	resp, err := loadProfile(ctx, uc.profileRepo, u)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "error", err, "user_id", userID)
		return nil, err
	}
	settings, err := uc.profileRepo.GetNotificationSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification settings: %w", err)
	}
	resp.NotificationSettings = dto.ToNotificationSettingsResponse(settings)
	return resp, nil
}

func loadProfile(ctx context.Context, profiles user.ProfileRepository, u *user.User) (*dto.ProfileResponse, error) {
	sm, err := profiles.GetSocialMedia(ctx, u.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load social media: %w", err)
	}
	ba, err := profiles.GetBusinessAccount(ctx, u.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load business account: %w", err)
	}
	return dto.ToProfileResponse(u, sm, ba), nil
}

// UpdateProfileCommand replaces the account details. SocialMedia and
// BusinessAccount are left as stored when nil.
type UpdateProfileCommand struct {
	UserID          uint
	FullName        string
	Email           string
	PhoneNumber     string
	PictureURL      string
	Birthday        *time.Time
	Gender          *bool
	SocialMedia     *user.SocialMedia
	BusinessAccount *user.BusinessAccount
}

type UpdateProfileUseCase struct {
	userRepo    user.Repository
	profileRepo user.ProfileRepository
	tx          TxRunner
	tokens      TokenIssuer
	identities  IdentityInvalidator
	logger      logger.Interface
}

func NewUpdateProfileUseCase(
	userRepo user.Repository,
	profileRepo user.ProfileRepository,
	tx TxRunner,
	tokens TokenIssuer,
	identities IdentityInvalidator,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tx:          tx,
		tokens:      tokens,
		identities:  identities,
		logger:      logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.ProfileResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	if cmd.BusinessAccount != nil && !user.CanHoldBusinessAccount(u.Role()) {
		return nil, errors.NewForbiddenError("only agencies, developers and admins can have a business account")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}
	previousEmail := u.Email().String()
	emailChanged := email.String() != previousEmail
	if emailChanged {
		taken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if taken {
			return nil, errors.NewConflictError("email already registered")
		}
	}

	profile := user.Profile{PictureURL: cmd.PictureURL, Birthday: cmd.Birthday, Gender: cmd.Gender}
	if err := u.UpdateDetails(cmd.FullName, email, cmd.PhoneNumber, profile); err != nil {
		return nil, errors.NewValidationError("invalid profile", err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Update(ctx, u); err != nil {
			return err
		}
		if cmd.SocialMedia != nil {
			if err := uc.profileRepo.SaveSocialMedia(ctx, u.ID(), *cmd.SocialMedia); err != nil {
				return err
			}
		}
		if cmd.BusinessAccount != nil {
			if err := uc.profileRepo.SaveBusinessAccount(ctx, u.ID(), *cmd.BusinessAccount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case stderrors.Is(err, user.ErrEmailAlreadyExists):
			return nil, errors.NewConflictError("email already registered")
		case stderrors.Is(err, user.ErrUserNotFound):
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	uc.identities.Forget(previousEmail)

	resp, err := loadProfile(ctx, uc.profileRepo, u)
	if err != nil {
		return nil, err
	}
	if emailChanged {
		token, expiresIn, err := uc.tokens.IssueToken(u.Email().String(), u.Role())
		if err != nil {
			uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		resp.AccessToken, resp.ExpiresIn = token, expiresIn
	}

	uc.logger.Infow("profile updated", "user_id", u.ID(), "email_changed", emailChanged)
	return resp, nil
}
