package http

import (
	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/analytics"
	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/domain/ticket"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/infrastructure/repository"
	"github.com/darna-inc/darna/internal/shared/db"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo         user.Repository
	profileRepo      user.ProfileRepository
	planRepo         subscription.PlanRepository
	subscriptionRepo subscription.SubscriptionRepository
	propertyRepo     property.Repository
	favoriteRepo     property.FavoriteRepository
	propertyTypeRepo property.TypeRepository
	tagRepo          property.TagRepository
	ticketRepo       ticket.TicketRepository
	messageRepo      message.Repository
	analyticsRepo    analytics.Repository

	txManager *db.TransactionManager
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(gdb *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(gdb, log),
		profileRepo:      repository.NewProfileRepository(gdb, log),
		planRepo:         repository.NewPlanRepository(gdb, log),
		subscriptionRepo: repository.NewSubscriptionRepository(gdb, log),
		propertyRepo:     repository.NewPropertyRepository(gdb, log),
		favoriteRepo:     repository.NewFavoriteRepository(gdb),
		propertyTypeRepo: repository.NewPropertyTypeRepository(gdb, log),
		tagRepo:          repository.NewTagRepository(gdb),
		ticketRepo:       repository.NewTicketRepository(gdb, log),
		messageRepo:      repository.NewMessageRepository(gdb, log),
		analyticsRepo:    repository.NewAnalyticsRepository(gdb, log),

		txManager: db.NewTransactionManager(gdb),
	}
}
