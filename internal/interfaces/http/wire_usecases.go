package http

import (
	analyticsUsecases "github.com/darna-inc/darna/internal/application/analytics/usecases"
	chatUsecases "github.com/darna-inc/darna/internal/application/chat/usecases"
	"github.com/darna-inc/darna/internal/application/notification"
	propertyUsecases "github.com/darna-inc/darna/internal/application/property/usecases"
	subscriptionUsecases "github.com/darna-inc/darna/internal/application/subscription/usecases"
	ticketUsecases "github.com/darna-inc/darna/internal/application/ticket/usecases"
	userUsecases "github.com/darna-inc/darna/internal/application/user/usecases"
	"github.com/darna-inc/darna/internal/infrastructure/auth"
	"github.com/darna-inc/darna/internal/infrastructure/email"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/services/markdown"
)

// allUseCases holds the application use cases, grouped by bounded context.
type allUseCases struct {
	// User
	signUpUC  *userUsecases.SignUpUseCase
	signInUC  *userUsecases.SignInUseCase
	getUserUC *userUsecases.GetUserUseCase

	// Accounts
	getProfileUC           *userUsecases.GetProfileUseCase
	updateProfileUC        *userUsecases.UpdateProfileUseCase
	changePasswordUC       *userUsecases.ChangePasswordUseCase
	notificationSettingsUC *userUsecases.UpdateNotificationSettingsUseCase
	listUsersUC            *userUsecases.ListUsersUseCase
	createUserUC           *userUsecases.CreateUserUseCase
	deleteUserUC           *userUsecases.DeleteUserUseCase

	// Plan catalog
	createPlanUC *subscriptionUsecases.CreatePlanUseCase
	updatePlanUC *subscriptionUsecases.UpdatePlanUseCase
	listPlansUC  *subscriptionUsecases.ListPlansUseCase
	deletePlanUC *subscriptionUsecases.DeletePlanUseCase

	// Subscription ledger
	createSubscriptionUC *subscriptionUsecases.CreateSubscriptionUseCase
	updateSubscriptionUC *subscriptionUsecases.UpdateSubscriptionUseCase
	listSubscriptionsUC  *subscriptionUsecases.ListSubscriptionsUseCase
	getMySubscriptionUC  *subscriptionUsecases.GetMySubscriptionUseCase

	// Property
	createPropertyUC *propertyUsecases.CreatePropertyUseCase
	updatePropertyUC *propertyUsecases.UpdatePropertyUseCase
	deletePropertyUC *propertyUsecases.DeletePropertyUseCase
	getPropertyUC    *propertyUsecases.GetPropertyUseCase
	listPropertiesUC *propertyUsecases.ListPropertiesUseCase
	incrementViewsUC *propertyUsecases.IncrementViewsUseCase
	toggleFavoriteUC *propertyUsecases.ToggleFavoriteUseCase
	catalogUC        *propertyUsecases.CatalogUseCase
	createTypeUC     *propertyUsecases.CreatePropertyTypeUseCase
	updateTypeUC     *propertyUsecases.UpdatePropertyTypeUseCase
	deleteTypeUC     *propertyUsecases.DeletePropertyTypeUseCase
	tagsUC           *propertyUsecases.TagsUseCase

	// Ticket
	createTicketUC *ticketUsecases.CreateTicketUseCase
	listTicketsUC  *ticketUsecases.ListTicketsUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase

	// Chat
	sendMessageUC  *chatUsecases.SendMessageUseCase
	conversationUC *chatUsecases.ConversationUseCase
	inboxUC        *chatUsecases.InboxUseCase
	markReadUC     *chatUsecases.MarkReadUseCase

	// Analytics
	dashboardUC    *analyticsUsecases.GetDashboardUseCase
	generalStatsUC *analyticsUsecases.GetGeneralStatsUseCase
}

// newUseCases builds every use case from the repositories and services
// created in the earlier sections. It also creates the ticket answered
// notification handler, which shares the markdown renderer and the registry.
func (c *Container) newUseCases() *allUseCases {
	cfg := c.cfg
	log := c.log
	r := c.repos

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	renderer := markdown.NewRenderer()

	mailer := email.NewService(cfg.Email, cfg.Server.BaseURL, log)
	c.ticketNotifications = notification.NewTicketAnsweredHandler(c.registry, mailer, r.userRepo, log)

	return &allUseCases{
		signUpUC:  userUsecases.NewSignUpUseCase(r.userRepo, hasher, c.jwtSvc, log),
		signInUC:  userUsecases.NewSignInUseCase(r.userRepo, hasher, c.jwtSvc, log),
		getUserUC: userUsecases.NewGetUserUseCase(r.userRepo, log),

		getProfileUC: userUsecases.NewGetProfileUseCase(r.userRepo, r.profileRepo, log),
		updateProfileUC: userUsecases.NewUpdateProfileUseCase(
			r.userRepo, r.profileRepo, r.txManager, c.jwtSvc, c.identities, log,
		),
		changePasswordUC:       userUsecases.NewChangePasswordUseCase(r.userRepo, hasher, c.jwtSvc, c.identities, log),
		notificationSettingsUC: userUsecases.NewUpdateNotificationSettingsUseCase(r.profileRepo, log),
		listUsersUC:            userUsecases.NewListUsersUseCase(r.userRepo, log),
		createUserUC:           userUsecases.NewCreateUserUseCase(r.userRepo, hasher, authorization.AllRoles, log),
		deleteUserUC:           userUsecases.NewDeleteUserUseCase(r.userRepo, c.identities, log),

		createPlanUC: subscriptionUsecases.NewCreatePlanUseCase(r.planRepo, log),
		updatePlanUC: subscriptionUsecases.NewUpdatePlanUseCase(r.planRepo, log),
		listPlansUC:  subscriptionUsecases.NewListPlansUseCase(r.planRepo, log),
		deletePlanUC: subscriptionUsecases.NewDeletePlanUseCase(r.planRepo, r.subscriptionRepo, log),

		createSubscriptionUC: subscriptionUsecases.NewCreateSubscriptionUseCase(r.subscriptionRepo, r.planRepo, log),
		updateSubscriptionUC: subscriptionUsecases.NewUpdateSubscriptionUseCase(r.subscriptionRepo, log),
		listSubscriptionsUC:  subscriptionUsecases.NewListSubscriptionsUseCase(r.subscriptionRepo, r.planRepo, r.userRepo, log),
		getMySubscriptionUC:  subscriptionUsecases.NewGetMySubscriptionUseCase(r.subscriptionRepo, r.planRepo, log),

		createPropertyUC: propertyUsecases.NewCreatePropertyUseCase(r.propertyRepo, log),
		updatePropertyUC: propertyUsecases.NewUpdatePropertyUseCase(r.propertyRepo, log),
		deletePropertyUC: propertyUsecases.NewDeletePropertyUseCase(r.propertyRepo, log),
		getPropertyUC:    propertyUsecases.NewGetPropertyUseCase(r.propertyRepo, r.favoriteRepo, log),
		listPropertiesUC: propertyUsecases.NewListPropertiesUseCase(r.propertyRepo, r.favoriteRepo, log),
		incrementViewsUC: propertyUsecases.NewIncrementViewsUseCase(r.propertyRepo, log),
		toggleFavoriteUC: propertyUsecases.NewToggleFavoriteUseCase(r.propertyRepo, r.favoriteRepo, log),
		catalogUC:        propertyUsecases.NewCatalogUseCase(r.propertyRepo, r.propertyTypeRepo, log),
		createTypeUC:     propertyUsecases.NewCreatePropertyTypeUseCase(r.propertyTypeRepo, log),
		updateTypeUC:     propertyUsecases.NewUpdatePropertyTypeUseCase(r.propertyTypeRepo, log),
		deleteTypeUC:     propertyUsecases.NewDeletePropertyTypeUseCase(r.propertyTypeRepo, log),
		tagsUC:           propertyUsecases.NewTagsUseCase(r.tagRepo, log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, log),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(r.ticketRepo, r.userRepo, log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.userRepo, log),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, r.userRepo, renderer, c.dispatcher, log),

		sendMessageUC:  chatUsecases.NewSendMessageUseCase(r.messageRepo, r.userRepo, renderer, c.registry, log),
		conversationUC: chatUsecases.NewConversationUseCase(r.messageRepo, log),
		inboxUC:        chatUsecases.NewInboxUseCase(r.messageRepo, r.userRepo, log),
		markReadUC:     chatUsecases.NewMarkReadUseCase(r.messageRepo, log),

		dashboardUC:    analyticsUsecases.NewGetDashboardUseCase(r.analyticsRepo, r.propertyTypeRepo, log),
		generalStatsUC: analyticsUsecases.NewGetGeneralStatsUseCase(r.analyticsRepo, log),
	}
}
