package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultLimit = 20
	MaxLimit     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserEmail = "user_email"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers                = "users"
	TableProperties           = "properties"
	TableFavorites            = "favorites"
	TableSubscriptionPlans    = "subscription_plans"
	TableUserSubscriptions    = "user_subscriptions"
	TableMessages             = "messages"
	TableTickets              = "tickets"
	TablePropertyTypes        = "property_types"
	TablePropertyTags         = "property_tags"
	TableSocialMedia          = "social_media"
	TableBusinessAccounts     = "business_accounts"
	TableNotificationSettings = "notification_settings"
	TableCasbinRules          = "casbin_rules"
)

// Real-time event names pushed to websocket clients
const (
	EventNewMessage      = "new_message"
	EventNewNotification = "new_notification"
	EventTypingStatus    = "typing_status"
)
