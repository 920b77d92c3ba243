package models

// All returns every persistence model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SocialMediaModel{},
		&BusinessAccountModel{},
		&NotificationSettingsModel{},
		&PlanModel{},
		&SubscriptionModel{},
		&PropertyTypeModel{},
		&PropertyModel{},
		&FavoriteModel{},
		&PropertyTagModel{},
		&TicketModel{},
		&MessageModel{},
	}
}
