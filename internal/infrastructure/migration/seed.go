package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
)

func ptr(v uint) *uint { return &v }

// PropertyTypes is the fixed listing taxonomy. IDs are stable because
// listings reference them.
var PropertyTypes = []models.PropertyTypeModel{
	{ID: 1, Name: "Residential", NameFR: "Résidentiel", NameAR: "سكنية"},
	{ID: 2, Name: "Apartments", NameFR: "Appartements", NameAR: "شقق", ParentID: ptr(1)},
	{ID: 3, Name: "Villas", NameFR: "Villas", NameAR: "فلل", ParentID: ptr(1)},
	{ID: 4, Name: "Houses", NameFR: "Maisons", NameAR: "منازل", ParentID: ptr(1)},
	{ID: 5, Name: "Duplex", NameFR: "Duplex", NameAR: "دوبلكس", ParentID: ptr(1)},
	{ID: 6, Name: "Studio", NameFR: "Studio", NameAR: "استوديو", ParentID: ptr(1)},
	{ID: 7, Name: "Traditional House", NameFR: "Maison Traditionnelle", NameAR: "بيت شعبي", ParentID: ptr(1)},

	{ID: 8, Name: "Commercial", NameFR: "Commercial", NameAR: "تجارية"},
	{ID: 9, Name: "Shops", NameFR: "Magasins", NameAR: "محلات", ParentID: ptr(8)},
	{ID: 10, Name: "Offices", NameFR: "Bureaux", NameAR: "مكاتب", ParentID: ptr(8)},
	{ID: 11, Name: "Warehouses", NameFR: "Entrepôts", NameAR: "مستودعات", ParentID: ptr(8)},
	{ID: 12, Name: "Showrooms", NameFR: "Salles d’exposition", NameAR: "معارض", ParentID: ptr(8)},
	{ID: 13, Name: "Hotels", NameFR: "Hôtels", NameAR: "فنادق", ParentID: ptr(8)},

	{ID: 14, Name: "Lands", NameFR: "Terrains", NameAR: "أراضي"},
	{ID: 15, Name: "Agricultural", NameFR: "Agricole", NameAR: "زراعية", ParentID: ptr(14)},
	{ID: 16, Name: "Residential", NameFR: "Résidentiel", NameAR: "سكنية", ParentID: ptr(14)},
	{ID: 17, Name: "Industrial", NameFR: "Industriel", NameAR: "صناعية", ParentID: ptr(14)},
	{ID: 18, Name: "Commercial", NameFR: "Commercial", NameAR: "تجارية", ParentID: ptr(14)},

	{ID: 19, Name: "Other", NameFR: "Autres", NameAR: "أخرى"},
	{ID: 20, Name: "Farm", NameFR: "Ferme", NameAR: "مزرعة", ParentID: ptr(19)},
	{ID: 21, Name: "Factory", NameFR: "Usine", NameAR: "مصنع", ParentID: ptr(19)},
	{ID: 22, Name: "Real Estate Project", NameFR: "Projet Immobilier", NameAR: "مشروع عقاري", ParentID: ptr(19)},
	{ID: 23, Name: "Investment Units", NameFR: "Unités d’investissement", NameAR: "وحدات استثمارية", ParentID: ptr(19)},
}

// SeedPropertyTypes inserts the missing taxonomy rows and leaves existing ones
// untouched. It returns the number of rows added.
func SeedPropertyTypes(ctx context.Context, db *gorm.DB) (int64, error) {
	rows := make([]models.PropertyTypeModel, len(PropertyTypes))
	copy(rows, PropertyTypes)

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to seed property types: %w", result.Error)
	}
	return result.RowsAffected, nil
}
