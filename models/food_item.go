package models

// Food categories stored in food_items.category.
const (
	CategoryVeg    = "veg"
	CategoryEgg    = "egg"
	CategoryNonVeg = "nonVeg"
)

// FoodItem is one catalog entry. Nutrition fields default to zero and are
// synthesized on read by the nutrition service when absent.
type FoodItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	DishName   string  `gorm:"not null" json:"dishName"`
	Restaurant string  `gorm:"not null" json:"restaurant"`
	ETA        string  `gorm:"column:eta;type:varchar(10);not null" json:"eta"` // minutes, string-encoded like "25"
	Rating     float64 `gorm:"not null" json:"rating"`
	Price      string  `gorm:"not null" json:"price"` // currency-formatted, e.g. "$15.99"
	Category   string  `gorm:"not null" json:"category"`
	Image      string  `gorm:"not null" json:"image"`

	Calories    float64 `gorm:"default:0" json:"calories"`
	Protein     float64 `gorm:"default:0" json:"protein"` // grams
	Carbs       float64 `gorm:"default:0" json:"carbs"`   // grams
	Fat         float64 `gorm:"default:0" json:"fat"`     // grams
	Fiber       float64 `gorm:"default:0" json:"fiber"`   // grams
	Sugar       float64 `gorm:"default:0" json:"sugar"`   // grams
	Sodium      float64 `gorm:"default:0" json:"sodium"`  // mg
	HealthScore float64 `gorm:"column:health_score;default:50" json:"healthScore"`
}
