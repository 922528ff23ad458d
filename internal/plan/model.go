package plan

import "github.com/lib/pq"

const DefaultPlanID = "basic"

// Plan is a membership tier. MonthlyPrice is in cents.
type Plan struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Description  string         `db:"description" json:"description"`
	MonthlyPrice int            `db:"monthly_price" json:"monthlyPrice"`
	Features     pq.StringArray `db:"features" json:"features" swaggertype:"array,string"`
}

// Catalog is the fixed set of plans seeded at startup.
func Catalog() []Plan {
	return []Plan{
		{
			ID:           "basic",
			Name:         "Basic",
			Description:  "Weight room and cardio access",
			MonthlyPrice: 7990,
			Features:     pq.StringArray{"Weight room access", "Cardio equipment"},
		},
		{
			ID:           "premium",
			Name:         "Premium",
			Description:  "Full access plus unlimited group classes",
			MonthlyPrice: 12990,
			Features:     pq.StringArray{"Weight room access", "Unlimited group classes", "Personal trainer twice a month"},
		},
		{
			ID:           "vip",
			Name:         "VIP",
			Description:  "Every benefit plus personal trainer and nutritionist",
			MonthlyPrice: 19990,
			Features:     pq.StringArray{"All Premium benefits", "Unlimited personal trainer", "Nutritionist included"},
		},
	}
}
