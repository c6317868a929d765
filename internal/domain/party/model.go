package party

// Ceremonial role groups. Nasi are the godparents of the wedding, martori
// the witnesses; the public section renders them as two separate lists.
const (
	CategoryNasi    = "nasi"
	CategoryMartori = "martori"
)

func ValidCategory(c string) bool {
	return c == CategoryNasi || c == CategoryMartori
}

type Member struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Role         string `gorm:"not null" json:"role"`
	Category     string `gorm:"not null;default:'nasi'" json:"category"`
	PhotoURL     string `gorm:"column:photo_url" json:"photo_url"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    bool   `gorm:"not null;default:true" json:"is_visible"`
}

func (Member) TableName() string { return "wedding_party" }
