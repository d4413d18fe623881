package domain

// Ad categories. CategoryBook is the default when a request omits the field.
const (
	CategoryBook        = "book"
	CategoryElectronics = "electronics"
	CategoryInstrument  = "instrument"

	DefaultCategory = CategoryBook
)

// Transaction kinds. TypeExchange is the default.
const (
	TypeExchange = "exchange"
	TypeSale     = "sale"

	DefaultType = TypeExchange
)

func Categories() []string {
	return []string{CategoryBook, CategoryElectronics, CategoryInstrument}
}

func Types() []string {
	return []string{TypeExchange, TypeSale}
}

// Ad is one classified listing. The ID is assigned by the store at
// creation and never supplied by a client; an Ad is immutable once
// created (no update or delete exists in this system).
type Ad struct {
	ID        uint   `json:"id"`
	ItemName  string `json:"itemName"`
	Category  string `json:"category"`
	Type      string `json:"type"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	Image     string `json:"image,omitempty"` // inline data-URL payload, optional
	IsPremium bool   `json:"isPremium"`
}
