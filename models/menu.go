package models

// MenuItem is one sellable item. Price is a plain integer in currency units;
// user-facing text renders it with the ₹ sign, persistence never does.
type MenuItem struct {
	ID       string
	Category string // "food", "drink", "dessert"
	Name     string
	Price    int64
}

const (
	CategoryFood    = "food"
	CategoryDrink   = "drink"
	CategoryDessert = "dessert"
)
