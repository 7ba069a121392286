package core

// Category is one entry of the fixed catalog the register screen offers.
type Category struct {
	Key  string
	Name string
}

// UnselectedCategoryKey is the reserved placeholder the client shows
// before the user picks a real category. It must never reach the ledger.
const UnselectedCategoryKey = "category"

// Unselected is the sentinel "no category chosen" placeholder.
var Unselected = Category{Key: UnselectedCategoryKey, Name: "Categoria"}

// catalog mirrors the category list shipped with the mobile app.
var catalog = []Category{
	{Key: "purchases", Name: "Compras"},
	{Key: "food", Name: "Alimentação"},
	{Key: "salary", Name: "Salário"},
	{Key: "car", Name: "Carro"},
	{Key: "leisure", Name: "Lazer"},
	{Key: "studies", Name: "Estudos"},
}

// Categories returns the selectable catalog, sentinel excluded.
func Categories() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// CategoryByKey resolves a catalog entry. The sentinel key is not a
// real category and resolves to false.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range catalog {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
