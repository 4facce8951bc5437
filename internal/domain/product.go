package domain

// Product is an item sold in the salon shop
type Product struct {
	ID            int64
	Name          string
	Brand         string
	Description   string
	Price         float64
	Category      string
	StockQuantity int
	Rating        float64
	Featured      bool
	IsCustom      bool
}

// InStock is derived from the stock quantity
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// CartItem is a product line in a user's cart
type CartItem struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

// CartLine joins a cart item with its product
type CartLine struct {
	Product  *Product
	Quantity int
}

// Subtotal returns price times quantity
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart is a user's shopping cart with derived totals
type Cart struct {
	UserID int64
	Lines  []CartLine
}

// TotalItems sums quantities over all lines
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums line subtotals
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}
