package domain

type (
	CartCost struct {
		SubtotalAmount Money  `json:"subtotalAmount"`
		TotalAmount    Money  `json:"totalAmount"`
		TotalTaxAmount *Money `json:"totalTaxAmount"`
	}

	CartProduct struct {
		ID            string `json:"id"`
		Handle        string `json:"handle"`
		Title         string `json:"title"`
		FeaturedImage *Image `json:"featuredImage"`
	}

	Merchandise struct {
		ID              string           `json:"id"`
		Title           string           `json:"title"`
		SelectedOptions []SelectedOption `json:"selectedOptions"`
		Product         CartProduct      `json:"product"`
		Price           Money            `json:"price"`
	}

	CartLineCost struct {
		TotalAmount Money `json:"totalAmount"`
	}

	CartLine struct {
		ID          string       `json:"id"`
		Quantity    int          `json:"quantity"`
		Merchandise Merchandise  `json:"merchandise"`
		Cost        CartLineCost `json:"cost"`
	}
)

// A Cart is the snapshot of a remote cart as last confirmed
// by the commerce API. It is never authoritative on its own.
type Cart struct {
	ID            string     `json:"id"`
	CheckoutURL   string     `json:"checkoutUrl"`
	TotalQuantity int        `json:"totalQuantity"`
	Cost          CartCost   `json:"cost"`
	Lines         []CartLine `json:"lines"`
}

func (c Cart) Line(id string) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.ID == id {
			return l, true
		}
	}
	return CartLine{}, false
}

// A CartLineInput adds merchandise to a cart.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// A CartLineUpdate sets the quantity of an existing line.
type CartLineUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type CartAction string

const (
	CartActionCreate CartAction = "create"
	CartActionAdd    CartAction = "add"
	CartActionUpdate CartAction = "update"
	CartActionRemove CartAction = "remove"
)

// A CartRequestLine carries either a merchandise id (create, add)
// or a line id (update).
type CartRequestLine struct {
	ID            string `json:"id,omitempty"`
	MerchandiseID string `json:"merchandiseId,omitempty"`
	Quantity      int    `json:"quantity"`
}

type CartRequest struct {
	Action  CartAction        `json:"action"`
	CartID  string            `json:"cartId,omitempty"`
	Lines   []CartRequestLine `json:"lines,omitempty"`
	LineIDs []string          `json:"lineIds,omitempty"`
}
