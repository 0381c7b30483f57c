package domain

// Action is one cart transition. The set is sealed; Reduce treats
// anything it does not recognize (including nil) as a no-op.
type Action interface {
	isAction()
}

// AddItem merges the item into the cart. If an entry with the same ID
// already exists its quantity grows by one and the incoming title,
// price and quantity are ignored; otherwise the item is appended.
type AddItem struct {
	Item CartItem
}

// RemoveItem drops the entry with the given product ID. It also clears
// any applied promo, whether or not the ID was present.
type RemoveItem struct {
	ProductID string
}

type IncrementQuantity struct {
	ProductID string
}

type DecrementQuantity struct {
	ProductID string
}

type ClearCart struct{}

// ApplyPromo replaces the applied promo regardless of cart contents.
type ApplyPromo struct {
	Promo PromoCode
}

type RemovePromo struct{}

// SetSnapshot replaces the item sequence wholesale with the absolute
// quantities it carries. It is dispatched by the synchronizer when
// another process writes the snapshot; routing external state through
// AddItem would inflate quantities one increment at a time.
type SetSnapshot struct {
	Items []CartItem
}

func (AddItem) isAction()           {}
func (RemoveItem) isAction()        {}
func (IncrementQuantity) isAction() {}
func (DecrementQuantity) isAction() {}
func (ClearCart) isAction()         {}
func (ApplyPromo) isAction()        {}
func (RemovePromo) isAction()       {}
func (SetSnapshot) isAction()       {}
