package domain

// Reduce maps (state, action) to the next state. It is pure: no I/O,
// no mutation of the input, no failure mode. Unknown actions return the
// input unchanged.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		for i := range state.Items {
			if state.Items[i].ID == a.Item.ID {
				items := CloneItems(state.Items)
				items[i].Quantity++
				return State{Items: items, AppliedPromo: state.AppliedPromo}
			}
		}
		item := a.Item
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		return State{Items: append(CloneItems(state.Items), item), AppliedPromo: state.AppliedPromo}

	case RemoveItem:
		items := make([]CartItem, 0, len(state.Items))
		for _, it := range state.Items {
			if it.ID != a.ProductID {
				items = append(items, it)
			}
		}
		// Removing an item always drops the promo, even when the ID was
		// not in the cart. Known quirk: any removal invalidates the
		// discount rather than checking whether it still applies.
		return State{Items: items}

	case IncrementQuantity:
		for i := range state.Items {
			if state.Items[i].ID == a.ProductID {
				items := CloneItems(state.Items)
				items[i].Quantity++
				return State{Items: items, AppliedPromo: state.AppliedPromo}
			}
		}
		return state

	case DecrementQuantity:
		for i := range state.Items {
			if state.Items[i].ID == a.ProductID && state.Items[i].Quantity > 1 {
				items := CloneItems(state.Items)
				items[i].Quantity--
				return State{Items: items, AppliedPromo: state.AppliedPromo}
			}
		}
		// Quantity 1 is the floor; decrementing never removes the item.
		return state

	case ClearCart:
		return State{Items: []CartItem{}}

	case ApplyPromo:
		promo := a.Promo
		return State{Items: state.Items, AppliedPromo: &promo}

	case RemovePromo:
		return State{Items: state.Items}

	case SetSnapshot:
		return State{Items: CloneItems(a.Items)}

	default:
		return state
	}
}
