package cart

import "go.uber.org/zap"

// Controller owns the cart: an ordered list of variant ids where repeated ids
// are repeated units.
type Controller struct {
	items  []int
	logger *zap.Logger
}

func NewController(logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{logger: logger}
}

func (c *Controller) AddToCart(variantID int) {
	c.items = append(c.items, variantID)
	c.logger.Debug("cart add", zap.Int("variant_id", variantID), zap.Int("size", len(c.items)))
}

// RemoveItem drops every unit of variantID, not just one. The scan runs from
// the end so removals never shift an index that has not been visited yet.
func (c *Controller) RemoveItem(variantID int) {
	removed := 0
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i] == variantID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			removed++
		}
	}
	c.logger.Debug("cart remove",
		zap.Int("variant_id", variantID),
		zap.Int("removed", removed),
		zap.Int("size", len(c.items)),
	)
}

func (c *Controller) Items() []int {
	return append([]int(nil), c.items...)
}

func (c *Controller) Len() int {
	return len(c.items)
}

func (c *Controller) Count(variantID int) int {
	n := 0
	for _, id := range c.items {
		if id == variantID {
			n++
		}
	}
	return n
}
