// Package cart implements the shopping cart held by a single storefront
// session: a list of line items merged by (product, size, color) identity,
// seeded from a persistence slot at construction and flushed back after
// every mutation.
package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/hidestyle/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is one cart line: a product snapshot taken at add-time plus the
// chosen variant and quantity. The snapshot is never revalidated against
// the live catalog.
type Item struct {
	models.Product
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

// Slot is the persistence port: one named storage location holding the
// serialized cart. Load returns nil bytes when the slot is empty.
type Slot interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Cart is the session cart. Construct it once with New; it lives until
// process exit.
type Cart struct {
	mu    sync.Mutex
	items []Item
	slot  Slot
}

// New builds a cart seeded from the slot. Missing or corrupt persisted
// state yields an empty cart, never an error.
func New(slot Slot) *Cart {
	c := &Cart{slot: slot, items: []Item{}}

	data, err := slot.Load()
	if err != nil {
		log.Printf("cart: could not load persisted state: %v", err)
		return c
	}
	if len(data) == 0 {
		return c
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("cart: discarding corrupt persisted state: %v", err)
		return c
	}
	c.items = items
	return c
}

// Add merges the product into the cart. An existing line with the same
// (product id, size, color) has its quantity incremented; otherwise a new
// line is appended snapshotting the product. Quantities below one count
// as one. There is no stock check and no upper bound.
func (c *Cart) Add(product models.Product, quantity int, selectedSize, selectedColor string) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == product.ID && item.SelectedSize == selectedSize && item.SelectedColor == selectedColor {
			c.items[i].Quantity += quantity
			c.persist()
			return
		}
	}

	c.items = append(c.items, Item{
		Product:       product,
		Quantity:      quantity,
		SelectedSize:  selectedSize,
		SelectedColor: selectedColor,
	})
	c.persist()
}

// Remove drops the line matching the identity tuple exactly. Removing an
// absent line is a no-op.
func (c *Cart) Remove(productID primitive.ObjectID, selectedSize, selectedColor string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == productID && item.SelectedSize == selectedSize && item.SelectedColor == selectedColor {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []Item{}
	c.persist()
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Count is the sum of quantities across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total is the authoritative cart total: sum of price times quantity.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// persist flushes the cart to the slot. Fire and forget: failures are
// logged and not surfaced to the caller. Callers hold the mutex.
func (c *Cart) persist() {
	data, err := json.Marshal(c.items)
	if err != nil {
		log.Printf("cart: could not serialize state: %v", err)
		return
	}
	if err := c.slot.Save(data); err != nil {
		log.Printf("cart: could not persist state: %v", err)
	}
}
