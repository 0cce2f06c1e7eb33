package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zapzocket/studio/external/shopapi"
)

func TestMapLine(t *testing.T) {
	item := MapLine(shopapi.CartLine{
		ProductID: 7,
		ItemName:  "Premium Dog Food",
		Price:     320000,
		Quantity:  2,
	})

	assert.Equal(t, "7", item.ID)
	assert.Equal(t, "Premium Dog Food", item.Name)
	assert.Equal(t, int64(320000), item.Price)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "https://placehold.co/100x100.png?text=Premium+Dog+Food", item.Image)
	assert.Equal(t, "Premium Dog Food", item.ImageHint)
}

func TestMapLineEmptyName(t *testing.T) {
	item := MapLine(shopapi.CartLine{ProductID: 1, Quantity: 1})

	// an empty name degenerates to an empty text query, not an error
	assert.Equal(t, "https://placehold.co/100x100.png?text=", item.Image)
	assert.Empty(t, item.Name)
}

func TestMapCartPreservesOrder(t *testing.T) {
	lines := []shopapi.CartLine{
		{ProductID: 3, ItemName: "c", Price: 1, Quantity: 1},
		{ProductID: 1, ItemName: "a", Price: 2, Quantity: 1},
		{ProductID: 2, ItemName: "b", Price: 3, Quantity: 1},
	}

	items := MapCart(lines)

	assert.Len(t, items, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestMapCartEmpty(t *testing.T) {
	assert.NotNil(t, MapCart(nil))
	assert.Empty(t, MapCart(nil))
}
