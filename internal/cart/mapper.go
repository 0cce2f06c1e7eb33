package cart

import (
	"net/url"
	"strconv"

	"github.com/zapzocket/studio/external/shopapi"
	"github.com/zapzocket/studio/internal/model"
)

const placeholderBase = "https://placehold.co/100x100.png"

// MapLine converts a backend cart line into its display shape. The
// placeholder image derives from the item name; an empty name leaves the
// text query empty, which is acceptable and not an error.
func MapLine(line shopapi.CartLine) model.CartItem {
	return model.CartItem{
		ID:        strconv.FormatInt(line.ProductID, 10),
		Name:      line.ItemName,
		Price:     line.Price,
		Quantity:  line.Quantity,
		Image:     placeholderBase + "?text=" + url.QueryEscape(line.ItemName),
		ImageHint: line.ItemName,
	}
}

// MapCart maps every line, preserving backend order. Never returns nil.
func MapCart(lines []shopapi.CartLine) []model.CartItem {
	items := make([]model.CartItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, MapLine(line))
	}
	return items
}
