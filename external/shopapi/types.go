package shopapi

// CartLine is one row of the backend cart as the backend owns it.
type CartLine struct {
	ProductID int64
	ItemName  string
	Price     int64
	Quantity  int
}

// ProductRecord is a catalog row as the backend stores it.
type ProductRecord struct {
	ProductID   int64
	ItemName    string
	Price       int64
	Category    string
	Description string
}

// CartResponse is what every cart mutation returns: a human message plus
// the full authoritative cart snapshot.
type CartResponse struct {
	Message string
	Cart    []CartLine
}

// VendorSignupRequest mirrors the backend vendor registration payload.
type VendorSignupRequest struct {
	ShopName      string `json:"shopName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactPerson string `json:"contactPerson"`
	PhoneNumber   string `json:"phoneNumber"`
	ShopAddress   string `json:"shopAddress"`
}

// ItemSubmissionRequest mirrors the backend product creation payload.
type ItemSubmissionRequest struct {
	ItemName    string  `json:"itemName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Wire shapes use pointer fields so that an absent required field is
// distinguishable from a zero value and can be rejected.

type cartLineWire struct {
	ProductID *int64   `json:"product_id"`
	ItemName  *string  `json:"itemName"`
	Price     *float64 `json:"price"`
	Quantity  *int     `json:"quantity"`
}

func (w cartLineWire) toCartLine() (CartLine, error) {
	switch {
	case w.ProductID == nil:
		return CartLine{}, &ParseError{Reason: "cart line missing product_id"}
	case w.ItemName == nil:
		return CartLine{}, &ParseError{Reason: "cart line missing itemName"}
	case w.Price == nil:
		return CartLine{}, &ParseError{Reason: "cart line missing price"}
	case w.Quantity == nil:
		return CartLine{}, &ParseError{Reason: "cart line missing quantity"}
	}
	return CartLine{
		ProductID: *w.ProductID,
		ItemName:  *w.ItemName,
		Price:     int64(*w.Price),
		Quantity:  *w.Quantity,
	}, nil
}

type productWire struct {
	ProductID   *int64   `json:"product_id"`
	ItemName    *string  `json:"itemName"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}

func (w productWire) toProductRecord() (ProductRecord, error) {
	switch {
	case w.ProductID == nil:
		return ProductRecord{}, &ParseError{Reason: "product missing product_id"}
	case w.ItemName == nil:
		return ProductRecord{}, &ParseError{Reason: "product missing itemName"}
	case w.Price == nil:
		return ProductRecord{}, &ParseError{Reason: "product missing price"}
	}
	rec := ProductRecord{
		ProductID: *w.ProductID,
		ItemName:  *w.ItemName,
		Price:     int64(*w.Price),
	}
	// category and description are optional on older records
	if w.Category != nil {
		rec.Category = *w.Category
	}
	if w.Description != nil {
		rec.Description = *w.Description
	}
	return rec, nil
}

func cartLinesFromWire(wires []cartLineWire) ([]CartLine, error) {
	lines := make([]CartLine, 0, len(wires))
	for _, w := range wires {
		line, err := w.toCartLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func productsFromWire(wires []productWire) ([]ProductRecord, error) {
	records := make([]ProductRecord, 0, len(wires))
	for _, w := range wires {
		rec, err := w.toProductRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
