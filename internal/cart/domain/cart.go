package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/ridloal/shopping-cart-widget/internal/platform/money"
	pDomain "github.com/ridloal/shopping-cart-widget/internal/product/domain"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrQuantityTooLarge juga cocok dengan errors.Is(err, ErrInvalidQuantity).
	ErrQuantityTooLarge = fmt.Errorf("%w: cart quantity or amount out of range", ErrInvalidQuantity)
)

// CartLine menghubungkan satu produk katalog dengan jumlahnya di keranjang.
type CartLine struct {
	Product  pDomain.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (l CartLine) Subtotal() money.Amount {
	return l.Product.Price.Mul(l.Quantity)
}

// Cart keeps its lines in insertion order, which is also display order.
// There is at most one line per product id.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem menambah quantity ke baris yang sudah ada, atau menambahkan baris
// baru di akhir, lalu mengembalikan baris hasilnya. Jika quantity, subtotal
// atau total keranjang akan overflow, keranjang tidak berubah.
func (c *Cart) AddItem(product pDomain.Product, quantity int) (CartLine, error) {
	if quantity <= 0 {
		return CartLine{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	idx := c.indexOf(product.ID)
	line := CartLine{Product: product}
	var oldSubtotal money.Amount
	if idx >= 0 {
		line = c.lines[idx]
		oldSubtotal = line.Subtotal()
	}

	if line.Quantity > math.MaxInt-quantity {
		return CartLine{}, fmt.Errorf("%w: product %d", ErrQuantityTooLarge, product.ID)
	}
	line.Quantity += quantity

	newSubtotal, err := line.Product.Price.MulChecked(line.Quantity)
	if err != nil {
		return CartLine{}, fmt.Errorf("%w: product %d subtotal", ErrQuantityTooLarge, product.ID)
	}
	// Total tanpa baris ini selalu muat di int64 karena invariant dijaga di sini.
	if _, err := (c.Total() - oldSubtotal).AddChecked(newSubtotal); err != nil {
		return CartLine{}, fmt.Errorf("%w: cart total", ErrQuantityTooLarge)
	}

	if idx >= 0 {
		c.lines[idx] = line
	} else {
		c.lines = append(c.lines, line)
	}
	return line, nil
}

// RemoveItem reports whether a line was removed. A missing line is not an error.
func (c *Cart) RemoveItem(productID int) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Total() money.Amount {
	var total money.Amount
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Lines returns a copy of the lines in display order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Line(productID int) (CartLine, bool) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return CartLine{}, false
	}
	return c.lines[idx], true
}

// ItemCount adalah jumlah seluruh quantity, bukan jumlah baris.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) indexOf(productID int) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}
