package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/shopping-cart-widget/internal/platform/money"
	pDomain "github.com/ridloal/shopping-cart-widget/internal/product/domain"
)

var (
	tShirt = pDomain.Product{ID: 1, Name: "T-shirt Rouge", Price: money.FromMinor(1500)}
	jeans  = pDomain.Product{ID: 2, Name: "Jeans Bleu", Price: money.FromMinor(2500)}
)

func requireAdd(t *testing.T, cart *Cart, p pDomain.Product, quantity int) {
	t.Helper()
	_, err := cart.AddItem(p, quantity)
	require.NoError(t, err)
}

func assertAddFails(t *testing.T, cart *Cart, p pDomain.Product, quantity int, target error) {
	t.Helper()
	line, err := cart.AddItem(p, quantity)
	assert.ErrorIs(t, err, target)
	assert.Equal(t, CartLine{}, line)
}

func TestCart_AddItem(t *testing.T) {
	t.Run("Repeated adds merge into one line", func(t *testing.T) {
		cart := NewCart()
		quantities := []int{1, 4, 2, 7}
		sum := 0
		for _, q := range quantities {
			requireAdd(t, cart, tShirt, q)
			sum += q
		}

		assert.Equal(t, 1, cart.Len())
		line, ok := cart.Line(tShirt.ID)
		require.True(t, ok)
		assert.Equal(t, sum, line.Quantity)
	})

	t.Run("New products are appended in order", func(t *testing.T) {
		cart := NewCart()
		requireAdd(t, cart, jeans, 1)
		requireAdd(t, cart, tShirt, 1)
		requireAdd(t, cart, jeans, 1)

		lines := cart.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, jeans.ID, lines[0].Product.ID)
		assert.Equal(t, tShirt.ID, lines[1].Product.ID)
	})

	t.Run("Returns the updated line", func(t *testing.T) {
		cart := NewCart()
		line, err := cart.AddItem(tShirt, 2)
		require.NoError(t, err)
		assert.Equal(t, CartLine{Product: tShirt, Quantity: 2}, line)

		line, err = cart.AddItem(tShirt, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, line.Quantity)
		assert.Equal(t, money.FromMinor(7500), line.Subtotal())
	})

	t.Run("Non-positive quantity rejected", func(t *testing.T) {
		cart := NewCart()
		assertAddFails(t, cart, tShirt, 0, ErrInvalidQuantity)
		assertAddFails(t, cart, tShirt, -3, ErrInvalidQuantity)
		assert.True(t, cart.IsEmpty())

		requireAdd(t, cart, tShirt, 2)
		assertAddFails(t, cart, tShirt, -1, ErrInvalidQuantity)
		line, _ := cart.Line(tShirt.ID)
		assert.Equal(t, 2, line.Quantity)
	})
}

func TestCart_Total(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, money.Amount(0), cart.Total())

	requireAdd(t, cart, tShirt, 1)
	requireAdd(t, cart, jeans, 1)
	requireAdd(t, cart, tShirt, 2)

	line1, _ := cart.Line(tShirt.ID)
	line2, _ := cart.Line(jeans.ID)
	assert.Equal(t, 3, line1.Quantity)
	assert.Equal(t, money.FromMinor(4500), line1.Subtotal())
	assert.Equal(t, 1, line2.Quantity)
	assert.Equal(t, money.FromMinor(2500), line2.Subtotal())
	assert.Equal(t, money.FromMinor(7000), cart.Total())
	assert.Equal(t, 4, cart.ItemCount())

	var sum money.Amount
	for _, l := range cart.Lines() {
		sum += l.Product.Price.Mul(l.Quantity)
	}
	assert.Equal(t, sum, cart.Total())
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("Missing line is a no-op", func(t *testing.T) {
		cart := NewCart()
		assert.False(t, cart.RemoveItem(99))
		assert.Equal(t, money.Amount(0), cart.Total())
	})

	t.Run("Remove then add starts a fresh line", func(t *testing.T) {
		cart := NewCart()
		requireAdd(t, cart, tShirt, 5)
		requireAdd(t, cart, jeans, 1)

		assert.True(t, cart.RemoveItem(tShirt.ID))
		_, ok := cart.Line(tShirt.ID)
		assert.False(t, ok)

		requireAdd(t, cart, tShirt, 2)
		line, ok := cart.Line(tShirt.ID)
		require.True(t, ok)
		assert.Equal(t, 2, line.Quantity)

		// Baris baru masuk di akhir urutan
		lines := cart.Lines()
		assert.Equal(t, jeans.ID, lines[0].Product.ID)
		assert.Equal(t, tShirt.ID, lines[1].Product.ID)
	})
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	requireAdd(t, cart, tShirt, 1)
	requireAdd(t, cart, jeans, 3)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines())
	assert.Equal(t, money.Amount(0), cart.Total())
}

func TestCart_LinesIsACopy(t *testing.T) {
	cart := NewCart()
	requireAdd(t, cart, tShirt, 1)

	lines := cart.Lines()
	lines[0].Quantity = 100

	line, _ := cart.Line(tShirt.ID)
	assert.Equal(t, 1, line.Quantity)
}

func TestCart_AddItemOverflow(t *testing.T) {
	t.Run("Merged quantity would wrap", func(t *testing.T) {
		free := pDomain.Product{ID: 9, Name: "Gratuit", Price: 0}
		cart := NewCart()
		requireAdd(t, cart, free, math.MaxInt)

		assertAddFails(t, cart, free, 1, ErrQuantityTooLarge)
		line, _ := cart.Line(free.ID)
		assert.Equal(t, math.MaxInt, line.Quantity)
	})

	t.Run("Subtotal would wrap", func(t *testing.T) {
		cart := NewCart()
		requireAdd(t, cart, jeans, 1)

		assertAddFails(t, cart, jeans, math.MaxInt/1000, ErrQuantityTooLarge)
		assertAddFails(t, cart, tShirt, math.MaxInt, ErrInvalidQuantity)

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
		assert.Equal(t, money.FromMinor(2500), cart.Total())
	})

	t.Run("Cart total would wrap", func(t *testing.T) {
		cart := NewCart()
		// Setiap subtotal muat di int64, tapi jumlah keduanya tidak
		half := math.MaxInt64/2500 - 1
		requireAdd(t, cart, jeans, int(half))

		assertAddFails(t, cart, tShirt, int(half), ErrQuantityTooLarge)
		assert.Equal(t, 1, cart.Len())
		assert.Equal(t, money.FromMinor(2500).Mul(int(half)), cart.Total())
		assert.Positive(t, cart.Total().Minor())
	})
}
