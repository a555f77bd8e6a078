package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/shopping-cart-widget/internal/cart/service"
	"github.com/ridloal/shopping-cart-widget/internal/platform/money"
	pDomain "github.com/ridloal/shopping-cart-widget/internal/product/domain"
	pRepo "github.com/ridloal/shopping-cart-widget/internal/product/repository"
)

func newModel(t *testing.T) (Model, service.CartService) {
	repo, err := pRepo.NewMemoryProductRepository(pDomain.DefaultSeeds())
	require.NoError(t, err)
	svc := service.NewCartService(repo, nil)
	return NewModel(svc, "€"), svc
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_AddFromCatalog(t *testing.T) {
	m, svc := newModel(t)

	m = press(m, enter, down, enter, tea.KeyMsg{Type: tea.KeyUp}, enter, enter)

	snap := svc.GetCart()
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, 3, snap.Lines[0].Quantity)
	assert.Equal(t, money.FromMinor(7000), snap.Total)
	assert.Contains(t, m.View(), "T-shirt Rouge - 3 x 15€ = 45€")
	assert.Contains(t, m.View(), "Total : 70€")
}

func TestModel_RemoveSelectedLine(t *testing.T) {
	m, svc := newModel(t)
	m = press(m, enter, down, enter)

	m = press(m, tab, down, enter)
	snap := svc.GetCart()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Product.ID)
	assert.Equal(t, 0, m.cartCursor)
	assert.Contains(t, m.View(), "Jeans Bleu supprimé")

	// Enter pada panier kosong tidak melakukan apa-apa
	m = press(m, enter, enter)
	assert.Empty(t, svc.GetCart().Lines)
	assert.Contains(t, m.View(), "(vide)")
}

func TestModel_Clear(t *testing.T) {
	m, svc := newModel(t)
	m = press(m, enter, down, enter, runes("c"))

	assert.Empty(t, svc.GetCart().Lines)
	assert.Contains(t, m.View(), "Total : 0€")
	assert.Contains(t, m.View(), "Panier vidé")
}

func TestModel_CursorBounds(t *testing.T) {
	m, _ := newModel(t)
	for i := 0; i < 20; i++ {
		m = press(m, down)
	}
	assert.Equal(t, 6, m.catalogCursor)

	m = press(m, tab, down)
	assert.Equal(t, 0, m.cartCursor)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewIsStable(t *testing.T) {
	m, _ := newModel(t)
	m = press(m, enter)
	assert.Equal(t, m.View(), m.View())
}
