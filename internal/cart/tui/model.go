// Package tui is the terminal front end of the cart widget. Bubble Tea runs
// Update on a single goroutine, so every key press is one synchronous cart
// mutation followed by a re-render.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ridloal/shopping-cart-widget/internal/cart/domain"
	"github.com/ridloal/shopping-cart-widget/internal/cart/render"
	"github.com/ridloal/shopping-cart-widget/internal/cart/service"
	pRepo "github.com/ridloal/shopping-cart-widget/internal/product/repository"
)

type pane int

const (
	catalogPane pane = iota
	cartPane
)

type Model struct {
	svc      service.CartService
	currency string

	focus         pane
	catalogCursor int
	cartCursor    int
	status        string
}

func NewModel(svc service.CartService, currency string) Model {
	return Model{svc: svc, currency: currency, status: "Prêt"}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	view := m.view()
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.focus == catalogPane {
			m.focus = cartPane
		} else {
			m.focus = catalogPane
		}
	case "up", "k":
		if m.focus == catalogPane && m.catalogCursor > 0 {
			m.catalogCursor--
		}
		if m.focus == cartPane && m.cartCursor > 0 {
			m.cartCursor--
		}
	case "down", "j":
		if m.focus == catalogPane && m.catalogCursor < len(view.Catalog)-1 {
			m.catalogCursor++
		}
		if m.focus == cartPane && m.cartCursor < len(view.Rows)-1 {
			m.cartCursor++
		}
	case "enter":
		if m.focus == catalogPane {
			m.addSelected(view)
		} else {
			m.removeSelected(view)
		}
	case "c":
		m.svc.ClearCart()
		m.cartCursor = 0
		m.status = "Panier vidé"
	}
	return m, nil
}

func (m *Model) addSelected(view render.View) {
	if len(view.Catalog) == 0 {
		return
	}
	item := view.Catalog[m.catalogCursor]
	_, err := m.svc.AddProduct(item.ID, 1)
	switch {
	case err == nil:
		m.status = fmt.Sprintf("%s ajouté", item.Name)
	case errors.Is(err, pRepo.ErrProductNotFound):
		m.status = "Produit introuvable"
	case errors.Is(err, domain.ErrInvalidQuantity):
		m.status = "Quantité invalide"
	default:
		m.status = err.Error()
	}
}

func (m *Model) removeSelected(view render.View) {
	if len(view.Rows) == 0 {
		return
	}
	row := view.Rows[m.cartCursor]
	m.svc.RemoveProduct(row.ProductID)
	m.status = fmt.Sprintf("%s supprimé", row.Name)
	if m.cartCursor >= len(view.Rows)-1 && m.cartCursor > 0 {
		m.cartCursor--
	}
}

func (m Model) view() render.View {
	return render.Project(m.svc.GetCart(), m.svc.ListCatalog(), m.currency)
}

func (m Model) View() string {
	v := m.view()
	b := &strings.Builder{}

	fmt.Fprintln(b, "Produits")
	for i, item := range v.Catalog {
		fmt.Fprintf(b, " %s %s (%s)\n", m.marker(catalogPane, i == m.catalogCursor), item.Name, item.Price)
	}
	fmt.Fprintln(b, "")

	fmt.Fprintln(b, "Panier")
	if v.Empty() {
		fmt.Fprintln(b, "   (vide)")
	}
	for i, row := range v.Rows {
		fmt.Fprintf(b, " %s %s\n", m.marker(cartPane, i == m.cartCursor), row.Label())
	}
	fmt.Fprintln(b, v.TotalText)
	fmt.Fprintln(b, "")
	fmt.Fprintf(b, "Status: %s\n", m.status)
	fmt.Fprintln(b, "\nControls: tab switch pane, up/down select, enter add/remove, c clear, q quit")
	return b.String()
}

func (m Model) marker(p pane, selected bool) string {
	if !selected {
		return " "
	}
	if m.focus == p {
		return ">"
	}
	return "*"
}
