// Package render memproyeksikan state keranjang menjadi tampilan. Paket ini
// tidak menyimpan state; setiap render membangun ulang seluruh output.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/ridloal/shopping-cart-widget/internal/cart/service"
	pDomain "github.com/ridloal/shopping-cart-widget/internal/product/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const PageTemplate = "cart.html"

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type CatalogItem struct {
	ID    int
	Name  string
	Price string
}

// Row is one rendered cart line. ProductID is what its removal control sends back.
type Row struct {
	ProductID int
	Name      string
	Quantity  int
	UnitPrice string
	Subtotal  string
}

// Label mengikuti format baris: "T-shirt Rouge - 3 x 15€ = 45€".
func (r Row) Label() string {
	return fmt.Sprintf("%s - %d x %s = %s", r.Name, r.Quantity, r.UnitPrice, r.Subtotal)
}

type View struct {
	Catalog   []CatalogItem
	Rows      []Row
	Total     string
	TotalText string
	ItemCount int
	Message   string // pesan error untuk interaksi terakhir, opsional
}

func (v View) Empty() bool {
	return len(v.Rows) == 0
}

func Project(snap service.Snapshot, catalog []pDomain.Product, currency string) View {
	v := View{
		Catalog:   make([]CatalogItem, 0, len(catalog)),
		Rows:      make([]Row, 0, len(snap.Lines)),
		Total:     snap.Total.Format(currency),
		ItemCount: snap.ItemCount,
	}
	v.TotalText = "Total : " + v.Total

	for _, p := range catalog {
		v.Catalog = append(v.Catalog, CatalogItem{ID: p.ID, Name: p.Name, Price: p.Price.Format(currency)})
	}
	for _, l := range snap.Lines {
		v.Rows = append(v.Rows, Row{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price.Format(currency),
			Subtotal:  l.Subtotal().Format(currency),
		})
	}
	return v
}

// Templates returns the parsed page templates, for gin's SetHTMLTemplate.
func Templates() *template.Template {
	return pageTemplates
}

func HTML(w io.Writer, v View) error {
	return pageTemplates.ExecuteTemplate(w, PageTemplate, v)
}

// Text is the terminal projection of the same view.
func Text(v View) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, "Panier")
	if v.Empty() {
		fmt.Fprintln(b, "  (vide)")
	}
	for _, r := range v.Rows {
		fmt.Fprintf(b, "  %s\n", r.Label())
	}
	fmt.Fprintln(b, v.TotalText)
	return b.String()
}
