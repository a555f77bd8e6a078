package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	cartService "github.com/ridloal/shopping-cart-widget/internal/cart/service"
	"github.com/ridloal/shopping-cart-widget/internal/cart/tui"
	"github.com/ridloal/shopping-cart-widget/internal/platform/config"
	"github.com/ridloal/shopping-cart-widget/internal/platform/logger"
	productService "github.com/ridloal/shopping-cart-widget/internal/product/service"
)

func main() {
	// Log hanya level warn ke atas agar tidak mengganggu tampilan terminal
	logger.Init(config.GetEnv("LOG_LEVEL", "warn"), "console")
	defer logger.Sync()

	catalog, source, err := productService.LoadCatalog(context.Background(), config.LoadCatalogConfig())
	if err != nil {
		logger.Error("Failed to load catalog from %s source", err, source)
		os.Exit(1)
	}

	cart := cartService.NewCartService(catalog, nil)
	model := tui.NewModel(cart, config.LoadDisplayConfig().CurrencySymbol)

	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
