package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/shopping-cart-widget/internal/cart/domain"
	"github.com/ridloal/shopping-cart-widget/internal/cart/render"
	"github.com/ridloal/shopping-cart-widget/internal/cart/service"
	"github.com/ridloal/shopping-cart-widget/internal/platform/logger"
	pRepo "github.com/ridloal/shopping-cart-widget/internal/product/repository"
)

type CartHandler struct {
	cartService service.CartService
	currency    string
}

func NewCartHandler(cs service.CartService, currency string) *CartHandler {
	return &CartHandler{cartService: cs, currency: currency}
}

// RegisterPageRoutes memasang halaman HTML: setiap form memanggil service
// lalu halaman di-render ulang.
// Engine harus sudah memanggil SetHTMLTemplate(render.Templates()).
func (h *CartHandler) RegisterPageRoutes(router *gin.RouterGroup) {
	pageRoutes := router.Group("/cart")
	{
		pageRoutes.GET("", h.ShowCart)
		pageRoutes.POST("/items/:id", h.AddItemForm)
		pageRoutes.POST("/items/:id/remove", h.RemoveItemForm)
		pageRoutes.POST("/clear", h.ClearCartForm)
	}
}

func (h *CartHandler) RegisterAPIRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.POST("/items", h.AddItem)
		cartRoutes.DELETE("/items/:id", h.RemoveItem)
		cartRoutes.DELETE("", h.ClearCart)
	}
}

func (h *CartHandler) view() render.View {
	return render.Project(h.cartService.GetCart(), h.cartService.ListCatalog(), h.currency)
}

func (h *CartHandler) renderPage(c *gin.Context, status int, message string) {
	v := h.view()
	v.Message = message
	c.HTML(status, render.PageTemplate, v)
}

func (h *CartHandler) ShowCart(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "")
}

func (h *CartHandler) AddItemForm(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, "Produit invalide")
		return
	}
	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, "Quantité invalide")
		return
	}

	if _, err := h.cartService.AddProduct(productID, quantity); err != nil {
		status, msg := addErrorStatus(err)
		h.renderPage(c, status, msg)
		return
	}
	h.renderPage(c, http.StatusOK, "")
}

func (h *CartHandler) RemoveItemForm(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, "Produit invalide")
		return
	}
	// Baris yang tidak ada: no-op, tetap render ulang
	h.cartService.RemoveProduct(productID)
	h.renderPage(c, http.StatusOK, "")
}

func (h *CartHandler) ClearCartForm(c *gin.Context) {
	h.cartService.ClearCart()
	h.renderPage(c, http.StatusOK, "")
}

func addErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, pRepo.ErrProductNotFound):
		return http.StatusNotFound, "Produit introuvable"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "Quantité invalide"
	default:
		logger.Error("AddItem: unhandled service error", err)
		return http.StatusInternalServerError, "Erreur interne"
	}
}

// JSON API

type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

type lineResponse struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type cartResponse struct {
	Lines     []lineResponse `json:"lines"`
	Total     string         `json:"total"`
	ItemCount int            `json:"item_count"`
}

func (h *CartHandler) cartResponse() cartResponse {
	snap := h.cartService.GetCart()
	resp := cartResponse{
		Lines:     make([]lineResponse, 0, len(snap.Lines)),
		Total:     snap.Total.String(),
		ItemCount: snap.ItemCount,
	}
	for _, l := range snap.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price.String(),
			Subtotal:  l.Subtotal().String(),
		})
	}
	return resp
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if _, err := h.cartService.AddProduct(req.ProductID, req.Quantity); err != nil {
		status, _ := addErrorStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	h.cartService.RemoveProduct(productID)
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartService.ClearCart()
	c.JSON(http.StatusOK, h.cartResponse())
}
