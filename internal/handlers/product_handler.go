package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bakery-catalog/internal/config"
	"bakery-catalog/internal/media"
	"bakery-catalog/internal/models"
	"bakery-catalog/internal/repository"
)

type ProductHandler struct {
	store    repository.ProductStore
	resolver *media.Resolver
	cfg      *config.Config
}

func NewProductHandler(store repository.ProductStore, resolver *media.Resolver, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		store:    store,
		resolver: resolver,
		cfg:      cfg,
	}
}

// productResponse is the wire shape of a product: the stored fields plus
// a string id and the resolved image URL.
type productResponse struct {
	models.Product
	ID    string `json:"id"`
	Image string `json:"image"`
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	filter := repository.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
		Type:     c.Query("type"),
		Page:     page,
		Limit:    limit,
	}
	filter.Clamp()

	products, total, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, h.serverError("Error fetching products", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   h.formatProducts(products, c),
		"total":      total,
		"page":       filter.Page,
		"limit":      filter.Limit,
		"totalPages": totalPages(total, filter.Limit),
	})
}

// GET /api/products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	q := c.Query("q")

	// A blank keyword yields an empty result set without touching the store.
	if strings.TrimSpace(q) == "" {
		c.JSON(http.StatusOK, gin.H{
			"products": []productResponse{},
			"total":    0,
		})
		return
	}

	products, total, err := h.store.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, h.serverError("Error searching products", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": h.formatProducts(products, c),
		"total":    total,
		"query":    q,
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, h.serverError("Error fetching product", err))
		}
		return
	}

	c.JSON(http.StatusOK, h.formatProduct(*product, c))
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating product", "error": err.Error()})
		return
	}

	product.ApplyDefaults()
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating product", "error": err.Error()})
		return
	}

	if err := h.store.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating product", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.formatProduct(product, c))
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating product", "error": err.Error()})
		return
	}

	if err := update.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating product", "error": err.Error()})
		return
	}

	product, err := h.store.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating product", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, h.formatProduct(*product, c))
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	product, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, h.serverError("Error deleting product", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
		"product": h.formatProduct(*product, c),
	})
}

// formatProduct normalizes a stored product for the wire: string id,
// resolved image URL, and never-null specifications and slices.
func (h *ProductHandler) formatProduct(product models.Product, c *gin.Context) productResponse {
	if product.Specifications == nil {
		product.Specifications = map[string]string{}
	}
	if product.Features == nil {
		product.Features = []string{}
	}
	if product.WeightOptions == nil {
		product.WeightOptions = []models.WeightOption{}
	}
	if product.InStock == nil {
		inStock := true
		product.InStock = &inStock
	}

	return productResponse{
		Product: product,
		ID:      product.ID.Hex(),
		Image:   h.resolver.Resolve(product.Image, requestScheme(c), c.Request.Host),
	}
}

func (h *ProductHandler) formatProducts(products []models.Product, c *gin.Context) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, h.formatProduct(p, c))
	}
	return out
}

// serverError builds a 500 body; the raw error detail is only exposed
// outside production.
func (h *ProductHandler) serverError(message string, err error) gin.H {
	body := gin.H{"message": message}
	if !h.cfg.IsProduction() {
		body["error"] = err.Error()
	}
	return body
}

func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}
