package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/search"
	"ecofinds/internal/services"
	"ecofinds/internal/store"
	"ecofinds/internal/validate"
)

type ProductHandler struct {
	Catalog  *services.CatalogService
	Products *store.Products
}

// parsePrice parses an optional price query parameter; a present but
// malformed value is a validation error, absence is no constraint.
func parsePrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List is GET /api/products: search -> filter -> sort over the catalog.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		q = c.Query("search")
	}

	minPrice, err := parsePrice(c.Query("minPrice"))
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "minPrice", "value": c.Query("minPrice")})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid minPrice"})
	}
	maxPrice, err := parsePrice(c.Query("maxPrice"))
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "maxPrice", "value": c.Query("maxPrice")})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid maxPrice"})
	}

	products := h.Catalog.Query(services.QueryParams{
		Q: q,
		Filters: search.Filters{
			Category:  strings.TrimSpace(c.Query("category")),
			Condition: strings.TrimSpace(c.Query("condition")),
			MinPrice:  minPrice,
			MaxPrice:  maxPrice,
			Location:  strings.TrimSpace(c.Query("location")),
		},
		Sort: c.Query("sort"),
	})

	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

type createProductRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	Category     string   `json:"category"`
	Condition    string   `json:"condition"`
	Images       []string `json:"images"`
	Location     string   `json:"location"`
	SellerID     string   `json:"sellerId"`
	SellerName   string   `json:"sellerName"`
	SellerRating *float64 `json:"sellerRating"`
}

func (r createProductRequest) missingField() string {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return "title"
	case strings.TrimSpace(r.Description) == "":
		return "description"
	case r.Price == nil:
		return "price"
	case strings.TrimSpace(r.Category) == "":
		return "category"
	case strings.TrimSpace(r.Condition) == "":
		return "condition"
	case strings.TrimSpace(r.Location) == "":
		return "location"
	}
	return ""
}

// Create is POST /api/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if f := req.missingField(); f != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": f})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Missing required field: %s", f)})
	}
	if *req.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must be non-negative"})
	}

	images := req.Images
	if len(images) == 0 {
		images = []string{"/placeholder.svg?height=300&width=300&text=" + url.QueryEscape(req.Title)}
	}

	sellerID, sellerName, sellerRating := req.SellerID, req.SellerName, 5.0
	if req.SellerRating != nil {
		sellerRating = *req.SellerRating
	}
	if u, ok := c.Locals("user").(*domain.User); ok && sellerID == "" {
		sellerID, sellerName = u.ID, u.Name
		if req.SellerRating == nil {
			sellerRating = u.Rating
		}
	}
	if sellerID == "" {
		sellerID = "current-user"
	}
	if sellerName == "" {
		sellerName = "Current User"
	}

	product := h.Products.Create(domain.Product{
		Title:        req.Title,
		Description:  req.Description,
		Price:        *req.Price,
		Category:     req.Category,
		Condition:    req.Condition,
		Images:       images,
		Location:     req.Location,
		SellerID:     sellerID,
		SellerName:   sellerName,
		SellerRating: sellerRating,
	})

	applog.Audit(c, "product.create", map[string]any{"id": product.ID, "title": product.Title})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": product})
}

// Get is GET /api/products/:id.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	p, found := h.Products.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(fiber.Map{"product": p})
}

// Update is PUT /api/products/:id with a partial body.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if patch.Price != nil && *patch.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must be non-negative"})
	}
	p, found := h.Products.Update(id, patch)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	applog.Audit(c, "product.update", map[string]any{"id": id})
	return c.JSON(fiber.Map{"product": p})
}

// Delete is DELETE /api/products/:id. Idempotent at the store level; an
// unknown id still reports 404 to the caller.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if !h.Products.Delete(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
