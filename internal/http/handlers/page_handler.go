package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/search"
	"ecofinds/internal/services"
	"ecofinds/internal/validate"
)

// PageHandler serves the server-rendered storefront pages.
type PageHandler struct {
	Catalog *services.CatalogService
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	latest := h.Catalog.Query(services.QueryParams{Sort: "newest"})
	if len(latest) > 6 {
		latest = latest[:6]
	}
	return render(c, "home", fiber.Map{
		"Categories": domain.Categories,
		"Latest":     latest,
	})
}

// Browse runs the same search/filter/sort pipeline as the JSON API and
// renders the results.
func (h *PageHandler) Browse(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	minPrice, errMin := parsePrice(c.Query("minPrice"))
	maxPrice, errMax := parsePrice(c.Query("maxPrice"))
	if errMin != nil || errMax != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "price", "path": c.Path()})
		return c.Status(fiber.StatusBadRequest).Render("browse", fiber.Map{
			"Q": q, "Products": []domain.Product{}, "Count": 0,
			"Categories": domain.Categories, "Conditions": domain.Conditions,
			"Err": "Enter valid price bounds",
		})
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

	return render(c, "browse", fiber.Map{
		"Q": q, "Category": c.Query("category"), "Condition": c.Query("condition"),
		"Sort": c.Query("sort"), "Location": c.Query("location"),
		"Categories": domain.Categories, "Conditions": domain.Conditions,
		"Products": products, "Count": len(products),
	})
}

func (h *PageHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This listing is no longer available"})
	}
	p, found := h.Catalog.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This listing is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p})
}
