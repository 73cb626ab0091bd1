package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/service"
)

// ProductHandler handles catalog product endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// FilterRequest narrows the product listing. Checked carries category IDs,
// Radio an optional [min, max] price pair.
type FilterRequest struct {
	Checked []uuid.UUID       `json:"checked"`
	Radio   []decimal.Decimal `json:"radio"`
}

// bindProductForm reads the multipart form of a create or update request.
func (h *ProductHandler) bindProductForm(c echo.Context) (service.ProductInput, *service.PhotoUpload, error) {
	var in service.ProductInput

	in.Name = c.FormValue("name")
	in.Description = c.FormValue("description")

	if raw := c.FormValue("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return in, nil, apperrors.NewValidationError("invalid price")
		}
		in.Price = price
	}
	if raw := c.FormValue("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return in, nil, apperrors.NewValidationError("invalid category id")
		}
		in.CategoryID = categoryID
	}
	if raw := c.FormValue("quantity"); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return in, nil, apperrors.NewValidationError("invalid quantity")
		}
		in.Quantity = quantity
	}
	if raw := c.FormValue("shipping"); raw != "" {
		shipping, err := strconv.ParseBool(raw)
		if err != nil {
			return in, nil, apperrors.NewValidationError("invalid shipping flag")
		}
		in.Shipping = shipping
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		// Photo is optional.
		return in, nil, nil
	}
	if fileHeader.Size > service.MaxPhotoSize {
		return in, nil, apperrors.NewValidationError("photo needs to be less than 1mb")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return in, nil, apperrors.NewValidationError("unreadable photo upload")
	}
	// Closed by the multipart form cleanup at the end of the request.
	photo := &service.PhotoUpload{
		Reader:      file,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}
	return in, photo, nil
}

// Create godoc
// @Summary Create a product (admin, multipart)
// @Tags product
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Router /product/create-product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	in, photo, err := h.bindProductForm(c)
	if err != nil {
		return fail(c, err)
	}

	product, err := h.productService.Create(c.Request().Context(), in, photo)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "new product is successfully created",
		"product": product,
	})
}

// Update godoc
// @Summary Update a product (admin, multipart)
// @Tags product
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param pid path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /product/update-product/{pid} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		return fail(c, apperrors.NewValidationError("invalid product id"))
	}

	in, photo, err := h.bindProductForm(c)
	if err != nil {
		return fail(c, err)
	}

	product, err := h.productService.Update(c.Request().Context(), id, in, photo)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "product is updated successfully",
		"product": product,
	})
}

// Delete godoc
// @Summary Delete a product (admin)
// @Tags product
// @Produce json
// @Security BearerAuth
// @Param pid path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Router /product/delete-product/{pid} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		return fail(c, apperrors.NewValidationError("invalid product id"))
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "product deleted successfully",
	})
}

// List godoc
// @Summary List the newest products
// @Tags product
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /product/all-product [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":       true,
		"totalProducts": len(products),
		"products":      products,
	})
}

// GetBySlug godoc
// @Summary Get a single product by slug
// @Tags product
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.Response
// @Router /product/single-product/{slug} [get]
func (h *ProductHandler) GetBySlug(c echo.Context) error {
	product, err := h.productService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"product": product,
	})
}

// Photo godoc
// @Summary Serve a product photo
// @Tags product
// @Produce octet-stream
// @Param pid path string true "Product ID"
// @Success 200 {file} binary
// @Failure 404 {object} errors.Response
// @Router /product/photo-product/{pid} [get]
func (h *ProductHandler) Photo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		return fail(c, apperrors.NewValidationError("invalid product id"))
	}

	reader, contentType, err := h.productService.Photo(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, contentType, reader)
}

// Filter godoc
// @Summary Filter products by categories and price range
// @Tags product
// @Accept json
// @Produce json
// @Param request body FilterRequest true "Filter criteria"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Router /product/filter-product [post]
func (h *ProductHandler) Filter(c echo.Context) error {
	var req FilterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}

	products, err := h.productService.Filter(c.Request().Context(), req.Checked, req.Radio)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"products": products,
	})
}

// Search godoc
// @Summary Search products by keyword
// @Tags product
// @Produce json
// @Param keywords path string true "Search keyword"
// @Success 200 {object} map[string]interface{}
// @Router /product/search-product/{keywords} [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.productService.Search(c.Request().Context(), c.Param("keywords"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"products": products,
	})
}

// Similar godoc
// @Summary List products similar to the given one
// @Tags product
// @Produce json
// @Param pid path string true "Product ID"
// @Param cid path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Router /product/similar-product/{pid}/{cid} [get]
func (h *ProductHandler) Similar(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		return fail(c, apperrors.NewValidationError("invalid product id"))
	}
	categoryID, err := uuid.Parse(c.Param("cid"))
	if err != nil {
		return fail(c, apperrors.NewValidationError("invalid category id"))
	}

	products, err := h.productService.Similar(c.Request().Context(), productID, categoryID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"products": products,
	})
}

// ByCategory godoc
// @Summary List products of a category
// @Tags product
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.Response
// @Router /product/product-category/{slug} [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	category, products, err := h.productService.ByCategorySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"category": category,
		"products": products,
	})
}
