package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mraditya/warungo/internal/apperr"
	"github.com/mraditya/warungo/internal/catalog"
)

type createCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type createProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int            `json:"stock_quantity" binding:"required,gte=0"`
	CategoryID    int64           `json:"category_id" binding:"required"`
	ImageURL      *string         `json:"image_url"`
}

type updateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity" binding:"omitempty,gte=0"`
	CategoryID    *int64           `json:"category_id"`
	ImageURL      *string          `json:"image_url"`
}

type searchProductsRequest struct {
	Query      string   `form:"query"`
	CategoryID *int64   `form:"category_id"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type createOrderRequest struct {
	CartItemIDs []int64 `json:"cart_item_ids" binding:"required,min=1,dive,required"`
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.catalog.ListCategories(c.Request.Context())
	if err != nil {
		s.respondError(c, "list_categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, "create_category", err)
		return
	}

	category, err := s.catalog.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		s.respondError(c, "create_category", err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.ListProducts(c.Request.Context())
	if err != nil {
		s.respondError(c, "list_products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listProductsWithCategory(c *gin.Context) {
	products, err := s.catalog.ListProductsWithCategory(c.Request.Context())
	if err != nil {
		s.respondError(c, "list_products_with_category", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) searchProducts(c *gin.Context) {
	var req searchProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.bindError(c, "search_products", err)
		return
	}

	filter := catalog.SearchFilter{
		Query:      req.Query,
		CategoryID: req.CategoryID,
	}
	if req.MinPrice != nil {
		min := decimal.NewFromFloat(*req.MinPrice)
		filter.MinPrice = &min
	}
	if req.MaxPrice != nil {
		max := decimal.NewFromFloat(*req.MaxPrice)
		filter.MaxPrice = &max
	}

	products, err := s.catalog.SearchProducts(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, "search_products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listProductsByCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.respondError(c, "list_products_by_category", err)
		return
	}

	products, err := s.catalog.ListProductsByCategory(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, "list_products_by_category", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, "create_product", err)
		return
	}
	if !req.Price.IsPositive() {
		s.respondError(c, "create_product",
			&apperr.ValidationError{Message: "price must be greater than zero"})
		return
	}

	product, err := s.catalog.CreateProduct(c.Request.Context(), catalog.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: *req.StockQuantity,
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		s.respondError(c, "create_product", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.respondError(c, "update_product", err)
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, "update_product", err)
		return
	}
	if req.Price != nil && !req.Price.IsPositive() {
		s.respondError(c, "update_product",
			&apperr.ValidationError{Message: "price must be greater than zero"})
		return
	}

	product, err := s.catalog.UpdateProduct(c.Request.Context(), id, catalog.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		s.respondError(c, "update_product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) listCartItems(c *gin.Context) {
	items, err := s.cart.List(c.Request.Context())
	if err != nil {
		s.respondError(c, "list_cart_items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, "add_to_cart", err)
		return
	}

	item, err := s.cart.Add(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		s.respondError(c, "add_to_cart", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateCartItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.respondError(c, "update_cart_item", err)
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, "update_cart_item", err)
		return
	}

	item, err := s.cart.Update(c.Request.Context(), id, req.Quantity)
	if err != nil {
		s.respondError(c, "update_cart_item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) removeFromCart(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.respondError(c, "remove_from_cart", err)
		return
	}

	item, err := s.cart.Remove(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, "remove_from_cart", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, "create_order", err)
		return
	}

	order, err := s.checkout.CreateOrder(c.Request.Context(), req.CartItemIDs)
	if err != nil {
		s.respondError(c, "create_order", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, &apperr.ValidationError{Message: "invalid id: " + c.Param("id")}
	}
	return id, nil
}
