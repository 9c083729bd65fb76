package services

import (
	"sort"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CategorySummary describes one category on the home page: its name, the
// image of its first product and how many products it holds.
type CategorySummary struct {
	Name         string `json:"name"`
	ImgURL       string `json:"imgUrl"`
	ProductCount int    `json:"productCount"`
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsByCategory retrieves products in one category. An empty
// category returns the whole catalog.
func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	if category == "" {
		return s.repo.GetAll()
	}
	return s.repo.GetByCategory(category)
}

// GetCategories returns the distinct category names.
func (s *ProductService) GetCategories() ([]string, error) {
	return s.repo.Categories()
}

// GetCategorySummaries aggregates products into per-category display
// entries, sorted alphabetically.
func (s *ProductService) GetCategorySummaries() ([]CategorySummary, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*CategorySummary)
	for _, p := range products {
		if entry, ok := byName[p.Category]; ok {
			entry.ProductCount++
			continue
		}
		byName[p.Category] = &CategorySummary{
			Name:         p.Category,
			ImgURL:       p.ImgURL,
			ProductCount: 1,
		}
	}

	summaries := make([]CategorySummary, 0, len(byName))
	for _, entry := range byName {
		summaries = append(summaries, *entry)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}
