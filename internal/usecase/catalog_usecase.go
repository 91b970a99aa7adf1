package usecase

import (
	"context"
	"fmt"
	"time"

	"velora-backend/config"
	"velora-backend/internal/domain"
	"velora-backend/pkg/cache"
	"velora-backend/pkg/utils"
)

type CatalogUsecase struct {
	repo  domain.ProductRepository
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(repo domain.ProductRepository, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

func (u *CatalogUsecase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	key := fmt.Sprintf("product:id:%s", id)
	if val, found := u.cache.Get(key); found {
		return val.(*domain.Product), nil
	}

	product, err := u.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.cache.Set(key, product, u.cfg.CacheProductTTL)

	return product, nil
}

func (uc *CatalogUsecase) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if product.ID == "" {
		product.ID = utils.GenerateUUID()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	product.IsActive = true

	return uc.repo.CreateProduct(ctx, product)
}

func (uc *CatalogUsecase) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		return fmt.Errorf("product ID required")
	}
	if err := validateProduct(product); err != nil {
		return err
	}
	product.UpdatedAt = time.Now()

	uc.cache.Delete(fmt.Sprintf("product:id:%s", product.ID))
	return uc.repo.UpdateProduct(ctx, product)
}

func (uc *CatalogUsecase) UpdateProductStatus(ctx context.Context, id string, isActive bool) error {
	uc.cache.Delete(fmt.Sprintf("product:id:%s", id))
	return uc.repo.UpdateProductStatus(ctx, id, isActive)
}

func (uc *CatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	uc.cache.Delete(fmt.Sprintf("product:id:%s", id))
	return uc.repo.DeleteProduct(ctx, id)
}

func validateProduct(product *domain.Product) error {
	verr := &domain.ValidationError{}
	if product.Name == "" {
		verr.Add("name", "is required")
	}
	if _, ok := domain.ParseCategory(string(product.Category)); !ok {
		verr.Add("category", "must be one of: men, women, accessories, shoes, bags, jewelry")
	}
	if product.Price < 0 {
		verr.Add("price", "must not be negative")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
