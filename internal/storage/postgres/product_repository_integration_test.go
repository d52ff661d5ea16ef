package postgres

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

func seedIntegrationProduct(t *testing.T, repo domain.ProductRepository, name string) domain.Product {
	t.Helper()

	product := domain.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       9.99,
		VAT:         0.2,
		Description: "integration seed",
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return product
}

func TestProductRepositoryIntegration_CreateGet(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	product := seedIntegrationProduct(t, repo, "Widget")

	stored, err := repo.Get(product.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if stored.Name != "Widget" || stored.Price != 9.99 || stored.VAT != 0.2 {
		t.Fatalf("unexpected product: %+v", stored)
	}

	if err := repo.Create(product); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
	if _, err := repo.Get(uuid.NewString()); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepositoryIntegration_FindByName(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	seedIntegrationProduct(t, repo, "Red Chair")
	seedIntegrationProduct(t, repo, "blue chair")
	seedIntegrationProduct(t, repo, "Table")

	chairs, err := repo.FindByName("CHAIR")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(chairs) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(chairs))
	}

	all, err := repo.FindByName("")
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
}

func TestProductRepositoryIntegration_SaveDelete(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	product := seedIntegrationProduct(t, repo, "Widget")

	product.Price = 42
	product.Description = "updated"
	if err := repo.Save(product); err != nil {
		t.Fatalf("save product: %v", err)
	}

	stored, err := repo.Get(product.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if stored.Price != 42 || stored.Description != "updated" {
		t.Fatalf("unexpected product after save: %+v", stored)
	}

	missing := product
	missing.ID = uuid.NewString()
	if err := repo.Save(missing); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	removed, err := repo.Delete(product.ID)
	if err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if !removed {
		t.Fatal("expected removed=true")
	}
	removed, err = repo.Delete(product.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if removed {
		t.Fatal("expected removed=false")
	}
}
