package memory_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
)

func newProduct(id, name string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: 10, VAT: 0.2}
}

func TestProductRepository_CreateGet(t *testing.T) {
	repo := memory.NewProductRepository()
	product := newProduct("product-1", "Widget")

	if err := repo.Create(product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Name != "Widget" {
		t.Fatalf("unexpected product: %+v", stored)
	}

	if err := repo.Create(product); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_FindByName(t *testing.T) {
	repo := memory.NewProductRepository()
	seed := []domain.Product{
		newProduct("p1", "Red Chair"),
		newProduct("p2", "blue chair"),
		newProduct("p3", "Table"),
	}
	for _, product := range seed {
		if err := repo.Create(product); err != nil {
			t.Fatalf("seed %s: %v", product.Name, err)
		}
	}

	// Поиск без учёта регистра по подстроке.
	chairs, err := repo.FindByName("CHAIR")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(chairs) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(chairs))
	}

	// Пустой запрос возвращает весь каталог, отсортированный по имени.
	all, err := repo.FindByName("")
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatalf("results not sorted: %+v", all)
		}
	}

	none, err := repo.FindByName("couch")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
}

func TestProductRepository_SaveDelete(t *testing.T) {
	repo := memory.NewProductRepository()
	product := newProduct("product-1", "Widget")

	if err := repo.Save(product); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on save, got %v", err)
	}

	if err := repo.Create(product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	product.Price = 42
	if err := repo.Save(product); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	stored, err := repo.Get(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Price != 42 {
		t.Fatalf("expected updated price, got %v", stored.Price)
	}

	removed, err := repo.Delete(product.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !removed {
		t.Fatal("expected removed=true")
	}
	removed, err = repo.Delete(product.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if removed {
		t.Fatal("expected removed=false")
	}
}
