package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newProductInput(name string) *ProductInput {
	return &ProductInput{
		Name:     name,
		Price:    dec("19.99"),
		Cost:     dec("12.50"),
		Category: "Hardware",
	}
}

func TestProductService(t *testing.T) {
	ctx := context.Background()

	t.Run("Create_DefaultsInventory", func(t *testing.T) {
		db := newMemDB()
		notifier := &mockNotifier{}
		svc := NewProductService(&mockProductRepo{db: db}, notifier)

		product, err := svc.Create(ctx, newProductInput("Hammer"))
		require.NoError(t, err)
		require.Equal(t, "pcs", product.Unit)
		require.Equal(t, "19.99", product.Price)
		require.Equal(t, 0, product.InventoryStock)
		require.Equal(t, 10, product.InventoryReorderLevel)

		require.Len(t, db.inventories, 1)
		for _, inv := range db.inventories {
			require.Equal(t, product.ID, inv.ProductID)
		}
		require.Equal(t, []string{EventProductCreated}, notifier.names())
	})

	t.Run("Create_UsesGivenStockLevels", func(t *testing.T) {
		db := newMemDB()
		svc := NewProductService(&mockProductRepo{db: db}, &mockNotifier{})

		in := newProductInput("Saw")
		in.Unit = "box"
		in.InventoryStock = intPtr(3)
		in.ReorderLevel = intPtr(0)

		product, err := svc.Create(ctx, in)
		require.NoError(t, err)
		require.Equal(t, "box", product.Unit)
		require.Equal(t, 3, product.InventoryStock)
		require.Equal(t, 0, product.InventoryReorderLevel)
	})

	t.Run("Create_FailsOnNegativePrice", func(t *testing.T) {
		db := newMemDB()
		notifier := &mockNotifier{}
		svc := NewProductService(&mockProductRepo{db: db}, notifier)

		in := newProductInput("Drill")
		in.Price = dec("-1")

		_, err := svc.Create(ctx, in)
		require.Equal(t, KindValidation, KindOf(err))
		require.Empty(t, db.products)
		require.Empty(t, db.inventories)
		require.Empty(t, notifier.events)
	})

	t.Run("Create_FailedInventoryLeavesNothing", func(t *testing.T) {
		db := newMemDB()
		svc := NewProductService(&mockProductRepo{db: db, failInv: true}, &mockNotifier{})

		_, err := svc.Create(ctx, newProductInput("Drill"))
		require.Error(t, err)
		require.Empty(t, db.products)
	})

	t.Run("Get_MissingInventoryReportsDefaults", func(t *testing.T) {
		db := newMemDB()
		svc := NewProductService(&mockProductRepo{db: db}, &mockNotifier{})

		product, err := svc.Create(ctx, newProductInput("Legacy"))
		require.NoError(t, err)
		for id := range db.inventories {
			delete(db.inventories, id)
		}

		got, err := svc.Get(ctx, product.ID)
		require.NoError(t, err)
		require.Equal(t, 0, got.InventoryStock)
		require.Equal(t, 10, got.InventoryReorderLevel)
	})

	t.Run("LowStock_IncludesProductsAtThreshold", func(t *testing.T) {
		db := newMemDB()
		svc := NewProductService(&mockProductRepo{db: db}, &mockNotifier{})

		levels := map[string][2]int{"low": {5, 10}, "equal": {10, 10}, "plenty": {50, 10}}
		for name, l := range levels {
			in := newProductInput(name)
			in.InventoryStock = intPtr(l[0])
			in.ReorderLevel = intPtr(l[1])
			_, err := svc.Create(ctx, in)
			require.NoError(t, err)
		}

		low, err := svc.LowStock(ctx)
		require.NoError(t, err)

		var names []string
		for _, p := range low {
			names = append(names, p.Name)
		}
		require.ElementsMatch(t, []string{"low", "equal"}, names)
	})

	t.Run("Update_MergesPartialInput", func(t *testing.T) {
		db := newMemDB()
		notifier := &mockNotifier{}
		svc := NewProductService(&mockProductRepo{db: db}, notifier)

		in := newProductInput("Hammer")
		in.InventoryStock = intPtr(7)
		created, err := svc.Create(ctx, in)
		require.NoError(t, err)

		patch, err := svc.Input(ctx, created.ID)
		require.NoError(t, err)
		patch.Price = dec("24.5")

		updated, err := svc.Update(ctx, created.ID, patch)
		require.NoError(t, err)
		require.Equal(t, "24.50", updated.Price)
		require.Equal(t, "12.50", updated.Cost)
		require.Equal(t, 7, updated.InventoryStock)
		require.Equal(t, []string{EventProductCreated, EventProductUpdated}, notifier.names())
	})

	t.Run("Delete_CascadesInventory", func(t *testing.T) {
		db := newMemDB()
		notifier := &mockNotifier{}
		svc := NewProductService(&mockProductRepo{db: db}, notifier)

		created, err := svc.Create(ctx, newProductInput("Hammer"))
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID))
		require.Empty(t, db.inventories)
		require.Equal(t, KindNotFound, KindOf(svc.Delete(ctx, created.ID)))
		require.Equal(t, []string{EventProductCreated, EventProductDeleted}, notifier.names())
	})
}
