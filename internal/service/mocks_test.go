package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// memDB is an in-memory stand-in for the database shared by the mock repositories.
type memDB struct {
	customers   map[uuid.UUID]model.Customer
	products    map[uuid.UUID]model.Product
	inventories map[uuid.UUID]model.Inventory
	sales       map[uuid.UUID]model.Sale
	saleItems   map[uuid.UUID]model.SaleItem
	forecasts   map[uuid.UUID]model.Forecast
	users       map[uuid.UUID]model.User
	blacklist   map[string]model.BlacklistedToken
	seq         int
}

func newMemDB() *memDB {
	return &memDB{
		customers:   make(map[uuid.UUID]model.Customer),
		products:    make(map[uuid.UUID]model.Product),
		inventories: make(map[uuid.UUID]model.Inventory),
		sales:       make(map[uuid.UUID]model.Sale),
		saleItems:   make(map[uuid.UUID]model.SaleItem),
		forecasts:   make(map[uuid.UUID]model.Forecast),
		users:       make(map[uuid.UUID]model.User),
		blacklist:   make(map[string]model.BlacklistedToken),
	}
}

// stamp mimics the BeforeCreate hook and keeps creation order stable
func (db *memDB) stamp(base *model.BaseModel) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	db.seq++
	base.CreatedAt = time.Date(2024, 1, 1, 0, 0, db.seq, 0, time.UTC)
}

func (db *memDB) productWithInventory(id uuid.UUID) (*model.Product, bool) {
	product, ok := db.products[id]
	if !ok {
		return nil, false
	}
	product.Inventory = nil
	for _, inv := range db.inventories {
		if inv.ProductID == id {
			inv := inv
			product.Inventory = &inv
		}
	}
	return &product, true
}

func sortByCreated[T any](items []T, created func(*T) time.Time) {
	sort.Slice(items, func(i, j int) bool {
		return created(&items[i]).Before(created(&items[j]))
	})
}

// Customers

type mockCustomerRepo struct{ db *memDB }

func (r *mockCustomerRepo) Create(_ context.Context, customer *model.Customer) error {
	r.db.stamp(&customer.BaseModel)
	r.db.customers[customer.ID] = *customer
	return nil
}

func (r *mockCustomerRepo) FindAll(_ context.Context) ([]model.Customer, error) {
	customers := make([]model.Customer, 0, len(r.db.customers))
	for _, c := range r.db.customers {
		customers = append(customers, c)
	}
	sortByCreated(customers, func(c *model.Customer) time.Time { return c.CreatedAt })
	return customers, nil
}

func (r *mockCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, ok := r.db.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &customer, nil
}

func (r *mockCustomerRepo) FindByEmail(_ context.Context, email string) (*model.Customer, error) {
	for _, c := range r.db.customers {
		if c.Email == email {
			c := c
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCustomerRepo) Update(_ context.Context, customer *model.Customer) error {
	r.db.customers[customer.ID] = *customer
	return nil
}

func (r *mockCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.customers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.customers, id)
	for saleID, sale := range r.db.sales {
		if sale.CustomerID == id {
			delete(r.db.sales, saleID)
		}
	}
	return nil
}

// Products

type mockProductRepo struct {
	db      *memDB
	failInv bool // simulate a failure of the inventory insert
}

func (r *mockProductRepo) CreateWithInventory(_ context.Context, product *model.Product, inventory *model.Inventory) error {
	if r.failInv {
		return repository.ErrInvalidReference
	}
	r.db.stamp(&product.BaseModel)
	inventory.ProductID = product.ID
	r.db.stamp(&inventory.BaseModel)
	inventory.LastUpdated = inventory.CreatedAt
	r.db.products[product.ID] = *product
	r.db.inventories[inventory.ID] = *inventory
	product.Inventory = inventory
	return nil
}

func (r *mockProductRepo) FindAll(_ context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0, len(r.db.products))
	for id := range r.db.products {
		product, _ := r.db.productWithInventory(id)
		products = append(products, *product)
	}
	sortByCreated(products, func(p *model.Product) time.Time { return p.CreatedAt })
	return products, nil
}

func (r *mockProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	product, ok := r.db.productWithInventory(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (r *mockProductRepo) FindLowStock(ctx context.Context) ([]model.Product, error) {
	all, _ := r.FindAll(ctx)
	var low []model.Product
	for _, p := range all {
		if p.Inventory != nil && p.Inventory.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (r *mockProductRepo) Update(_ context.Context, product *model.Product) error {
	stored := *product
	stored.Inventory = nil
	r.db.products[product.ID] = stored
	return nil
}

func (r *mockProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.products, id)
	for invID, inv := range r.db.inventories {
		if inv.ProductID == id {
			delete(r.db.inventories, invID)
		}
	}
	return nil
}

// Inventory

type mockInventoryRepo struct{ db *memDB }

func (r *mockInventoryRepo) withProduct(inv model.Inventory) *model.Inventory {
	if product, ok := r.db.products[inv.ProductID]; ok {
		inv.Product = &product
	}
	return &inv
}

func (r *mockInventoryRepo) Create(_ context.Context, inventory *model.Inventory) error {
	for _, inv := range r.db.inventories {
		if inv.ProductID == inventory.ProductID {
			return repository.ErrDuplicate
		}
	}
	r.db.stamp(&inventory.BaseModel)
	inventory.LastUpdated = inventory.CreatedAt
	r.db.inventories[inventory.ID] = *inventory
	return nil
}

func (r *mockInventoryRepo) FindAll(_ context.Context) ([]model.Inventory, error) {
	inventories := make([]model.Inventory, 0, len(r.db.inventories))
	for _, inv := range r.db.inventories {
		inventories = append(inventories, *r.withProduct(inv))
	}
	sortByCreated(inventories, func(i *model.Inventory) time.Time { return i.CreatedAt })
	return inventories, nil
}

func (r *mockInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Inventory, error) {
	inv, ok := r.db.inventories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withProduct(inv), nil
}

func (r *mockInventoryRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*model.Inventory, error) {
	for _, inv := range r.db.inventories {
		if inv.ProductID == productID {
			return r.withProduct(inv), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockInventoryRepo) Update(_ context.Context, inventory *model.Inventory) error {
	r.db.seq++
	inventory.LastUpdated = time.Date(2024, 1, 1, 0, 0, r.db.seq, 0, time.UTC)
	stored := *inventory
	stored.Product = nil
	r.db.inventories[inventory.ID] = stored
	return nil
}

func (r *mockInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.inventories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.inventories, id)
	return nil
}

// Sales

type mockSaleRepo struct{ db *memDB }

func (r *mockSaleRepo) withDetails(sale model.Sale) *model.Sale {
	if customer, ok := r.db.customers[sale.CustomerID]; ok {
		sale.Customer = &customer
	}
	sale.Employee = nil
	if sale.EmployeeID != nil {
		if user, ok := r.db.users[*sale.EmployeeID]; ok {
			sale.Employee = &user
		}
	}
	sale.Items = nil
	for _, item := range r.db.saleItems {
		if item.SaleID == sale.ID {
			if product, ok := r.db.products[item.ProductID]; ok {
				item.Product = &product
			}
			sale.Items = append(sale.Items, item)
		}
	}
	sortByCreated(sale.Items, func(i *model.SaleItem) time.Time { return i.CreatedAt })
	return &sale
}

func (r *mockSaleRepo) Create(_ context.Context, sale *model.Sale) error {
	r.db.stamp(&sale.BaseModel)
	r.db.sales[sale.ID] = *sale
	return nil
}

func (r *mockSaleRepo) FindAll(_ context.Context) ([]model.Sale, error) {
	sales := make([]model.Sale, 0, len(r.db.sales))
	for _, sale := range r.db.sales {
		sales = append(sales, *r.withDetails(sale))
	}
	sortByCreated(sales, func(s *model.Sale) time.Time { return s.CreatedAt })
	return sales, nil
}

func (r *mockSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	sale, ok := r.db.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withDetails(sale), nil
}

func (r *mockSaleRepo) Update(_ context.Context, sale *model.Sale) error {
	stored := *sale
	stored.Customer, stored.Employee, stored.Items = nil, nil, nil
	r.db.sales[sale.ID] = stored
	return nil
}

func (r *mockSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.sales[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.sales, id)
	for itemID, item := range r.db.saleItems {
		if item.SaleID == id {
			delete(r.db.saleItems, itemID)
		}
	}
	return nil
}

// Sale items

type mockSaleItemRepo struct{ db *memDB }

func (r *mockSaleItemRepo) Create(_ context.Context, item *model.SaleItem) error {
	r.db.stamp(&item.BaseModel)
	stored := *item
	stored.Product = nil
	r.db.saleItems[item.ID] = stored
	return nil
}

func (r *mockSaleItemRepo) FindAll(_ context.Context) ([]model.SaleItem, error) {
	items := make([]model.SaleItem, 0, len(r.db.saleItems))
	for _, item := range r.db.saleItems {
		if product, ok := r.db.products[item.ProductID]; ok {
			item.Product = &product
		}
		items = append(items, item)
	}
	sortByCreated(items, func(i *model.SaleItem) time.Time { return i.CreatedAt })
	return items, nil
}

func (r *mockSaleItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SaleItem, error) {
	item, ok := r.db.saleItems[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if product, ok := r.db.products[item.ProductID]; ok {
		item.Product = &product
	}
	return &item, nil
}

func (r *mockSaleItemRepo) Update(_ context.Context, item *model.SaleItem) error {
	stored := *item
	stored.Product = nil
	r.db.saleItems[item.ID] = stored
	return nil
}

func (r *mockSaleItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.saleItems[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.saleItems, id)
	return nil
}

// Forecasts

type mockForecastRepo struct{ db *memDB }

func (r *mockForecastRepo) Create(_ context.Context, forecast *model.Forecast) error {
	r.db.stamp(&forecast.BaseModel)
	stored := *forecast
	stored.Product = nil
	r.db.forecasts[forecast.ID] = stored
	return nil
}

func (r *mockForecastRepo) FindAll(_ context.Context) ([]model.Forecast, error) {
	forecasts := make([]model.Forecast, 0, len(r.db.forecasts))
	for _, f := range r.db.forecasts {
		forecasts = append(forecasts, f)
	}
	sortByCreated(forecasts, func(f *model.Forecast) time.Time { return f.CreatedAt })
	return forecasts, nil
}

func (r *mockForecastRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Forecast, error) {
	forecast, ok := r.db.forecasts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if product, ok := r.db.products[forecast.ProductID]; ok {
		forecast.Product = &product
	}
	return &forecast, nil
}

func (r *mockForecastRepo) Update(_ context.Context, forecast *model.Forecast) error {
	stored := *forecast
	stored.Product = nil
	r.db.forecasts[forecast.ID] = stored
	return nil
}

func (r *mockForecastRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.forecasts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.forecasts, id)
	return nil
}

// Users

type mockUserRepo struct{ db *memDB }

func (r *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.db.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *mockUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.db.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		users = append(users, u)
	}
	sortByCreated(users, func(u *model.User) time.Time { return u.CreatedAt })
	return users, nil
}

func (r *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.db.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.db.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	r.db.stamp(&user.BaseModel)
	r.db.users[user.ID] = *user
	return nil
}

func (r *mockUserRepo) UpdatePassword(_ context.Context, userID uuid.UUID, hashedPassword string) error {
	user, ok := r.db.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Password = hashedPassword
	r.db.users[userID] = user
	return nil
}

func (r *mockUserRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	user, ok := r.db.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.LastLogin = &at
	r.db.users[userID] = user
	return nil
}

func (r *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.users, id)
	return nil
}

// Tokens

type mockTokenRepo struct{ db *memDB }

func (r *mockTokenRepo) Blacklist(_ context.Context, token *model.BlacklistedToken) error {
	if _, ok := r.db.blacklist[token.JTI]; ok {
		return repository.ErrDuplicate
	}
	r.db.blacklist[token.JTI] = *token
	return nil
}

func (r *mockTokenRepo) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	_, ok := r.db.blacklist[jti]
	return ok, nil
}

func (r *mockTokenRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	var n int64
	for jti, token := range r.db.blacklist {
		if token.ExpiresAt.Before(before) {
			delete(r.db.blacklist, jti)
			n++
		}
	}
	return n, nil
}

// Dashboard

type mockDashboardRepo struct {
	stats *repository.DashboardStats
	since time.Time
	err   error
}

func (r *mockDashboardRepo) GetDashboardStats(_ context.Context, since time.Time) (*repository.DashboardStats, error) {
	r.since = since
	return r.stats, r.err
}

// Notifier

type event struct {
	name    string
	payload interface{}
}

type mockNotifier struct {
	events []event
}

func (n *mockNotifier) Notify(name string, payload interface{}) {
	n.events = append(n.events, event{name: name, payload: payload})
}

func (n *mockNotifier) names() []string {
	names := make([]string, len(n.events))
	for i, e := range n.events {
		names[i] = e.name
	}
	return names
}

// Helpers

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
