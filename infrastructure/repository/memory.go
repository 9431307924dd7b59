package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/trendai/demand-insights-api/internal/dataset"
	"github.com/trendai/demand-insights-api/internal/domain"
)

// MemoryStore guarda o dataset de fallback com acesso protegido por mutex.
// Escritas no modo fallback mutam apenas este estado em memória e são
// perdidas no restart do processo.
type MemoryStore struct {
	mu       sync.RWMutex
	products []*domain.Product
	sales    []*domain.Sale
	users    map[string]*domain.User
}

// NewMemoryStore copia o dataset gerado para um estado mutável próprio
func NewMemoryStore(ds *dataset.Dataset) *MemoryStore {
	products := make([]*domain.Product, 0, len(ds.Products))
	for _, p := range ds.Products {
		cp := *p
		products = append(products, &cp)
	}

	sales := make([]*domain.Sale, 0, len(ds.Sales))
	for _, s := range ds.Sales {
		cp := *s
		sales = append(sales, &cp)
	}

	users := make(map[string]*domain.User, len(ds.Users))
	for _, u := range ds.Users {
		cp := *u
		users[strings.ToLower(u.Email)] = &cp
	}

	return &MemoryStore{
		products: products,
		sales:    sales,
		users:    users,
	}
}

func (m *MemoryStore) listProducts(filters domain.ProductFilters) ([]*domain.Product, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.LowStock && !p.IsLowStock() {
			continue
		}
		cp := *p
		filtered = append(filtered, &cp)
	}

	// Mesma ordenação da listagem persistida: trend score decrescente
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TrendScore > filtered[j].TrendScore
	})

	total := len(filtered)
	start := filters.Offset
	if start > total {
		start = total
	}
	end := start + filters.Limit
	if end > total {
		end = total
	}

	return filtered[start:end], total
}

func (m *MemoryStore) allProducts() []*domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (m *MemoryStore) lowStockProducts() []*domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Product, 0)
	for _, p := range m.products {
		if !p.IsLowStock() {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (m *MemoryStore) productByID(id string) *domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.products {
		if p.ID == id {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (m *MemoryStore) insertProduct(product *domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *product
	m.products = append(m.products, &cp)
}

func (m *MemoryStore) updateProduct(req *domain.UpdateProductRequest) *domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		if p.ID != req.ID {
			continue
		}
		applyProductUpdate(p, req)
		cp := *p
		return &cp
	}
	return nil
}

func (m *MemoryStore) deleteProduct(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return true
		}
	}
	return false
}

func (m *MemoryStore) listSales(filters domain.SaleFilters) ([]*domain.Sale, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := make([]*domain.Sale, 0, len(m.sales))
	for _, s := range m.sales {
		if filters.ProductID != "" && s.ProductID != filters.ProductID {
			continue
		}
		if filters.Region != "" && s.Region != filters.Region {
			continue
		}
		if filters.Channel != "" && string(s.Channel) != filters.Channel {
			continue
		}
		if filters.StartDate != nil && s.Date.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && s.Date.After(*filters.EndDate) {
			continue
		}
		cp := *s
		filtered = append(filtered, &cp)
	}

	// Mesma ordenação da listagem persistida: mais recente primeiro
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	total := len(filtered)
	start := filters.Offset
	if start > total {
		start = total
	}
	end := start + filters.Limit
	if end > total {
		end = total
	}

	return filtered[start:end], total
}

func (m *MemoryStore) salesSince(since time.Time) []*domain.Sale {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Sale, 0)
	for _, s := range m.sales {
		if s.Date.Before(since) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out
}

func (m *MemoryStore) insertSale(sale *domain.Sale) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *sale
	m.sales = append(m.sales, &cp)
}

func (m *MemoryStore) userByEmail(email string) *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil
	}
	cp := *u
	return &cp
}

func (m *MemoryStore) upsertUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *user
	m.users[strings.ToLower(user.Email)] = &cp
}

func (m *MemoryStore) listUsers(limit, offset int) ([]*domain.User, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		all = append(all, &cp)
	}
	sortUsersByCreation(all)

	total := len(all)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return all[start:end], total
}

func sortUsersByCreation(users []*domain.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
}

func applyProductUpdate(p *domain.Product, req *domain.UpdateProductRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.CurrentStock != nil {
		p.CurrentStock = *req.CurrentStock
	}
	if req.ReorderPoint != nil {
		p.ReorderPoint = *req.ReorderPoint
	}
	if req.Supplier != nil {
		p.Supplier = *req.Supplier
	}
	if req.Seasonality != nil {
		p.Seasonality = *req.Seasonality
	}
	if req.TrendScore != nil {
		p.TrendScore = *req.TrendScore
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now
}
