package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendai/demand-insights-api/internal/domain"
	"github.com/trendai/demand-insights-api/pkg/utils"
)

const (
	totalProducts       = 500
	historicalSales     = 8000
	recentSales         = 2000
	todaySales          = 100
	historicalWindowDay = 365
	recentWindowDay     = 7
)

// Dataset é o conjunto de dados gerado em memória usado quando o banco de
// documentos não está disponível. É imutável após a geração, exceto pelos
// repositórios de fallback que operam sobre cópias próprias.
type Dataset struct {
	Products []*domain.Product
	Sales    []*domain.Sale
	Users    []*domain.User
}

// Generate produz o dataset de fallback. Com seed != 0 a geração é
// determinística (útil em testes e para reprodução de cenários); com seed 0
// usa o relógio.
func Generate(seed int64) *Dataset {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	products := generateProducts(rng)
	sales := generateSales(rng, products)
	users := defaultUsers()

	logrus.WithFields(logrus.Fields{
		"products": len(products),
		"sales":    len(sales),
		"users":    len(users),
	}).Info("Dataset de fallback gerado")

	return &Dataset{
		Products: products,
		Sales:    sales,
		Users:    users,
	}
}

// ProductByID busca um produto do dataset pelo identificador
func (d *Dataset) ProductByID(id string) *domain.Product {
	for _, p := range d.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func generateProducts(rng *rand.Rand) []*domain.Product {
	products := make([]*domain.Product, 0, totalProducts)
	for i := range seedProducts {
		p := seedProducts[i]
		products = append(products, &p)
	}

	for i := len(seedProducts) + 1; i <= totalProducts; i++ {
		category := generatedCategories[rng.Intn(len(generatedCategories))]
		products = append(products, &domain.Product{
			ID:           fmt.Sprintf("PROD%03d", i),
			Name:         fmt.Sprintf("Product %d - %s", i, category),
			Category:     category,
			Price:        utils.RoundWithTwoDecimalPlace(rng.Float64()*200 + 10),
			CurrentStock: rng.Intn(500) + 50,
			ReorderPoint: rng.Intn(100) + 20,
			Supplier:     generatedSuppliers[rng.Intn(len(generatedSuppliers))],
			Seasonality:  randomSeasonality(rng),
			TrendScore:   utils.RoundWithOneDecimalPlace(rng.Float64()*4 + 6),
		})
	}

	return products
}

func generateSales(rng *rand.Rand, products []*domain.Product) []*domain.Sale {
	sales := make([]*domain.Sale, 0, historicalSales+recentSales+todaySales)
	today := utils.StartOfDay(time.Now().UTC())

	// Histórico do último ano
	for i := 0; i < historicalSales; i++ {
		date := today.AddDate(0, 0, -rng.Intn(historicalWindowDay))
		sales = append(sales, randomSale(rng, products, date, 50))
	}

	// Últimos 7 dias, para as métricas em tempo quase real
	for i := 0; i < recentSales; i++ {
		date := today.AddDate(0, 0, -rng.Intn(recentWindowDay))
		sales = append(sales, randomSale(rng, products, date, 50))
	}

	// Vendas de hoje, garantindo que a janela corrente nunca fique vazia
	for i := 0; i < todaySales; i++ {
		sales = append(sales, randomSale(rng, products, today, 20))
	}

	return sales
}

func randomSale(rng *rand.Rand, products []*domain.Product, date time.Time, maxQuantity int) *domain.Sale {
	product := products[rng.Intn(len(products))]
	quantity := rng.Intn(maxQuantity) + 1

	return &domain.Sale{
		ID:        fmt.Sprintf("SALE%08d", rng.Int63n(math.MaxInt32)),
		ProductID: product.ID,
		Quantity:  quantity,
		Revenue:   utils.RoundWithTwoDecimalPlace(float64(quantity) * product.Price),
		Channel:   salesChannels[rng.Intn(len(salesChannels))],
		Region:    salesRegions[rng.Intn(len(salesRegions))],
		Date:      date,
	}
}

func randomSeasonality(rng *rand.Rand) domain.Seasonality {
	switch rng.Intn(3) {
	case 0:
		return domain.SeasonalityHigh
	case 1:
		return domain.SeasonalityMedium
	default:
		return domain.SeasonalityLow
	}
}

// defaultUsers devolve os usuários padrão do modo fallback, permitindo login
// mesmo sem banco de documentos
func defaultUsers() []*domain.User {
	now := time.Now().UTC()

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	userHash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)

	return []*domain.User{
		{
			Email:        "admin@trendai.com",
			Name:         "Admin User",
			Role:         domain.RoleAdmin,
			PasswordHash: string(adminHash),
			IsActive:     true,
			CreatedAt:    now,
		},
		{
			Email:        "user@trendai.com",
			Name:         "Regular User",
			Role:         domain.RoleUser,
			PasswordHash: string(userHash),
			IsActive:     true,
			CreatedAt:    now,
		},
	}
}
