// Package seed generates a fake but internally consistent document store:
// staff accounts, a menu catalog, floor tables, today's active orders, a
// month of order history and the daily statistics derived from it.
package seed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/stats"
	"bistro-pos-service/internal/store"
	"bistro-pos-service/internal/utils"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"golang.org/x/crypto/bcrypt"
)

var fake = faker.New()

const (
	defaultPassword = "123456"
	historySpanDays = 14
	feedbackCount   = 25
	bestSellerCap   = 5
)

var menuNames = map[string][]string{
	"Coffee":     {"Flat White", "Cappuccino", "Espresso", "Caffè Mocha"},
	"Tea":        {"Earl Grey", "Jasmine Green", "Chai Latte", "Mint Infusion"},
	"Juice":      {"Orange Press", "Apple Ginger", "Carrot Zing", "Berry Blend"},
	"Smoothies":  {"Mango Lassi", "Green Machine", "Banana Oat", "Acai Bowl Shake"},
	"Pastries":   {"Butter Croissant", "Cinnamon Roll", "Almond Danish", "Carrot Cake"},
	"Sandwiches": {"Club Sandwich", "Caprese Ciabatta", "Smoked Ham Baguette", "Veggie Wrap"},
	"Salads":     {"Caesar Salad", "Greek Salad", "Quinoa Bowl", "Cobb Salad"},
}

// Generate builds a complete document rooted at now's date.
func Generate(now time.Time) (*store.Data, error) {
	d := &store.Data{
		Orders:               []models.Order{},
		OrderHistory:         []models.OrderHistoryEntry{},
		Feedback:             []models.Feedback{},
		Statistics:           []models.DailyStatistic{},
		AggregatedStatistics: []models.MonthlyStatistic{},
	}

	users, err := generateUsers(now)
	if err != nil {
		return nil, err
	}
	d.Users = users

	d.Categories = []models.Category{
		{ID: "cat1", Name: "Drinks"},
		{ID: "cat2", Name: "Food"},
	}
	d.SubCategories, d.MenuItems = generateMenu()
	d.AreaTables, d.Tables = generateFloor()

	d.Orders = generateTodaysOrders(d, now)
	d.OrderHistory = generateOrderHistory(d, now)
	d.Feedback = generateFeedback(now)
	d.Statistics = deriveDailyStatistics(d, now)

	return d, nil
}

func generateUsers(now time.Time) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	accounts := []struct {
		id, username, fullname, role string
	}{
		{"user1", "admin_user", "Admin User", models.RoleAdmin},
		{"user2", "cashier_user", "Cashier User", models.RoleCashier},
		{"user3", "server_user", "Server User", models.RoleServe},
	}

	users := make([]models.User, 0, len(accounts))
	for _, account := range accounts {
		created := fake.Time().TimeBetween(now.AddDate(-1, 0, 0), now.AddDate(0, 0, -30))
		users = append(users, models.User{
			ID:          account.id,
			Username:    account.username,
			Fullname:    account.fullname,
			Role:        account.role,
			Password:    string(hash),
			Email:       fake.Internet().Email(),
			PhoneNumber: fake.Phone().Number(),
			IsActive:    true,
			CreatedAt:   created.Format(time.RFC3339),
			UpdatedAt:   fake.Time().TimeBetween(created, now).Format(time.RFC3339),
		})
	}
	return users, nil
}

func generateMenu() ([]models.SubCategory, []models.MenuItem) {
	drinkSubCategories := []string{"Coffee", "Tea", "Juice", "Smoothies"}
	foodSubCategories := []string{"Pastries", "Sandwiches", "Salads"}

	var subCategories []models.SubCategory
	var menuItems []models.MenuItem
	subCategoryID, menuItemID := 1, 1

	appendGroup := func(names []string, categoryID string) {
		for _, name := range names {
			pool := menuNames[name]
			count := fake.IntBetween(1, len(pool))
			sub := models.SubCategory{
				ID:       strconv.Itoa(subCategoryID),
				Name:     name,
				Category: categoryID,
			}
			for i := 0; i < count; i++ {
				id := strconv.Itoa(menuItemID)
				sub.Items = append(sub.Items, id)
				menuItems = append(menuItems, models.MenuItem{
					ID:          id,
					Name:        pool[i],
					Price:       fake.Float64(2, 2, 15),
					SubCategory: sub.ID,
					IsAvailable: true,
				})
				menuItemID++
			}
			subCategories = append(subCategories, sub)
			subCategoryID++
		}
	}
	appendGroup(drinkSubCategories, "cat1")
	appendGroup(foodSubCategories, "cat2")

	return subCategories, menuItems
}

func generateFloor() ([]models.AreaTable, []models.Table) {
	var areas []models.AreaTable
	var tables []models.Table
	tableID := 1

	for areaIndex, areaName := range []string{"Main Room", "Patio"} {
		area := models.AreaTable{ID: strconv.Itoa(areaIndex + 1), Name: areaName}
		for i := 0; i < fake.IntBetween(2, 4); i++ {
			id := strconv.Itoa(tableID)
			area.Tables = append(area.Tables, id)
			status := "free"
			if fake.Bool() {
				status = "occupied"
			}
			tables = append(tables, models.Table{
				ID:        id,
				TableName: strings.ReplaceAll(areaName, " ", "") + id,
				Status:    status,
				AreaID:    area.ID,
			})
			tableID++
		}
		areas = append(areas, area)
	}
	return areas, tables
}

func randomMenuItem(d *store.Data) models.MenuItem {
	return d.MenuItems[fake.IntBetween(0, len(d.MenuItems)-1)]
}

func randomTableID(d *store.Data) string {
	return d.Tables[fake.IntBetween(0, len(d.Tables)-1)].ID
}

func generateOrderItems(d *store.Data, orderID string, idPrefix string) []models.OrderItem {
	items := make([]models.OrderItem, 0, 3)
	for i := 0; i < fake.IntBetween(1, 3); i++ {
		menuItem := randomMenuItem(d)
		items = append(items, models.OrderItem{
			ID:         fmt.Sprintf("%s-%s-%d", idPrefix, menuItem.ID, i),
			OrderID:    orderID,
			MenuItemID: menuItem.ID,
			Quantity:   fake.IntBetween(1, 3),
			Price:      menuItem.Price,
		})
	}
	return items
}

func generateTodaysOrders(d *store.Data, now time.Time) []models.Order {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	orders := []models.Order{}
	for i := 0; i < fake.IntBetween(3, 8); i++ {
		id := cuid.New()
		orders = append(orders, models.Order{
			ID:          id,
			TableID:     randomTableID(d),
			OrderStatus: models.OrderStatusNew,
			Timestamp:   fake.Time().TimeBetween(startOfDay, now).Format(time.RFC3339),
			OrderItems:  generateOrderItems(d, id, "orderItem-"+id),
		})
	}
	return orders
}

func generateOrderHistory(d *store.Data, now time.Time) []models.OrderHistoryEntry {
	cashiers := store.Filter(d.Users, func(u models.User) bool { return u.Role == models.RoleCashier })

	history := []models.OrderHistoryEntry{}
	counter := 1
	for offset := -historySpanDays; offset <= historySpanDays; offset++ {
		dayStart := now.AddDate(0, 0, offset)
		dayStart = time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, now.Location())
		dayEnd := dayStart.Add(24*time.Hour - time.Second)

		for i := 0; i < fake.IntBetween(0, 5); i++ {
			id := fmt.Sprintf("history%d", counter)
			createdAt := fake.Time().TimeBetween(dayStart, dayEnd)
			servedAt := fake.Time().TimeBetween(createdAt, createdAt.Add(30*time.Minute))
			completedAt := fake.Time().TimeBetween(servedAt, servedAt.Add(time.Hour))

			method := models.PaymentMethodCash
			if fake.Bool() {
				method = models.PaymentMethodOnline
			}

			entry := models.OrderHistoryEntry{
				Order: models.Order{
					ID:            id,
					TableID:       randomTableID(d),
					OrderStatus:   models.OrderStatusCompleted,
					Timestamp:     createdAt.Format(time.RFC3339),
					CreatedAt:     createdAt.Format(time.RFC3339),
					ServedAt:      servedAt.Format(time.RFC3339),
					CompletedAt:   completedAt.Format(time.RFC3339),
					PaymentMethod: method,
					CashierID:     cashiers[fake.IntBetween(0, len(cashiers)-1)].ID,
					OrderItems:    generateOrderItems(d, id, "historyItem"+strconv.Itoa(counter)),
				},
				OrderID: id,
			}
			history = append(history, entry)
			counter++
		}
	}
	return history
}

func generateFeedback(now time.Time) []models.Feedback {
	feedback := []models.Feedback{}
	for i := 0; i < feedbackCount; i++ {
		rating := fake.IntBetween(1, 5)
		comment := ""
		if rating > 3 || fake.Bool() {
			comment = fake.Lorem().Sentence(8)
		}
		feedback = append(feedback, models.Feedback{
			ID:        uuid.NewString(),
			Rating:    rating,
			Comment:   comment,
			Timestamp: fake.Time().TimeBetween(now.AddDate(0, 0, -historySpanDays), now.AddDate(0, 0, 3)).Format(time.RFC3339),
		})
	}
	return feedback
}

// deriveDailyStatistics rebuilds one daily record per date in the history
// window from the generated history and feedback, the same shape the live
// updater produces. Best sellers are capped at read size already so seeded
// days look like archived ones.
func deriveDailyStatistics(d *store.Data, now time.Time) []models.DailyStatistic {
	out := []models.DailyStatistic{}
	for offset := -historySpanDays; offset <= historySpanDays; offset++ {
		date := now.AddDate(0, 0, offset).Format("2006-01-02")

		entry := models.DailyStatistic{
			ID:                   "stats-" + date,
			Date:                 date,
			PaymentMethodSummary: map[string]int{},
			OrdersByHour:         make([]int, 24),
			BestSellingItems:     map[string]int{},
		}

		for _, h := range d.OrderHistory {
			if !strings.HasPrefix(h.CreatedAt, date) {
				continue
			}
			entry.TotalOrders++
			for _, item := range h.OrderItems {
				entry.TotalRevenue += item.Price * float64(item.Quantity)
				menuItem, ok := store.Find(d.MenuItems, func(m models.MenuItem) bool { return m.ID == item.MenuItemID })
				if !ok {
					continue
				}
				entry.BestSellingItems[menuItem.Name] += item.Quantity
			}
			if h.PaymentMethod != "" {
				entry.PaymentMethodSummary[h.PaymentMethod]++
			}
			if createdAt, err := time.Parse(time.RFC3339, h.CreatedAt); err == nil {
				entry.OrdersByHour[createdAt.Hour()]++
			}
		}

		top := map[string]int{}
		for _, rank := range stats.TopSellingItems(entry.BestSellingItems, bestSellerCap) {
			top[rank.Name] = rank.Quantity
		}
		entry.BestSellingItems = top

		var ratingSum, ratingCount int
		for _, f := range d.Feedback {
			if !strings.HasPrefix(f.Timestamp, date) {
				continue
			}
			ratingSum += f.Rating
			ratingCount++
			if f.Comment != "" {
				entry.TotalComments++
			}
		}
		if ratingCount > 0 {
			entry.AverageRating = utils.Round(float64(ratingSum)/float64(ratingCount), 2)
		}

		out = append(out, entry)
	}
	return out
}
