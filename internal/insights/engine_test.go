package insights

import (
	"testing"
	"time"

	"pocketledger/internal/models"
)

func expense(categoryID string, amount float64, date int64) models.Transaction {
	return models.NewTransaction(models.Transaction{
		Amount:     amount,
		Type:       models.TransactionTypeExpense,
		CategoryID: categoryID,
		Date:       date,
	})
}

func income(categoryID string, amount float64, date int64) models.Transaction {
	return models.NewTransaction(models.Transaction{
		Amount:     amount,
		Type:       models.TransactionTypeIncome,
		CategoryID: categoryID,
		Date:       date,
	})
}

func ms(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).UnixMilli()
}

func TestResolveCategory(t *testing.T) {
	categories := []models.Category{
		models.NewCategory(models.Category{Base: models.Base{ID: "c1"}, Name: "Food", Color: "#111111"}),
	}

	t.Run("known", func(t *testing.T) {
		name, color := ResolveCategory(categories, "c1")
		if name != "Food" || color != "#111111" {
			t.Errorf("expected Food/#111111, got %s/%s", name, color)
		}
	})

	t.Run("dangling", func(t *testing.T) {
		name, color := ResolveCategory(categories, "deleted")
		if name != UnknownCategoryName || color != unknownCategoryColor {
			t.Errorf("expected fallback, got %s/%s", name, color)
		}
	})
}

func TestComputeBudgetProgress(t *testing.T) {
	now := time.Now().UnixMilli()

	t.Run("partial_spend", func(t *testing.T) {
		budget := models.NewBudget(models.Budget{CategoryID: "c1", Amount: 1000})
		transactions := []models.Transaction{
			expense("c1", 700, now),
			expense("other", 999, now),
			income("c1", 500, now), // income never counts against a budget
		}

		p := ComputeBudgetProgress(budget, transactions)
		if p.Spent != 700 {
			t.Errorf("expected spent 700, got %v", p.Spent)
		}
		if p.Percentage != 70 {
			t.Errorf("expected 70%%, got %v", p.Percentage)
		}
		if p.Remaining != 300 {
			t.Errorf("expected remaining 300, got %v", p.Remaining)
		}
		if p.OverBudget {
			t.Error("expected not over budget")
		}
	})

	t.Run("over_budget_clamps_display", func(t *testing.T) {
		budget := models.NewBudget(models.Budget{CategoryID: "c1", Amount: 1000})
		transactions := []models.Transaction{expense("c1", 1200, now)}

		p := ComputeBudgetProgress(budget, transactions)
		if p.Percentage != 100 {
			t.Errorf("expected display percentage clamped to 100, got %v", p.Percentage)
		}
		if !p.OverBudget {
			t.Error("expected over-budget flag from unclamped spend")
		}
		if p.Spent != 1200 {
			t.Errorf("expected true spend preserved, got %v", p.Spent)
		}
		if p.Remaining != -200 {
			t.Errorf("expected negative remaining, got %v", p.Remaining)
		}
	})

	t.Run("zero_amount_is_invalid", func(t *testing.T) {
		budget := models.NewBudget(models.Budget{CategoryID: "c1", Amount: 0})
		p := ComputeBudgetProgress(budget, []models.Transaction{expense("c1", 50, now)})

		if !p.Invalid {
			t.Error("expected invalid flag for zero budget")
		}
		if p.Percentage != 0 {
			t.Errorf("expected 0%% for zero budget, got %v", p.Percentage)
		}
	})

	t.Run("subcategory_scope", func(t *testing.T) {
		budget := models.NewBudget(models.Budget{CategoryID: "c1", SubcategoryID: "s1", Amount: 100})
		transactions := []models.Transaction{
			models.NewTransaction(models.Transaction{Amount: 30, Type: models.TransactionTypeExpense, CategoryID: "c1", SubcategoryID: "s1", Date: now}),
			models.NewTransaction(models.Transaction{Amount: 40, Type: models.TransactionTypeExpense, CategoryID: "c1", SubcategoryID: "s2", Date: now}),
			expense("c1", 50, now),
		}

		p := ComputeBudgetProgress(budget, transactions)
		if p.Spent != 30 {
			t.Errorf("expected only the matching subcategory counted, got %v", p.Spent)
		}
	})
}

func TestExpenseBreakdown(t *testing.T) {
	now := time.Now().UnixMilli()
	categories := []models.Category{
		models.NewCategory(models.Category{Base: models.Base{ID: "c1"}, Name: "Food", Color: "#111111"}),
		models.NewCategory(models.Category{Base: models.Base{ID: "c2"}, Name: "Rent", Color: "#222222"}),
	}

	t.Run("sums_and_sorts_descending", func(t *testing.T) {
		transactions := []models.Transaction{
			expense("c1", 100, now),
			expense("c1", 50, now),
			expense("c2", 400, now),
			income("c1", 1000, now),
		}

		slices := ExpenseBreakdown(transactions, categories)
		if len(slices) != 2 {
			t.Fatalf("expected 2 slices, got %d", len(slices))
		}
		if slices[0].Name != "Rent" || slices[0].Amount != 400 {
			t.Errorf("expected Rent 400 first, got %s %v", slices[0].Name, slices[0].Amount)
		}
		if slices[1].Name != "Food" || slices[1].Amount != 150 {
			t.Errorf("expected Food 150 second, got %s %v", slices[1].Name, slices[1].Amount)
		}
	})

	t.Run("equal_amounts_sort_by_name", func(t *testing.T) {
		transactions := []models.Transaction{
			expense("c2", 100, now),
			expense("c1", 100, now),
		}

		slices := ExpenseBreakdown(transactions, categories)
		if slices[0].Name != "Food" || slices[1].Name != "Rent" {
			t.Errorf("expected name order on ties, got %s then %s", slices[0].Name, slices[1].Name)
		}
	})

	t.Run("dangling_reference_uses_fallback", func(t *testing.T) {
		transactions := []models.Transaction{expense("deleted", 75, now)}

		slices := ExpenseBreakdown(transactions, categories)
		if len(slices) != 1 {
			t.Fatalf("expected 1 slice, got %d", len(slices))
		}
		if slices[0].Name != UnknownCategoryName {
			t.Errorf("expected fallback name, got %s", slices[0].Name)
		}
		if slices[0].Amount != 75 {
			t.Errorf("expected amount kept, got %v", slices[0].Amount)
		}
	})

	t.Run("uncategorized_skipped", func(t *testing.T) {
		transactions := []models.Transaction{expense("", 75, now)}
		if got := ExpenseBreakdown(transactions, categories); len(got) != 0 {
			t.Errorf("expected transactions with no category skipped, got %d slices", len(got))
		}
	})
}

func TestMonthlySeries(t *testing.T) {
	t.Run("year_boundary_sorts_numerically", func(t *testing.T) {
		transactions := []models.Transaction{
			expense("c1", 10, ms(2025, time.January, 15)),
			expense("c1", 20, ms(2024, time.December, 15)),
		}

		series := MonthlySeries(transactions)
		if len(series) != 2 {
			t.Fatalf("expected 2 points, got %d", len(series))
		}
		// "Dec" sorts after "Jan" lexically; the numeric sort must win.
		if series[0].Label != "Dec 24" || series[1].Label != "Jan 25" {
			t.Errorf("expected Dec 24 then Jan 25, got %s then %s", series[0].Label, series[1].Label)
		}
	})

	t.Run("accumulates_both_types", func(t *testing.T) {
		transactions := []models.Transaction{
			income("c1", 3000, ms(2025, time.March, 1)),
			expense("c1", 1200, ms(2025, time.March, 10)),
			expense("c1", 300, ms(2025, time.March, 20)),
		}

		series := MonthlySeries(transactions)
		if len(series) != 1 {
			t.Fatalf("expected 1 point, got %d", len(series))
		}
		if series[0].Income != 3000 || series[0].Expenses != 1500 {
			t.Errorf("expected 3000/1500, got %v/%v", series[0].Income, series[0].Expenses)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if got := MonthlySeries(nil); len(got) != 0 {
			t.Errorf("expected empty series, got %d points", len(got))
		}
	})
}

func TestRunningBalance(t *testing.T) {
	transactions := []models.Transaction{
		expense("c1", 200, ms(2025, time.June, 3)),
		income("c1", 1000, ms(2025, time.June, 1)),
		expense("c1", 300, ms(2025, time.June, 5)),
	}

	points := RunningBalance(transactions)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	want := []float64{1000, 800, 500}
	for i, w := range want {
		if points[i].Balance != w {
			t.Errorf("point %d: expected balance %v, got %v", i, w, points[i].Balance)
		}
	}
	if points[0].Date > points[1].Date || points[1].Date > points[2].Date {
		t.Error("expected points sorted by date ascending")
	}
}

func TestCategoryTrends(t *testing.T) {
	categories := []models.Category{
		models.NewCategory(models.Category{Base: models.Base{ID: "c1"}, Name: "Food"}),
		models.NewCategory(models.Category{Base: models.Base{ID: "c2"}, Name: "Rent"}),
	}
	transactions := []models.Transaction{
		expense("c1", 100, ms(2025, time.April, 5)),
		expense("c2", 900, ms(2025, time.April, 6)),
		expense("c1", 150, ms(2025, time.May, 5)),
	}

	trend := CategoryTrends(transactions, categories)
	if len(trend.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(trend.Rows))
	}
	if trend.Rows[0].Month != time.April || trend.Rows[1].Month != time.May {
		t.Errorf("expected chronological rows, got %v then %v", trend.Rows[0].Month, trend.Rows[1].Month)
	}

	// May has no rent spend; its column must be absent, not zero.
	if _, ok := trend.Rows[1].Amounts["c2"]; ok {
		t.Error("expected category with no spend that month to be absent from the row")
	}
	if trend.Rows[1].Amounts["c1"] != 150 {
		t.Errorf("expected 150, got %v", trend.Rows[1].Amounts["c1"])
	}

	if len(trend.Categories) != 2 {
		t.Fatalf("expected 2 category columns, got %d", len(trend.Categories))
	}
	if trend.Categories[0].Name != "Food" || trend.Categories[1].Name != "Rent" {
		t.Errorf("expected columns sorted by name, got %s then %s", trend.Categories[0].Name, trend.Categories[1].Name)
	}
}
