package services

import (
	"testing"

	"pocketledger/internal/models"
	"pocketledger/internal/testutil"
)

func TestCreateBudgetService(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewBudgetService(s)
		category := testutil.CreateTestCategory(t, s)

		budget, err := svc.CreateBudget(category.ID, "", 500, models.BudgetPeriodMonthly, 0, nil)
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected non-empty budget ID")
		}
		if budget.Amount != 500 {
			t.Errorf("expected amount 500, got %v", budget.Amount)
		}
		if budget.StartDate == 0 {
			t.Error("expected start date to default to now")
		}
	})

	t.Run("missing_category", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewBudgetService(s)

		_, err := svc.CreateBudget("missing", "", 500, models.BudgetPeriodMonthly, 0, nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewBudgetService(s)
		category := testutil.CreateTestCategory(t, s)

		_, err := svc.CreateBudget(category.ID, "", -1, models.BudgetPeriodMonthly, 0, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateBudgetService(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewBudgetService(s)
	category := testutil.CreateTestCategory(t, s)
	budget := testutil.CreateTestBudget(t, s, category.ID, 500)

	amount := 750.0
	period := models.BudgetPeriodWeekly
	updated, err := svc.UpdateBudget(budget.ID, &amount, &period, nil, nil)
	testutil.AssertNoError(t, err)

	if updated.Amount != 750 {
		t.Errorf("expected 750, got %v", updated.Amount)
	}
	if updated.Period != models.BudgetPeriodWeekly {
		t.Errorf("expected weekly, got %s", updated.Period)
	}
}

func TestGetBudgetProgressService(t *testing.T) {
	t.Run("computes_from_transactions", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewBudgetService(s)
		category := testutil.CreateTestCategory(t, s)
		budget := testutil.CreateTestBudget(t, s, category.ID, 1000)
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, category.ID, 700)

		progress, err := svc.GetBudgetProgress(budget.ID)
		testutil.AssertNoError(t, err)

		if progress.Spent != 700 || progress.Percentage != 70 {
			t.Errorf("expected 700 spent at 70%%, got %v at %v%%", progress.Spent, progress.Percentage)
		}
	})

	t.Run("budget_survives_category_deletion", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewBudgetService(s)
		category := testutil.CreateTestCategory(t, s)
		budget := testutil.CreateTestBudget(t, s, category.ID, 1000)

		testutil.AssertNoError(t, NewCategoryService(s).DeleteCategory(category.ID))

		progress, err := svc.GetBudgetProgress(budget.ID)
		testutil.AssertNoError(t, err)
		if progress.Spent != 0 {
			t.Errorf("expected 0 spend against dangling category, got %v", progress.Spent)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewBudgetService(s)

		_, err := svc.GetBudgetProgress("missing")
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestGetAllBudgetProgressService(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewBudgetService(s)
	category := testutil.CreateTestCategory(t, s)
	testutil.CreateTestBudget(t, s, category.ID, 1000)
	testutil.CreateTestBudget(t, s, category.ID, 200)
	testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, category.ID, 400)

	progress := svc.GetAllBudgetProgress()
	if len(progress) != 2 {
		t.Fatalf("expected 2 progress entries, got %d", len(progress))
	}
	if !progress[1].OverBudget {
		t.Error("expected the 200 budget to be over")
	}
	if progress[0].OverBudget {
		t.Error("expected the 1000 budget not to be over")
	}
}
