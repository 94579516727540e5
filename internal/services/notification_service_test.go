package services

import (
	"testing"
	"time"

	"pocketledger/internal/models"
	"pocketledger/internal/testutil"
)

func TestGetNotifications(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewNotificationService(s)
	read := testutil.CreateTestNotification(t, s, models.NotificationTypeDebt, "d1")
	testutil.CreateTestNotification(t, s, models.NotificationTypeBudget, "b1")

	_, err := svc.MarkRead(read.ID)
	testutil.AssertNoError(t, err)

	if got := svc.GetNotifications(false); len(got) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(got))
	}
	unread := svc.GetNotifications(true)
	if len(unread) != 1 || unread[0].Type != models.NotificationTypeBudget {
		t.Errorf("expected only the unread budget notification, got %+v", unread)
	}
}

func TestMarkAllRead(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewNotificationService(s)
	testutil.CreateTestNotification(t, s, models.NotificationTypeDebt, "d1")
	testutil.CreateTestNotification(t, s, models.NotificationTypeBudget, "b1")

	testutil.AssertNoError(t, svc.MarkAllRead())

	if got := svc.GetNotifications(true); len(got) != 0 {
		t.Errorf("expected no unread notifications, got %d", len(got))
	}
}

func TestRunChecksBudgetOverrun(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewNotificationService(s)
	category := testutil.CreateTestCategory(t, s)
	budget := testutil.CreateTestBudget(t, s, category.ID, 100)
	testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, category.ID, 150)

	created, err := svc.RunChecks()
	testutil.AssertNoError(t, err)

	var found bool
	for _, n := range created {
		if n.Type == models.NotificationTypeBudget && n.RelatedID == budget.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a budget overrun notification, got %+v", created)
	}

	// A second sweep must not duplicate the unread notification.
	again, err := svc.RunChecks()
	testutil.AssertNoError(t, err)
	for _, n := range again {
		if n.Type == models.NotificationTypeBudget && n.RelatedID == budget.ID {
			t.Error("expected no duplicate while the first notification is unread")
		}
	}
}

func TestRunChecksDebtDue(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewNotificationService(s)

	soon := time.Now().AddDate(0, 0, 2).UnixMilli()
	far := time.Now().AddDate(0, 2, 0).UnixMilli()
	dueSoon := models.NewDebt(models.Debt{Amount: 100, PersonName: "Sam", DueDate: soon})
	notDue := models.NewDebt(models.Debt{Amount: 100, PersonName: "Kim", DueDate: far})
	paid := models.NewDebt(models.Debt{Amount: 100, PersonName: "Lee", DueDate: soon, Status: models.DebtStatusPaid})
	for _, d := range []models.Debt{dueSoon, notDue, paid} {
		testutil.AssertNoError(t, s.Debts.Add(d))
	}

	created, err := svc.RunChecks()
	testutil.AssertNoError(t, err)

	if len(created) != 1 {
		t.Fatalf("expected 1 notification, got %d: %+v", len(created), created)
	}
	if created[0].Type != models.NotificationTypeDebt || created[0].RelatedID != dueSoon.ID {
		t.Errorf("expected a due-soon notification for %s, got %+v", dueSoon.ID, created[0])
	}
}

func TestRunChecksSpike(t *testing.T) {
	t.Run("detects_spike", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewNotificationService(s)
		category := testutil.CreateTestCategory(t, s)

		// 90 days of modest history before the 30-day window, then a burst
		// well past the 50% default threshold.
		for days := 35; days <= 95; days += 10 {
			date := time.Now().AddDate(0, 0, -days).UnixMilli()
			testutil.CreateTestTransactionAt(t, s, models.TransactionTypeExpense, category.ID, 10, date)
		}
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, category.ID, 500)

		created, err := svc.RunChecks()
		testutil.AssertNoError(t, err)

		var found bool
		for _, n := range created {
			if n.Type == models.NotificationTypeSpike && n.RelatedID == category.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a spike notification, got %+v", created)
		}
	})

	t.Run("muted_category_is_skipped", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewNotificationService(s)
		category := testutil.CreateTestCategory(t, s)
		_, err := s.Settings.Update(func(settings *models.Settings) {
			settings.SpikeNotifications.MutedCategories = []string{category.ID}
		})
		testutil.AssertNoError(t, err)

		for days := 35; days <= 95; days += 10 {
			date := time.Now().AddDate(0, 0, -days).UnixMilli()
			testutil.CreateTestTransactionAt(t, s, models.TransactionTypeExpense, category.ID, 10, date)
		}
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, category.ID, 500)

		created, err := svc.RunChecks()
		testutil.AssertNoError(t, err)
		for _, n := range created {
			if n.Type == models.NotificationTypeSpike {
				t.Errorf("expected no spike for muted category, got %+v", n)
			}
		}
	})

	t.Run("disabled_config_skips_sweep", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		svc := NewNotificationService(s)
		category := testutil.CreateTestCategory(t, s)
		_, err := s.Settings.Update(func(settings *models.Settings) {
			settings.SpikeNotifications.Enabled = false
		})
		testutil.AssertNoError(t, err)

		for days := 35; days <= 95; days += 10 {
			date := time.Now().AddDate(0, 0, -days).UnixMilli()
			testutil.CreateTestTransactionAt(t, s, models.TransactionTypeExpense, category.ID, 10, date)
		}
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, category.ID, 500)

		created, err := svc.RunChecks()
		testutil.AssertNoError(t, err)
		for _, n := range created {
			if n.Type == models.NotificationTypeSpike {
				t.Errorf("expected no spike while disabled, got %+v", n)
			}
		}
	})
}
