package services

import (
	"fmt"
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// dueSoonWindow is how far ahead the debt sweep looks for due dates.
const dueSoonWindow = 7 * 24 * time.Hour

// notificationService manages notifications and the detection sweeps that
// generate them.
type notificationService struct {
	store *store.Store
}

// NewNotificationService creates a new NotificationServicer.
func NewNotificationService(s *store.Store) NotificationServicer {
	return &notificationService{store: s}
}

// GetNotifications returns notifications in stored order, optionally only
// the unread ones.
func (s *notificationService) GetNotifications(unreadOnly bool) []models.Notification {
	all := s.store.Notifications.GetAll()
	if !unreadOnly {
		return all
	}
	unread := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread
}

// MarkRead marks one notification as read.
func (s *notificationService) MarkRead(id string) (*models.Notification, error) {
	updated, found, err := s.store.Notifications.Update(id, func(n *models.Notification) {
		n.Read = true
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrNotificationNotFound
	}
	return &updated, nil
}

// MarkAllRead marks every notification as read in one write.
func (s *notificationService) MarkAllRead() error {
	all := s.store.Notifications.GetAll()
	now := time.Now().UnixMilli()
	for i := range all {
		if !all[i].Read {
			all[i].Read = true
			all[i].UpdatedAt = now
		}
	}
	return s.store.Notifications.Save(all)
}

// DeleteNotification removes a notification.
func (s *notificationService) DeleteNotification(id string) error {
	if _, ok := s.store.Notifications.GetByID(id); !ok {
		return apperrors.ErrNotificationNotFound
	}
	return s.store.Notifications.Delete(id)
}

// RunChecks runs every detection sweep and persists whatever new
// notifications they produce. A record that already has an unread
// notification of the same type is not flagged again.
func (s *notificationService) RunChecks() ([]models.Notification, error) {
	now := time.Now()
	existing := s.store.Notifications.GetAll()

	var created []models.Notification
	created = append(created, s.checkSpikes(now, existing)...)
	created = append(created, s.checkBudgets(existing)...)
	created = append(created, s.checkDebtsDue(now, existing)...)

	for _, n := range created {
		if err := s.store.Notifications.Add(n); err != nil {
			return nil, err
		}
	}
	return created, nil
}

// checkSpikes flags categories whose recent spend exceeds the historical
// daily average projected over the configured period by more than the
// configured threshold. Categories with no history before the window cannot
// spike.
func (s *notificationService) checkSpikes(now time.Time, existing []models.Notification) []models.Notification {
	cfg := s.store.Settings.Get().SpikeNotifications
	if !cfg.Enabled || cfg.Period <= 0 {
		return nil
	}

	muted := make(map[string]bool, len(cfg.MutedCategories))
	for _, id := range cfg.MutedCategories {
		muted[id] = true
	}

	cutoff := now.AddDate(0, 0, -cfg.Period).UnixMilli()
	recent := make(map[string]float64)
	historical := make(map[string]float64)
	var earliest int64
	for _, t := range s.store.Transactions.GetAll() {
		if t.Type != models.TransactionTypeExpense || t.CategoryID == "" || muted[t.CategoryID] {
			continue
		}
		if t.Date >= cutoff {
			recent[t.CategoryID] += t.Amount
			continue
		}
		historical[t.CategoryID] += t.Amount
		if earliest == 0 || t.Date < earliest {
			earliest = t.Date
		}
	}
	if earliest == 0 {
		return nil
	}
	historyDays := float64(cutoff-earliest) / float64(24*time.Hour/time.Millisecond)
	if historyDays < 1 {
		historyDays = 1
	}

	categories := s.store.Categories.GetAll()
	var out []models.Notification
	for categoryID, spent := range recent {
		base := historical[categoryID]
		if base <= 0 {
			continue
		}
		expected := base / historyDays * float64(cfg.Period)
		if spent <= expected*(1+cfg.Threshold/100) {
			continue
		}
		if hasUnread(existing, models.NotificationTypeSpike, categoryID) {
			continue
		}
		name := categoryName(categories, categoryID)
		out = append(out, models.NewNotification(models.Notification{
			Type: models.NotificationTypeSpike,
			Message: fmt.Sprintf("Spending on %s is %.0f%% above your usual pace for the last %d days",
				name, (spent/expected-1)*100, cfg.Period),
			RelatedID: categoryID,
			Date:      now.UnixMilli(),
		}))
	}
	return out
}

// checkBudgets flags budgets whose expense total has passed the budgeted
// amount.
func (s *notificationService) checkBudgets(existing []models.Notification) []models.Notification {
	transactions := s.store.Transactions.GetAll()
	categories := s.store.Categories.GetAll()

	var out []models.Notification
	for _, budget := range s.store.Budgets.GetAll() {
		if budget.Amount <= 0 {
			continue
		}
		var spent float64
		for _, t := range transactions {
			if t.Type != models.TransactionTypeExpense || t.CategoryID != budget.CategoryID {
				continue
			}
			if budget.SubcategoryID != "" && t.SubcategoryID != budget.SubcategoryID {
				continue
			}
			spent += t.Amount
		}
		if spent <= budget.Amount {
			continue
		}
		if hasUnread(existing, models.NotificationTypeBudget, budget.ID) {
			continue
		}
		name := categoryName(categories, budget.CategoryID)
		out = append(out, models.NewNotification(models.Notification{
			Type:      models.NotificationTypeBudget,
			Message:   fmt.Sprintf("Budget for %s exceeded: spent %.2f of %.2f", name, spent, budget.Amount),
			RelatedID: budget.ID,
		}))
	}
	return out
}

// checkDebtsDue flags unpaid debts due within the next week, overdue ones
// included.
func (s *notificationService) checkDebtsDue(now time.Time, existing []models.Notification) []models.Notification {
	horizon := now.Add(dueSoonWindow).UnixMilli()

	var out []models.Notification
	for _, debt := range s.store.Debts.GetAll() {
		if debt.Status == models.DebtStatusPaid || debt.DueDate > horizon {
			continue
		}
		if hasUnread(existing, models.NotificationTypeDebt, debt.ID) {
			continue
		}
		verb := "to"
		if debt.Type == models.DebtTypeLent {
			verb = "from"
		}
		due := time.UnixMilli(debt.DueDate).UTC().Format("Jan 2, 2006")
		out = append(out, models.NewNotification(models.Notification{
			Type:      models.NotificationTypeDebt,
			Message:   fmt.Sprintf("Debt of %.2f %s %s is due by %s", debt.Amount, verb, debt.PersonName, due),
			RelatedID: debt.ID,
		}))
	}
	return out
}

func hasUnread(notifications []models.Notification, kind models.NotificationType, relatedID string) bool {
	for _, n := range notifications {
		if !n.Read && n.Type == kind && n.RelatedID == relatedID {
			return true
		}
	}
	return false
}

func categoryName(categories []models.Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown"
}
