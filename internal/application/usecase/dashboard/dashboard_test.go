package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// fakeDashboardRepo serves canned aggregates.
type fakeDashboardRepo struct {
	totals  TransactionTotals
	balance decimal.Decimal
	recent  []*entity.Transaction
	spent   map[uuid.UUID]decimal.Decimal
}

func (f *fakeDashboardRepo) GetTransactionTotals(ctx context.Context, userID uuid.UUID) (*TransactionTotals, error) {
	totals := f.totals
	return &totals, nil
}

func (f *fakeDashboardRepo) SumAccountBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return f.balance, nil
}

func (f *fakeDashboardRepo) GetRecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeDashboardRepo) GetSpentByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	return f.spent, nil
}

// fakeAccountRepo serves a fixed account list.
type fakeAccountRepo struct {
	accounts []*entity.Account
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	return f.accounts, nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	return nil
}

func (f *fakeAccountRepo) DeleteWithTransactions(ctx context.Context, id uuid.UUID) error {
	return nil
}

// fakeBudgetRepo serves a fixed budget list for any period.
type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error {
	f.budgets = append(f.budgets, budget)
	return nil
}

func (f *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}

func (f *fakeBudgetRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return f.budgets, nil
}

func (f *fakeBudgetRepo) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Budget, error) {
	matched := make([]*entity.Budget, 0, len(f.budgets))
	for _, budget := range f.budgets {
		if budget.Month == month && budget.Year == year {
			matched = append(matched, budget)
		}
	}
	return matched, nil
}

func (f *fakeBudgetRepo) ExistsForPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int, excludeID *uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error {
	return nil
}

func (f *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// fakeCategoryRepo serves a fixed category list.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	f.categories = append(f.categories, categories...)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, category := range f.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) FindByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return nil
}

func (f *fakeCategoryRepo) DeleteAndDetach(ctx context.Context, id uuid.UUID) error {
	return nil
}

var (
	_ Repository                 = (*fakeDashboardRepo)(nil)
	_ adapter.AccountRepository  = (*fakeAccountRepo)(nil)
	_ adapter.BudgetRepository   = (*fakeBudgetRepo)(nil)
	_ adapter.CategoryRepository = (*fakeCategoryRepo)(nil)
)
