package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/smartscale/internal/logging"
)

// ErrProductNotFound is returned when no product has the requested name.
var ErrProductNotFound = errors.New("product not found")

// Store provides persistence APIs for products and transactions.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a new store instance.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger.Named("store")}
}

// AutoMigrate ensures the schema is available.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.run(ctx, "store.auto_migrate", func(db *gorm.DB) error {
		return db.AutoMigrate(&Product{}, &Transaction{})
	})
}

// SeedDefaults inserts the default catalogue into an empty products table and
// reports how many rows were added.
func (s *Store) SeedDefaults(ctx context.Context) (int, error) {
	var added int
	err := s.run(ctx, "store.seed_defaults", func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&Product{}).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				s.logger.Info("product catalogue already seeded", zap.Int64("products", count))
				return nil
			}

			products := make([]Product, len(defaultCatalogue))
			copy(products, defaultCatalogue)
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&products, 50)
			if res.Error != nil {
				return res.Error
			}
			added = int(res.RowsAffected)
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	if added > 0 {
		s.logger.Info("seeded product catalogue", zap.Int("products", added))
	}
	return added, nil
}

// FindProductByName returns ErrProductNotFound for unknown names.
func (s *Store) FindProductByName(ctx context.Context, name string) (*Product, error) {
	var product Product
	err := s.run(ctx, "store.find_product", func(db *gorm.DB) error {
		return db.Where("name = ?", name).First(&product).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns every product ordered by name.
func (s *Store) ListProducts(ctx context.Context) ([]Product, error) {
	products := []Product{}
	err := s.run(ctx, "store.list_products", func(db *gorm.DB) error {
		return db.Order("name ASC").Find(&products).Error
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// AppendTransaction persists tx and returns its id.
func (s *Store) AppendTransaction(ctx context.Context, tx *Transaction) (uint, error) {
	err := s.run(ctx, "store.append_transaction", func(db *gorm.DB) error {
		return db.Create(tx).Error
	})
	if err != nil {
		return 0, err
	}
	return tx.ID, nil
}

// RecentTransactions returns up to limit transactions, most recent first.
func (s *Store) RecentTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	transactions := []Transaction{}
	err := s.run(ctx, "store.recent_transactions", func(db *gorm.DB) error {
		return db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&transactions).Error
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// AggregateSales computes totals over every recorded transaction.
func (s *Store) AggregateSales(ctx context.Context) (*SalesAggregation, error) {
	var agg SalesAggregation
	err := s.run(ctx, "store.aggregate_sales", func(db *gorm.DB) error {
		return db.Model(&Transaction{}).Select(
			"COUNT(*) AS total_count, " +
				"COALESCE(SUM(total_price), 0) AS total_revenue, " +
				"COALESCE(AVG(weight_g), 0) AS average_weight_g, " +
				"COALESCE(AVG(confidence), 0) AS average_confidence",
		).Scan(&agg).Error
	})
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return logging.NewOperationError("store.ping", logging.RequestIDFromContext(ctx), err)
	}
	return sqlDB.PingContext(ctx)
}

// run executes fn against a context-bound session and annotates failures.
// gorm.ErrRecordNotFound passes through unlogged; it is an expected outcome.
func (s *Store) run(ctx context.Context, operation string, fn func(db *gorm.DB) error) error {
	err := fn(s.db.WithContext(ctx))
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	requestID := logging.RequestIDFromContext(ctx)
	wrapped := logging.NewOperationError(operation, requestID, err)
	logging.WithOperation(s.logger, operation, requestID).Error("store operation failed", zap.Error(err))
	return wrapped
}
