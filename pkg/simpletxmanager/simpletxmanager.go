package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roltrader/autoperks/pkg/dbmetrics"
	"github.com/roltrader/autoperks/pkg/txmanager"
)

// maxRetries максимальное количество повторов при serialization failure
const maxRetries = 3

// TransactionManager менеджер транзакций поверх обычного *sql.DB (без метрик)
// Используется, когда сбор метрик выключен в конфигурации
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает менеджер транзакций поверх *sql.DB
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри SERIALIZABLE транзакции с повторами
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !txmanager.IsSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: retries exhausted: %v", txmanager.ErrTransaction, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", txmanager.ErrTransaction, err)
	}

	txCtx := dbmetrics.WithTx(ctx, &dbmetrics.SqlTxWrapper{Tx: tx})

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if txmanager.IsSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: commit: %v", txmanager.ErrTransaction, err)
	}

	return nil
}
