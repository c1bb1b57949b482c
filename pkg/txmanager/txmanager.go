package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/roltrader/autoperks/pkg/dbmetrics"
)

// maxRetries максимальное количество повторов при serialization failure
const maxRetries = 3

// ErrTransaction возвращается при ошибках управления транзакцией
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner интерфейс источника транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри сериализуемых транзакций
// Транзакция передается вниз по стеку через контекст (dbmetrics.WithTx),
// репозитории подхватывают её через dbmetrics.GetExecutor
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций поверх *dbmetrics.DB
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE
// При serialization failure (SQLSTATE 40001) транзакция повторяется до maxRetries раз
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !IsSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTransaction, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if IsSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}

// IsSerializationFailure проверяет, что ошибка - конфликт сериализации Postgres
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001"
	}
	return false
}
