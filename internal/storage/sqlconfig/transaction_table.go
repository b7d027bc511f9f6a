package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

// SQLSTATE insufficient_privilege, raised when a row policy rejects the principal.
const pqInsufficientPrivilege = "42501"

var _ transaction.ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable is the remote backend: one row per transaction, one round trip per call.
// When principalID is set every statement is scoped to rows owned by that principal.
type TransactionsTable struct {
	exec        bob.Executor
	principalID string
}

func NewTransactionsTable(db *sql.DB) TransactionsTable {
	return TransactionsTable{exec: bob.NewDB(db)}
}

// ForPrincipal returns a copy of the table scoped to principalID. An empty id is unscoped.
func (t TransactionsTable) ForPrincipal(principalID string) *TransactionsTable {
	t.principalID = principalID
	return &t
}

// LoadAll selects every visible row ordered by creation time, newest first.
func (t *TransactionsTable) LoadAll(ctx context.Context) ([]*transaction.Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columnExprs()...),
		sm.From(transactionsTable),
	}
	if t.principalID != "" {
		queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(t.principalID))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]*transaction.Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// Insert writes one row and returns it with the server-assigned id and timestamp.
func (t *TransactionsTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	owner := sql.NullString{String: t.principalID, Valid: t.principalID != ""}

	query := psql.Insert(
		im.Into(transactionsTable, "description", "value", "category", "date_display", "type", "user_id"),
		im.Values(
			psql.Arg(create.Description),
			psql.Arg(create.Amount),
			psql.Arg(create.Category),
			psql.Arg(create.DisplayDate),
			psql.Arg(create.Type),
			psql.Arg(owner),
		),
		im.Returning(columnExprs()...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, mapError(err)
	}
	return rowToTransaction(row), nil
}

// UpdateByID overwrites the set fields. Zero affected rows is reported as ErrNotFound
// rather than inferred success.
func (t *TransactionsTable) UpdateByID(ctx context.Context, id string, update *transaction.TransactionUpdate) error {
	rowID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return transaction.ErrNotFound
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(transactionsTable)}
	if v, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("value").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(v))
	}
	if len(queryMods) == 1 {
		return nil
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(rowID))))
	if t.principalID != "" {
		queryMods = append(queryMods, um.Where(psql.Quote("user_id").EQ(psql.Arg(t.principalID))))
	}

	result, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	return checkAffected(result, err)
}

// DeleteByID removes one row. Zero affected rows is reported as ErrNotFound.
func (t *TransactionsTable) DeleteByID(ctx context.Context, id string) error {
	rowID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return transaction.ErrNotFound
	}

	queryMods := []bob.Mod[*dialect.DeleteQuery]{
		dm.From(transactionsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(rowID))),
	}
	if t.principalID != "" {
		queryMods = append(queryMods, dm.Where(psql.Quote("user_id").EQ(psql.Arg(t.principalID))))
	}

	result, err := bob.Exec(ctx, t.exec, psql.Delete(queryMods...))
	return checkAffected(result, err)
}

func checkAffected(result sql.Result, err error) error {
	if err != nil {
		return mapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return transaction.ErrNotFound
	}
	return nil
}

func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqInsufficientPrivilege {
		return fmt.Errorf("%w: %s", transaction.ErrOwnership, pqErr.Message)
	}
	return err
}

func columnExprs() []any {
	exprs := make([]any, len(transactionColumns))
	for i, col := range transactionColumns {
		exprs[i] = psql.Quote(col)
	}
	return exprs
}
