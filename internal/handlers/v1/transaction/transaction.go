package transaction

import (
	"time"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction id assigned by the backend"`
	Description string `json:"description" doc:"What the money was for"`
	Amount      string `json:"amount" doc:"Signed decimal amount, negative for outflows"`
	Category    string `json:"category" doc:"One of Salary, Food, Transport, Health, Leisure, Other"`
	DisplayDate string `json:"displayDate" doc:"Day and month as shown when the transaction was created"`
	Type        string `json:"type" enum:"in,out" doc:"Direction derived from the amount's sign"`
	CreatedAt   string `json:"createdAt,omitempty" doc:"RFC3339 creation time, when the backend records one"`
}

// TransactionBody is the request body for creating or editing a transaction.
type TransactionBody struct {
	Description string `json:"description" required:"true" doc:"What the money was for"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount; '.' or ',' as separator, sign is ignored"`
	Type        string `json:"type,omitempty" enum:"in,out" doc:"Direction, defaults to out"`
	Category    string `json:"category,omitempty" doc:"Category label, defaults to Other"`
}

func (b TransactionBody) toDraft() service.Draft {
	return service.Draft{
		Description: b.Description,
		Amount:      b.Amount,
		Direction:   service.Direction(b.Type),
		Category:    b.Category,
	}
}

func fromService(tx service.Transaction) Transaction {
	out := Transaction{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Category:    string(tx.Category),
		DisplayDate: tx.DisplayDate,
		Type:        string(tx.Direction()),
	}
	if !tx.CreatedAt.IsZero() {
		out.CreatedAt = tx.CreatedAt.Format(time.RFC3339)
	}
	return out
}

func fromServiceList(txs []service.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = fromService(tx)
	}
	return out
}
