package domain

// History is the append-only transaction log of one account. Transactions are
// appended at application time, so insertion order is chronological.
type History struct {
	transactions []Transaction
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(transaction Transaction) {
	h.transactions = append(h.transactions, transaction)
}

func (h *History) InOrder() []Transaction {
	out := make([]Transaction, len(h.transactions))
	copy(out, h.transactions)
	return out
}

func (h *History) Len() int {
	return len(h.transactions)
}
