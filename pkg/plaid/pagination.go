package plaid

import "context"

// DefaultTransactionsPageSize is the number of transactions fetched per page
// when the request carries no count.
const DefaultTransactionsPageSize = 100

// TransactionsSource is the single operation the pager needs. It is satisfied
// by TransactionsClient.
type TransactionsSource interface {
	Get(ctx context.Context, request *GetTransactionsRequest) (*GetTransactionsResponse, error)
}

// TransactionsPager presents the paginated /transactions/get endpoint as a
// lazy sequence of transaction batches, hiding offset bookkeeping. Pages are
// fetched one at a time, strictly in order, only when NextPage is called; the
// offset of each page depends on the previous page's result, so pages must
// never be prefetched in parallel.
//
// A pager is single use: once exhausted or failed it never produces another
// page. Construct a new pager from the same base request to start over at the
// original offset.
//
// The pager is not safe for concurrent use; its cursor belongs to a single
// consumer.
type TransactionsPager struct {
	source TransactionsSource
	req    GetTransactionsRequest

	count   int
	offset  int
	yielded int

	// target is the number of transactions remaining relative to the
	// starting offset, learned from the first response.
	target      int
	targetKnown bool
	done        bool
}

// NewTransactionsPager creates a pager over req. Count and offset default to
// 100 and 0 when req carries no options.
func NewTransactionsPager(source TransactionsSource, req *GetTransactionsRequest) *TransactionsPager {
	pager := &TransactionsPager{
		source: source,
		req:    *req,
		count:  DefaultTransactionsPageSize,
	}

	if req.Options != nil {
		opts := *req.Options
		pager.req.Options = &opts

		if opts.Count > 0 {
			pager.count = opts.Count
		}

		pager.offset = opts.Offset
	}

	return pager
}

// HasMore reports whether another page can be fetched. It is true before the
// first fetch and false once the pager is exhausted or has failed.
func (p *TransactionsPager) HasMore() bool {
	if p.done {
		return false
	}

	return !p.targetKnown || p.yielded < p.target
}

// NextPage fetches the next batch of transactions. After any error the pager
// is terminal: the failed page is not retried and no further pages are
// produced. Calling NextPage on an exhausted pager returns ErrNoMorePages.
func (p *TransactionsPager) NextPage(ctx context.Context) ([]Transaction, error) {
	if !p.HasMore() {
		return nil, ErrNoMorePages
	}

	opts := TransactionOptions{}
	if p.req.Options != nil {
		opts = *p.req.Options
	}

	opts.Count = p.count
	opts.Offset = p.offset
	p.req.Options = &opts

	res, err := p.source.Get(ctx, &p.req)
	if err != nil {
		p.done = true

		return nil, err
	}

	if !p.targetKnown {
		p.target = res.TotalTransactions - p.offset
		p.targetKnown = true
	}

	p.yielded += len(res.Transactions)
	// The remote API measures offsets from the original start of the
	// range, so the cursor advances by the cumulative yielded count, not
	// by the size of the last batch.
	p.offset += p.yielded

	if len(res.Transactions) == 0 {
		// The server stopped producing results before the reported
		// total was reached; treat the sequence as exhausted rather
		// than re-requesting the same empty page forever.
		p.done = true
	}

	return res.Transactions, nil
}

// All drains the pager and returns every remaining transaction.
func (p *TransactionsPager) All(ctx context.Context) ([]Transaction, error) {
	var all []Transaction

	for p.HasMore() {
		batch, err := p.NextPage(ctx)
		if err != nil {
			return all, err
		}

		all = append(all, batch...)
	}

	return all, nil
}

// ForEach calls fn for every remaining transaction, stopping at the first
// error from fn or from a page fetch.
func (p *TransactionsPager) ForEach(ctx context.Context, fn func(Transaction) error) error {
	for p.HasMore() {
		batch, err := p.NextPage(ctx)
		if err != nil {
			return err
		}

		for _, txn := range batch {
			err := fn(txn)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
