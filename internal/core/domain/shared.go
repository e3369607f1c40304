package domain

// ID identifies a product or a transaction. Ids are allocated from
// monotonically increasing counters; products and transactions draw from
// independent sequences.
type ID int64

type Event interface {
	GetName() string
	GetEntityName() string
}
