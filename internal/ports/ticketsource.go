package ports

import "context"

// TicketSource hands back the raw ticket documents of the store. The core
// never queries it directly; the handler layer fetches (through the
// snapshot cache) and passes the data in.
type TicketSource interface {
	FetchAll(ctx context.Context) ([]map[string]any, error)
}
