package events

import (
	"context"
	"errors"
	"strings"
)

// Router sends order events to one publisher and everything else to another.
type Router struct {
	Orders  Publisher
	Catalog Publisher
}

func (r Router) Publish(ctx context.Context, e Envelope) error {
	if strings.HasPrefix(e.EventType, "order.") {
		return r.Orders.Publish(ctx, e)
	}
	return r.Catalog.Publish(ctx, e)
}

func (r Router) Close() error {
	return errors.Join(r.Orders.Close(), r.Catalog.Close())
}
