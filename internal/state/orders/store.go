package orders

import (
	"context"
	"sync"

	"courier-app/internal/domain"
	"courier-app/internal/logx"
)

// Store owns the courier's order view: the pending pool, the assigned
// list, the selected order and the delivery statistics. List fetches
// and lifecycle transitions keep the two lists consistent without
// refetching after every action.
type Store struct {
	mu sync.Mutex

	orders orderService
	stats  statsService
	logger logx.Logger

	pending  []domain.Order
	assigned []domain.Order
	selected *domain.Order
	summary  *domain.Stats

	loading     bool
	pendingErr  string
	assignedErr string
	actionErr   string
}

// NewStore creates an order Store.
func NewStore(orders orderService, stats statsService, logger logx.Logger) *Store {
	if orders == nil || stats == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Store{orders: orders, stats: stats, logger: logger}
}

// FetchPending replaces the pending list with the server's view.
// Failure keeps the previous list and records the error. The slot is
// cleared when the attempt starts, not when it resolves.
func (s *Store) FetchPending(ctx context.Context) bool {
	s.setPendingErr("")
	res, err := s.orders.Pending(ctx)
	if err != nil {
		s.setPendingErr(err.Error())
		return false
	}
	if !res.Success {
		s.setPendingErr(orMessage(res.Message, "Failed to fetch pending orders"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = s.sanitize(res.Data)
	return true
}

// FetchAssigned replaces the assigned list with the server's view.
func (s *Store) FetchAssigned(ctx context.Context) bool {
	s.setAssignedErr("")
	res, err := s.orders.Assigned(ctx)
	if err != nil {
		s.setAssignedErr(err.Error())
		return false
	}
	if !res.Success {
		s.setAssignedErr(orMessage(res.Message, "Failed to fetch assigned orders"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.assigned = s.sanitize(res.Data)
	return true
}

// FetchStats refreshes the delivery statistics. A failed refresh is
// logged and leaves the previous snapshot in place.
func (s *Store) FetchStats(ctx context.Context) bool {
	res, err := s.stats.Stats(ctx)
	if err != nil {
		s.logger.Warn("orders: stats refresh error", logx.Any("err", err))
		return false
	}
	if !res.Success {
		s.logger.Warn("orders: stats refresh failed", logx.String("message", res.Message))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := res.Data
	s.summary = &st
	return true
}

// RefreshAll fetches the pending list, the assigned list and the
// statistics concurrently. Each fetch fails independently: a pending
// failure never blanks the assigned list or vice versa.
func (s *Store) RefreshAll(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.FetchPending(ctx)
	}()
	go func() {
		defer wg.Done()
		s.FetchAssigned(ctx)
	}()
	go func() {
		defer wg.Done()
		s.FetchStats(ctx)
	}()
	wg.Wait()
}

// Accept claims a pending order. On success the order moves from the
// pending list to the assigned list using the server's copy, without
// a refetch.
func (s *Store) Accept(ctx context.Context, orderID string) bool {
	s.setActionErr("")
	res, err := s.orders.Accept(ctx, orderID)
	if err != nil {
		s.setActionErr(err.Error())
		return false
	}
	if !res.Success || res.Data.ID == "" {
		s.setActionErr(orMessage(res.Message, "Failed to accept order"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = removeOrder(s.pending, orderID)
	s.assigned = append(s.assigned, res.Data)
	return true
}

// MarkOutForDelivery transitions an assigned order. The server's copy
// replaces the stored one in place, and the selected order when it is
// the same order.
func (s *Store) MarkOutForDelivery(ctx context.Context, orderID, notes string) bool {
	s.setActionErr("")
	res, err := s.orders.MarkOutForDelivery(ctx, orderID, notes)
	if err != nil {
		s.setActionErr(err.Error())
		return false
	}
	if !res.Success || res.Data.ID == "" {
		s.setActionErr(orMessage(res.Message, "Failed to update order"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.assigned = replaceOrder(s.assigned, res.Data)
	if s.selected != nil && s.selected.ID == res.Data.ID {
		updated := res.Data
		s.selected = &updated
	}
	return true
}

// MarkDelivered completes an assigned order: the order leaves the
// assigned list, a matching selection is cleared, and the statistics
// are refreshed exactly once.
func (s *Store) MarkDelivered(ctx context.Context, orderID, notes, otp string) bool {
	s.setActionErr("")
	res, err := s.orders.MarkDelivered(ctx, orderID, notes, otp)
	if err != nil {
		s.setActionErr(err.Error())
		return false
	}
	if !res.Success {
		s.setActionErr(orMessage(res.Message, "Failed to complete order"))
		return false
	}

	s.mu.Lock()
	s.assigned = removeOrder(s.assigned, orderID)
	if s.selected != nil && s.selected.ID == orderID {
		s.selected = nil
	}
	s.mu.Unlock()

	s.FetchStats(ctx)
	return true
}

// Select fetches a single order's detail and makes it the selected
// order. Works for orders the courier has not claimed yet.
func (s *Store) Select(ctx context.Context, orderID string) bool {
	s.setActionErr("")
	res, err := s.orders.Details(ctx, orderID)
	if err != nil {
		s.setActionErr(err.Error())
		return false
	}
	if !res.Success || res.Data.ID == "" {
		s.setActionErr(orMessage(res.Message, "Failed to fetch order"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := res.Data
	s.selected = &o
	return true
}

// ClearSelection drops the selected order.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Pending returns a copy of the pending list.
func (s *Store) Pending() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.pending)
}

// Assigned returns a copy of the assigned list.
func (s *Store) Assigned() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.assigned)
}

// Selected returns a copy of the selected order, or nil.
func (s *Store) Selected() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	o := *s.selected
	return &o
}

// Stats returns a copy of the latest statistics snapshot, or nil.
func (s *Store) Stats() *domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return nil
	}
	st := *s.summary
	return &st
}

// IsLoading reports whether a bulk refresh is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// PendingError returns the last pending-list fetch error, empty after
// a successful fetch.
func (s *Store) PendingError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingErr
}

// AssignedError returns the last assigned-list fetch error.
func (s *Store) AssignedError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignedErr
}

// ActionError returns the last lifecycle-action error.
func (s *Store) ActionError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actionErr
}

// ClearActionError resets the action error slot.
func (s *Store) ClearActionError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actionErr = ""
}

// sanitize drops list entries without an id. Such entries cannot be
// acted on and would break the replace/remove bookkeeping. Callers
// hold s.mu.
func (s *Store) sanitize(in []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(in))
	for _, o := range in {
		if o.ID == "" {
			s.logger.Warn("orders: dropping list entry without id",
				logx.String("orderNumber", o.OrderNumber))
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) setPendingErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingErr = msg
}

func (s *Store) setAssignedErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignedErr = msg
}

func (s *Store) setActionErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actionErr = msg
}

func removeOrder(list []domain.Order, id string) []domain.Order {
	out := list[:0]
	for _, o := range list {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}

func replaceOrder(list []domain.Order, updated domain.Order) []domain.Order {
	for i, o := range list {
		if o.ID == updated.ID {
			list[i] = updated
			return list
		}
	}
	return list
}

func copyOrders(list []domain.Order) []domain.Order {
	if list == nil {
		return nil
	}
	out := make([]domain.Order, len(list))
	copy(out, list)
	return out
}

func orMessage(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
