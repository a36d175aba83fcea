package model

import (
	"fmt"
	"strings"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
)

// TransitionPolicy guards order status changes.
//
// Terminal statuses accept no further transition. When a successor list is
// configured for a status, only the listed statuses may follow it; statuses
// without a list may move to any known status.
type TransitionPolicy struct {
	known      map[OrderStatus]struct{}
	terminal   map[OrderStatus]struct{}
	successors map[OrderStatus]map[OrderStatus]struct{}
}

// DefaultTransitionPolicy knows the five standard statuses and enforces only the terminal rule.
func DefaultTransitionPolicy() *TransitionPolicy {
	return NewTransitionPolicy(nil, nil, nil)
}

// NewTransitionPolicy extends the standard vocabulary with extra statuses,
// extra terminal statuses and an optional successor table.
func NewTransitionPolicy(extra, extraTerminal []OrderStatus, successors map[OrderStatus][]OrderStatus) *TransitionPolicy {
	p := &TransitionPolicy{
		known:      make(map[OrderStatus]struct{}),
		terminal:   make(map[OrderStatus]struct{}),
		successors: make(map[OrderStatus]map[OrderStatus]struct{}),
	}
	for _, s := range []OrderStatus{OrderStatusNew, OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		p.known[s] = struct{}{}
	}
	for _, s := range extra {
		p.known[ParseOrderStatus(string(s))] = struct{}{}
	}
	p.terminal[OrderStatusDelivered] = struct{}{}
	p.terminal[OrderStatusCancelled] = struct{}{}
	for _, s := range extraTerminal {
		s = ParseOrderStatus(string(s))
		p.known[s] = struct{}{}
		p.terminal[s] = struct{}{}
	}
	for from, next := range successors {
		set := make(map[OrderStatus]struct{}, len(next))
		for _, s := range next {
			set[ParseOrderStatus(string(s))] = struct{}{}
		}
		p.successors[ParseOrderStatus(string(from))] = set
	}
	return p
}

// ParseOrderStatus normalizes textual status representation.
func ParseOrderStatus(s string) OrderStatus {
	return OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// Known reports whether status belongs to the configured vocabulary.
func (p *TransitionPolicy) Known(s OrderStatus) bool {
	_, ok := p.known[s]
	return ok
}

// IsTerminal reports whether no transition may leave status.
func (p *TransitionPolicy) IsTerminal(s OrderStatus) bool {
	_, ok := p.terminal[s]
	return ok
}

// Check validates the move from one status to another.
func (p *TransitionPolicy) Check(from, to OrderStatus) error {
	if !p.Known(to) {
		return fmt.Errorf("%w: unknown order status %q", domainErrors.ErrValidation, to)
	}
	if p.IsTerminal(from) {
		return fmt.Errorf("%w: order is already %s", domainErrors.ErrInvalidTransition, from)
	}
	if next, ok := p.successors[from]; ok {
		if _, allowed := next[to]; !allowed {
			return fmt.Errorf("%w: %s cannot follow %s", domainErrors.ErrInvalidTransition, to, from)
		}
	}
	return nil
}
