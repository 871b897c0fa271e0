package visitor

import "sync/atomic"

var _ AnimalVisitor = (*FeedingVisitor)(nil)

// FeedingVisitor feeds every animal it visits.
type FeedingVisitor struct {
	closed  atomic.Bool
	options *options
}

func NewFeedingVisitor(opts ...Option) *FeedingVisitor {
	v := &FeedingVisitor{options: newOptions(opts...)}
	v.options.Logger.Info("FeedingVisitor created")
	return v
}

func (v *FeedingVisitor) VisitLion(lion *Lion) {
	v.options.Logger.Info("Feeding to Lion: " + lion.Name())
}

func (v *FeedingVisitor) VisitTiger(tiger *Tiger) {
	v.options.Logger.Info("Feeding to Tiger: " + tiger.Name())
}

func (v *FeedingVisitor) Close() error {
	if !v.closed.CompareAndSwap(false, true) {
		return ErrVisitorClosed
	}
	v.options.Logger.Info("FeedingVisitor destroyed")
	return nil
}
