// Package broadcast fans values out to in-process subscribers.
//
// Publish never blocks. Each subscriber holds at most one pending value and
// a newer value replaces an unread one, which suits "something changed,
// here is the latest revision" notifications:
//
//	bus := broadcast.NewMemory[uint64]()
//	sub := bus.Subscribe(ctx)
//	defer sub.Close()
//
//	for rev := range sub.Receive() {
//		render(rev)
//	}
package broadcast
