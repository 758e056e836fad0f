// Package schedule abstracts delayed callbacks so that fade and theme timers
// can be driven by the wall clock in production and stepped explicitly in
// tests.
//
// Real wraps time.AfterFunc and can stop all of its timers at once, which the
// web host uses when a visitor session is evicted. Manual never fires on its
// own; Advance moves its clock and runs due callbacks in order.
package schedule
