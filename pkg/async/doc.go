// Package async provides a small generic Future type.
//
// A Future is obtained from Async, which runs a function on its own goroutine,
// from Promise, which hands the resolve function to the caller, or from
// Resolved for values that are known up front. Callers wait with Await,
// AwaitContext or AwaitWithTimeout, select on Done, or poll with IsComplete.
//
//	fut := async.Async(ctx, code, func(ctx context.Context, c i18n.Code) (content.Payload, error) {
//		return fetcher.Fetch(ctx, c)
//	})
//	payload, err := fut.Await()
//
// A future resolves exactly once. Later resolve calls are ignored.
package async
