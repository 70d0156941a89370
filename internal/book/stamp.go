package book

import "sync"

// StampInBackground performs one SetMetadata call on its own goroutine and
// waits for it to finish before returning. A fork-join of exactly one unit
// of work; no channel or shared-state protocol is needed because the result
// is not consumed by the caller beyond the returned error.
func StampInBackground(m *Manager, key string, value any) error {
	var (
		wg  sync.WaitGroup
		err error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = m.SetMetadata(key, value)
	}()
	wg.Wait()
	return err
}
