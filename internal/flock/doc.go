// Package flock takes exclusive, non-blocking file locks on Unix and Windows.
//
// verdict locks <repo>/.verdict/run.lock while it runs tests or linters so
// that two runs in the same checkout do not overwrite each other's result
// logs.
//
//	lock, err := flock.TryLock(path)
//	if err != nil {
//	    // another run holds the lock
//	}
//	defer lock.Release()
package flock
