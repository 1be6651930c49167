package ledger

import "fmt"

// FetchError reports that the live source could not deliver rows for one
// property. It aborts the whole reconciliation: the ledger is all-or-nothing.
type FetchError struct {
	Property string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("impossible de récupérer les données de la feuille %s: %v", e.Property, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ArchiveError reports that the archive file is missing, unreadable or not
// valid JSON. Like a fetch failure, it is fatal to the whole operation.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("reading archive %s: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }
