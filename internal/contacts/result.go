package contacts

import "fmt"

// Outcome classifies what an operation did.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeExists
	OutcomeDeleted
	OutcomeNotFound
	OutcomeListed
	OutcomeExported
	OutcomeStoreError
	OutcomeFileError
)

var outcomeNames = map[Outcome]string{
	OutcomeAdded:      "added",
	OutcomeExists:     "exists",
	OutcomeDeleted:    "deleted",
	OutcomeNotFound:   "not_found",
	OutcomeListed:     "listed",
	OutcomeExported:   "exported",
	OutcomeStoreError: "store_error",
	OutcomeFileError:  "file_error",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is returned by every Book operation instead of printing.
type Result struct {
	Outcome Outcome
	Contact Contact
	Count   int    // rows deleted, listed or exported
	Path    string // export target
	Err     error  // set for OutcomeStoreError and OutcomeFileError
}

// Failed reports whether the operation hit a store or file error.
func (r Result) Failed() bool {
	return r.Outcome == OutcomeStoreError || r.Outcome == OutcomeFileError
}

// Message renders the human-readable line for the console.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeAdded:
		return "Contact added successfully: " + r.Contact.String()
	case OutcomeExists:
		return "Contact already exists: " + r.Contact.String()
	case OutcomeDeleted:
		return "Contact deleted successfully: " + r.Contact.String()
	case OutcomeNotFound:
		return "Contact doesn't exist: " + r.Contact.String()
	case OutcomeListed:
		return fmt.Sprintf("Listed %d contact(s)", r.Count)
	case OutcomeExported:
		return fmt.Sprintf("Exported %d contact(s) to %s", r.Count, r.Path)
	case OutcomeStoreError, OutcomeFileError:
		if r.Err != nil {
			return r.Err.Error()
		}
		return r.Outcome.String()
	default:
		return r.Outcome.String()
	}
}

func storeFailure(c Contact, err error) Result {
	return Result{Outcome: OutcomeStoreError, Contact: c, Err: err}
}
