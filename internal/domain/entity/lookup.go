package entity

// LookupOption is one id/label pair of a reference enumeration. Options are
// immutable within a session and referenced by id from customer fields.
type LookupOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
