package entities

// Entity is a persisted record with a store-assigned identity.
//
// NaturalKey names the unique column that identifies the record when the
// identity is not yet known, e.g. a freshly built Author that may already
// exist in the store under the same name.
type Entity interface {
	GetID() uint
	SetID(id uint)
	NaturalKey() (column string, value string)
}
