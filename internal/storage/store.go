package storage

// Store persists named collections as whole documents. Load fills out with
// the collection's current contents and leaves it untouched when the
// collection has never been saved. Save replaces the stored document
// entirely.
type Store interface {
	Load(name string, out interface{}) error
	Save(name string, v interface{}) error
}
