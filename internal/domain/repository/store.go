package repository

// Record elemento identificable de una colección custom.
type Record interface {
	RecordID() string
}

// Store define el puerto de persistencia de una colección custom (DIP).
// Cada colección es dueña de su propio archivo JSON; toda mutación
// reescribe la colección completa.
type Store[T Record] interface {
	All() []T
	Get(id string) (T, bool)
	Insert(item T) error
	Replace(item T) (bool, error)
	Remove(id string) (bool, error)
}
