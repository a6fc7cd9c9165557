package app

import "context"

// Collection slot names in the persistence gateway. These match the keys the
// original deployment used, so serialized data stays portable across backends.
const (
	SlotQuizzes     = "quizzes"
	SlotSubmissions = "submissions"
)

// Gateway abstracts where serialized collections live (in-memory, file,
// Redis, Postgres). Each save overwrites the whole collection under its slot;
// there are no partial writes.
type Gateway interface {
	// Load returns the serialized collection for a slot. ok is false when the
	// slot has never been written.
	Load(ctx context.Context, slot string) (data []byte, ok bool, err error)
	// Save overwrites the slot with the serialized collection.
	Save(ctx context.Context, slot string, data []byte) error
}
