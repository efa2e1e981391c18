// Package prefs persists the tool's single remembered preference, the last
// valid max loss, so the next session can offer it back as a default.
package prefs

// maxLossKey is the fixed key the remembered max loss lives under.
const maxLossKey = "max_loss"

// Store reads and writes the remembered max loss.
type Store interface {
	// LastMaxLoss returns the saved value; ok is false when nothing is saved.
	LastMaxLoss() (value float64, ok bool, err error)

	// SaveMaxLoss replaces the saved value.
	SaveMaxLoss(value float64) error

	// Clear removes the saved value.
	Clear() error

	Close() error
}
