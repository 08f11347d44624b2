package proposal

import (
	"sync"
	"time"

	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// DraftSnapshot copia inmutable de la sesión de edición.
type DraftSnapshot struct {
	EditingID string // vacío si la propuesta aún no se guardó
	Number    string
	CreatedAt time.Time
	Form      entity.FormState

	generation uint64
}

// Draft única sesión de edición activa. Seguro para uso concurrente.
type Draft struct {
	mu           sync.Mutex
	validityDays int
	defaultProd  pricing.Product
	editingID    string
	number       string
	createdAt    time.Time
	form         entity.FormState
	// generation cambia con Reset y Load: identifica la propuesta en edición.
	generation   uint64
}

// NewDraft sesión vacía para el producto por defecto.
func NewDraft(defaultProduct pricing.Product, validityDays int) *Draft {
	return &Draft{
		validityDays: validityDays,
		defaultProd:  defaultProduct,
		form:         entity.NewFormState(defaultProduct, validityDays),
	}
}

// Snapshot devuelve una copia profunda del estado actual.
func (d *Draft) Snapshot() DraftSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Draft) snapshotLocked() DraftSnapshot {
	return DraftSnapshot{
		EditingID: d.editingID,
		Number:    d.number,
		CreatedAt: d.createdAt,
		Form:      d.form.Clone(),

		generation: d.generation,
	}
}

// Apply aplica el comando y devuelve el estado resultante.
func (d *Draft) Apply(cmd Command) DraftSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = Reduce(d.form, cmd)
	return d.snapshotLocked()
}

// Reset descarta la sesión y comienza una propuesta nueva.
func (d *Draft) Reset() DraftSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editingID, d.number, d.createdAt = "", "", time.Time{}
	d.generation++
	d.form = entity.NewFormState(d.defaultProd, d.validityDays)
	return d.snapshotLocked()
}

// Load carga una propuesta guardada; guardar de nuevo reemplaza la misma entrada.
func (d *Draft) Load(p *entity.SavedProposal) DraftSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editingID = p.ID
	d.number = p.Number
	d.createdAt = p.CreatedAt
	d.form = p.Form.Clone()
	d.generation++
	return d.snapshotLocked()
}

// ensureNumber asigna número a la sesión si aún no lo tiene.
func (d *Draft) ensureNumber(gen func() string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.number == "" {
		d.number = gen()
	}
	return d.number
}

// markSaved fija la identidad tras un guardado exitoso. Devuelve false sin
// tocar nada si la sesión pasó a otra propuesta después de snap.
func (d *Draft) markSaved(snap DraftSnapshot, p *entity.SavedProposal) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != snap.generation {
		return false
	}
	d.editingID = p.ID
	d.number = p.Number
	d.createdAt = p.CreatedAt
	return true
}
