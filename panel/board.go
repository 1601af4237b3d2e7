package panel

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"proprospect-backend/models"
)

// Board owns the ordered contact collection of one property panel together
// with its session state: the search filter, per-contact edit drafts, and the
// expand flags. Each contact is either Viewing or Editing; expand/collapse is
// an independent axis except that entering an edit always forces expansion.
// Reordering is a view-mode gesture only.
//
// The panel models a single logical session, but fiber serves requests
// concurrently, so every exported method serializes on the board mutex.
type Board struct {
	mu         sync.Mutex
	propertyID string
	contacts   []models.Contact
	search     string
	expandAll  bool
	drafts     map[string]*Draft
	store      Store
	now        func() time.Time
}

func NewBoard(propertyID string, contacts []models.Contact, store Store) *Board {
	b := &Board{
		propertyID: propertyID,
		contacts:   make([]models.Contact, len(contacts)),
		drafts:     make(map[string]*Draft),
		store:      store,
		now:        time.Now,
	}
	for i, c := range contacts {
		b.contacts[i] = cloneContact(c)
	}
	return b
}

// SetClock overrides the board's time source. Tests only.
func (b *Board) SetClock(now func() time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
}

func (b *Board) PropertyID() string { return b.propertyID }

// SetSearch sets the case-insensitive first/last name filter that defines
// the visible contact view.
func (b *Board) SetSearch(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.search = q
}

func (b *Board) Search() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.search
}

// Contacts returns a copy of the visible (filtered) contact view in display
// order.
func (b *Board) Contacts() []models.Contact {
	b.mu.Lock()
	defer b.mu.Unlock()
	view := b.filtered()
	out := make([]models.Contact, len(view))
	for i, idx := range view {
		out[i] = cloneContact(b.contacts[idx])
	}
	return out
}

// Contact returns the committed state of one contact.
func (b *Board) Contact(id string) (models.Contact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := b.indexOf(id)
	if idx < 0 {
		return models.Contact{}, ErrContactNotFound
	}
	return cloneContact(b.contacts[idx]), nil
}

// EditingIDs lists contacts with an active edit session.
func (b *Board) EditingIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(b.drafts))
	for id := range b.drafts {
		ids = append(ids, id)
	}
	return ids
}

// AddContact prepends a blank, expanded contact to the head of the
// collection and persists the new ordering.
func (b *Board) AddContact() (models.Contact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	contact := models.Contact{
		Id:            uuid.NewString(),
		PropertyID:    b.propertyID,
		FirstName:     "New",
		LastName:      "Contact",
		Phones:        []models.PhoneData{},
		Emails:        []models.EmailData{},
		Relationships: []models.ContactRelationship{},
		IsExpanded:    true,
	}
	if err := b.store.SaveContact(&contact); err != nil {
		return models.Contact{}, err
	}

	b.contacts = append([]models.Contact{contact}, b.contacts...)
	b.renumber()
	if err := b.store.SaveContacts(b.contacts); err != nil {
		return models.Contact{}, err
	}
	return cloneContact(contact), nil
}

// DeleteContact removes a contact and any edit session it had. The
// confirmed flag is the mandatory human gate for this destructive action.
func (b *Board) DeleteContact(id string, confirmed bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !confirmed {
		return ErrConfirmationRequired
	}
	idx := b.indexOf(id)
	if idx < 0 {
		return ErrContactNotFound
	}
	b.contacts = append(b.contacts[:idx], b.contacts[idx+1:]...)
	delete(b.drafts, id)
	return b.store.DeleteContactByID(id)
}

// ToggleExpand flips one contact's expand flag. Blocked while the contact is
// being edited: editing always implies expanded.
func (b *Board) ToggleExpand(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, editing := b.drafts[id]; editing {
		return ErrEditInProgress
	}
	idx := b.indexOf(id)
	if idx < 0 {
		return ErrContactNotFound
	}
	b.contacts[idx].IsExpanded = !b.contacts[idx].IsExpanded
	return nil
}

// ToggleExpandAll flips the global expand toggle and applies the new value
// to every contact in one pass. No partial-state memory: each invocation
// just inverts the previous global value.
func (b *Board) ToggleExpandAll() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.expandAll = !b.expandAll
	for i := range b.contacts {
		b.contacts[i].IsExpanded = b.expandAll
	}
	return b.expandAll
}

// BeginEdit snapshots the contact's committed state into a scratch draft and
// forces the card expanded.
func (b *Board) BeginEdit(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, editing := b.drafts[id]; editing {
		return ErrEditInProgress
	}
	idx := b.indexOf(id)
	if idx < 0 {
		return ErrContactNotFound
	}
	b.contacts[idx].IsExpanded = true
	b.drafts[id] = newDraft(b.contacts[idx], b.now)
	return nil
}

// WithDraft runs fn against the contact's scratch buffer under the board
// lock. All draft mutations go through here.
func (b *Board) WithDraft(id string, fn func(d *Draft) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.drafts[id]
	if !ok {
		return ErrNoEditSession
	}
	return fn(d)
}

// CancelEdit discards the scratch buffer (and its email selection),
// reverting to the last committed state.
func (b *Board) CancelEdit(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.drafts[id]; !ok {
		return ErrNoEditSession
	}
	delete(b.drafts, id)
	return nil
}

// CommitEdit runs the cleanup rules on the draft, atomically replaces the
// committed contact, drops the session, and persists the whole entity.
func (b *Board) CommitEdit(id string) (models.Contact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.drafts[id]
	if !ok {
		return models.Contact{}, ErrNoEditSession
	}
	idx := b.indexOf(id)
	if idx < 0 {
		return models.Contact{}, ErrContactNotFound
	}

	clean := d.cleaned()
	clean.Position = b.contacts[idx].Position
	clean.IsExpanded = b.contacts[idx].IsExpanded
	renumberChildren(&clean)

	if err := b.store.SaveContact(&clean); err != nil {
		return models.Contact{}, err
	}
	b.contacts[idx] = clean
	delete(b.drafts, id)
	return cloneContact(clean), nil
}

// Drop applies a drag-and-drop gesture. A payload whose kind differs from
// the target's is ignored, as is a phone/email payload released over a
// different contact than it came from.
func (b *Board) Drop(p DragPayload, t DropTarget) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p.Kind != t.Kind {
		return ErrDragMismatch
	}
	switch p.Kind {
	case DragContact:
		return b.reorderContacts(p.From, t.To)
	case DragPhone:
		if p.ContactID != t.ContactID {
			return ErrDragMismatch
		}
		return b.reorderChild(p.ContactID, p.From, t.To, true)
	case DragEmail:
		if p.ContactID != t.ContactID {
			return ErrDragMismatch
		}
		return b.reorderChild(p.ContactID, p.From, t.To, false)
	default:
		return ErrDragMismatch
	}
}

// reorderContacts moves the element at filtered position from to filtered
// position to. Both indices are resolved to contact identities inside the
// visible view before the backing slice is spliced, so contacts hidden by
// the search filter keep their relative order.
func (b *Board) reorderContacts(from, to int) error {
	view := b.filtered()
	if from < 0 || from >= len(view) || to < 0 || to >= len(view) {
		return ErrBadIndex
	}
	if from == to {
		return nil
	}

	src := b.contacts[view[from]].Id
	if _, editing := b.drafts[src]; editing {
		return ErrEditInProgress
	}

	bi := view[from]
	bj := view[to]
	moved := b.contacts[bi]
	b.contacts = append(b.contacts[:bi], b.contacts[bi+1:]...)
	// bj was measured before the removal; inserting there lands the element
	// after the target when dragging down and before it when dragging up.
	if bj > len(b.contacts) {
		bj = len(b.contacts)
	}
	b.contacts = append(b.contacts[:bj], append([]models.Contact{moved}, b.contacts[bj:]...)...)

	b.renumber()
	return b.store.SaveContacts(b.contacts)
}

func (b *Board) reorderChild(contactID string, from, to int, phones bool) error {
	if _, editing := b.drafts[contactID]; editing {
		return ErrEditInProgress
	}
	idx := b.indexOf(contactID)
	if idx < 0 {
		return ErrContactNotFound
	}
	c := &b.contacts[idx]

	if phones {
		list, err := moveItem(c.Phones, from, to)
		if err != nil {
			return err
		}
		c.Phones = list
	} else {
		list, err := moveItem(c.Emails, from, to)
		if err != nil {
			return err
		}
		c.Emails = list
	}
	renumberChildren(c)
	saved := cloneContact(*c)
	return b.store.SaveContact(&saved)
}

// moveItem splices the element at from out of the list and reinserts it at
// to in the same pass, preserving the relative order of everything else.
func moveItem[T any](list []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return nil, ErrBadIndex
	}
	if from == to {
		return list, nil
	}
	out := make([]T, 0, len(list))
	out = append(out, list...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	if to > len(out) {
		to = len(out)
	}
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out, nil
}

// filtered returns backing-slice indexes of contacts matching the search,
// in display order.
func (b *Board) filtered() []int {
	idxs := make([]int, 0, len(b.contacts))
	q := strings.ToLower(strings.TrimSpace(b.search))
	for i, c := range b.contacts {
		if q == "" ||
			strings.Contains(strings.ToLower(c.FirstName), q) ||
			strings.Contains(strings.ToLower(c.LastName), q) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (b *Board) indexOf(id string) int {
	for i, c := range b.contacts {
		if c.Id == id {
			return i
		}
	}
	return -1
}

func (b *Board) renumber() {
	for i := range b.contacts {
		b.contacts[i].Position = i
	}
}

func renumberChildren(c *models.Contact) {
	for i := range c.Phones {
		c.Phones[i].ContactID = c.Id
		c.Phones[i].Position = i
	}
	for i := range c.Emails {
		c.Emails[i].ContactID = c.Id
		c.Emails[i].Position = i
	}
}
