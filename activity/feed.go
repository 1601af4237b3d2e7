package activity

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"proprospect-backend/models"
)

// FilterAll shows every entry regardless of type.
const FilterAll = "All"

// Rejected actions are sentinel errors; the HTTP layer downgrades them to
// no-op responses instead of faults.
var (
	ErrEmptyContent    = errors.New("note content is empty")
	ErrMissingFollowUp = errors.New("follow up requires a date and a note")
	ErrNoteNotFound    = errors.New("note not found")
	ErrUnknownNoteType = errors.New("unknown note type")
)

// NoteStore is the whole-entity persistence boundary for the feed.
type NoteStore interface {
	LoadNotes(propertyID string) ([]models.Note, error)
	SaveNote(note *models.Note) error
	DeleteNoteByID(id string) error
}

// Feed is the append-only activity log of one property: typed entries in
// insertion order (most recent first), free-text editing of existing
// entries, deletion, and a type-based view filter. Insertion order IS the
// display order; timestamps are attribution, not ordering.
type Feed struct {
	mu         sync.Mutex
	propertyID string
	notes      []models.Note
	filter     string
	store      NoteStore
	now        func() time.Time
	nextSeq    int64
}

func NewFeed(propertyID string, notes []models.Note, store NoteStore) *Feed {
	f := &Feed{
		propertyID: propertyID,
		notes:      make([]models.Note, len(notes)),
		filter:     FilterAll,
		store:      store,
		now:        time.Now,
	}
	copy(f.notes, notes)
	for _, n := range notes {
		if n.Seq >= f.nextSeq {
			f.nextSeq = n.Seq + 1
		}
	}
	return f
}

// SetClock overrides the feed's time source. Tests only.
func (f *Feed) SetClock(now func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// AddNote prepends a new entry attributed to the acting user at call time.
// Empty trimmed content rejects the whole action. When the active filter
// would hide the just-added entry, the filter resets to All so the user's
// next look at the feed still shows it.
func (f *Feed) AddNote(user models.User, content string, typ models.NoteType, followUpDate string) (models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if strings.TrimSpace(content) == "" {
		return models.Note{}, ErrEmptyContent
	}
	if typ == "" {
		typ = models.NoteTypeNote
	}

	note := models.Note{
		Id:           uuid.NewString(),
		PropertyID:   f.propertyID,
		Content:      content,
		Type:         typ,
		CreatedAt:    f.now(),
		CreatedBy:    user.DisplayName,
		UserId:       user.Id,
		FollowUpDate: followUpDate,
		Seq:          f.nextSeq,
	}
	if err := f.store.SaveNote(&note); err != nil {
		return models.Note{}, err
	}
	f.nextSeq++
	f.notes = append([]models.Note{note}, f.notes...)

	if f.filter != FilterAll && f.filter != string(typ) {
		f.filter = FilterAll
	}
	return note, nil
}

// ScheduleFollowUp combines a date and optional time into a single
// timezone-naive timestamp and records it as a FollowUp entry. With no time
// the default is 09:00:00 so a date-only value cannot slide into the
// previous calendar day when later parsed as a local instant.
func (f *Feed) ScheduleFollowUp(user models.User, date, timeOfDay, note string) (models.Note, error) {
	if date == "" || strings.TrimSpace(note) == "" {
		return models.Note{}, ErrMissingFollowUp
	}
	followUp := date + "T09:00:00"
	if timeOfDay != "" {
		followUp = date + "T" + timeOfDay + ":00"
	}
	return f.AddNote(user, note, models.NoteTypeFollowUp, followUp)
}

// UpdateNote replaces the content of an existing entry in place. Timestamps
// and attribution never change.
func (f *Feed) UpdateNote(id, content string) (models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.notes {
		if f.notes[i].Id == id {
			f.notes[i].Content = content
			note := f.notes[i]
			if err := f.store.SaveNote(&note); err != nil {
				return models.Note{}, err
			}
			return note, nil
		}
	}
	return models.Note{}, ErrNoteNotFound
}

// DeleteNote removes an entry; deleting an absent id is a no-op.
func (f *Feed) DeleteNote(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.notes {
		if f.notes[i].Id == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return f.store.DeleteNoteByID(id)
		}
	}
	return nil
}

// SetFilter activates a type filter ("All" or one of the note types). The
// filter is a pure view concern; the underlying feed never changes.
func (f *Feed) SetFilter(filter string) error {
	if filter != FilterAll && !validNoteType(filter) {
		return ErrUnknownNoteType
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = filter
	return nil
}

func (f *Feed) ActiveFilter() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

// Visible returns the entries matching the active filter, in original
// relative order.
func (f *Feed) Visible() []models.Note {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Note, 0, len(f.notes))
	for _, n := range f.notes {
		if f.filter == FilterAll || string(n.Type) == f.filter {
			out = append(out, n)
		}
	}
	return out
}

// Counts tallies entries per type for the filter-bar badges.
func (f *Feed) Counts() map[models.NoteType]int {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[models.NoteType]int, len(models.NoteTypes))
	for _, n := range f.notes {
		counts[n.Type]++
	}
	return counts
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notes)
}

func validNoteType(s string) bool {
	for _, t := range models.NoteTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}
