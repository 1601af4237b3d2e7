package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proprospect-backend/models"
)

type memStore struct {
	saved     map[string]models.Contact
	bulkSaves int
	deleted   []string
}

func newMemStore() *memStore {
	return &memStore{saved: make(map[string]models.Contact)}
}

func (m *memStore) LoadContacts(propertyID string) ([]models.Contact, error) { return nil, nil }

func (m *memStore) SaveContact(c *models.Contact) error {
	m.saved[c.Id] = cloneContact(*c)
	return nil
}

func (m *memStore) SaveContacts(cs []models.Contact) error {
	m.bulkSaves++
	for _, c := range cs {
		m.saved[c.Id] = cloneContact(c)
	}
	return nil
}

func (m *memStore) DeleteContactByID(id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func testContacts() []models.Contact {
	return []models.Contact{
		{
			Id: "a", FirstName: "Alice", LastName: "Adams", Position: 0,
			Phones: []models.PhoneData{
				{Id: "p1", ContactID: "a", Number: "(555) 111-1111", Type: models.PhoneTypeMobile, Status: models.PhoneStatusUnknown, Position: 0},
				{Id: "p2", ContactID: "a", Number: "(555) 222-2222", Type: models.PhoneTypeLandline, Status: models.PhoneStatusUnknown, Position: 1},
				{Id: "p3", ContactID: "a", Number: "(555) 333-3333", Type: models.PhoneTypeVoip, Status: models.PhoneStatusUnknown, Position: 2},
			},
			Emails: []models.EmailData{
				{Id: "e1", ContactID: "a", Email: "alice@example.com", Position: 0},
				{Id: "e2", ContactID: "a", Email: "a.adams@work.com", Position: 1},
			},
		},
		{Id: "b", FirstName: "Bob", LastName: "Brown", Position: 1},
		{Id: "c", FirstName: "Carol", LastName: "Adams", Position: 2},
		{Id: "d", FirstName: "Dan", LastName: "Brown", Position: 3},
	}
}

func contactIDs(contacts []models.Contact) []string {
	ids := make([]string, len(contacts))
	for i, c := range contacts {
		ids[i] = c.Id
	}
	return ids
}

func phoneIDs(phones []models.PhoneData) []string {
	ids := make([]string, len(phones))
	for i, p := range phones {
		ids[i] = p.Id
	}
	return ids
}

func TestReorderContactsMovesOnlyPosition(t *testing.T) {
	store := newMemStore()
	b := NewBoard("prop1", testContacts(), store)

	err := b.Drop(
		DragPayload{Kind: DragContact, From: 0},
		DropTarget{Kind: DragContact, To: 2},
	)
	require.NoError(t, err)

	got := contactIDs(b.Contacts())
	assert.Equal(t, []string{"b", "c", "a", "d"}, got)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, got)
	assert.Equal(t, 1, store.bulkSaves)

	// Positions follow display order after the splice.
	for i, c := range b.Contacts() {
		assert.Equal(t, i, c.Position)
	}
}

func TestReorderContactsUpward(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())

	require.NoError(t, b.Drop(
		DragPayload{Kind: DragContact, From: 3},
		DropTarget{Kind: DragContact, To: 1},
	))
	assert.Equal(t, []string{"a", "d", "b", "c"}, contactIDs(b.Contacts()))
}

func TestReorderWithActiveFilterPreservesHiddenOrder(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())
	b.SetSearch("adams")

	visible := contactIDs(b.Contacts())
	require.Equal(t, []string{"a", "c"}, visible)

	// Move Alice onto Carol inside the filtered view. The indices are
	// filtered-view positions, resolved back by identity.
	require.NoError(t, b.Drop(
		DragPayload{Kind: DragContact, From: 0},
		DropTarget{Kind: DragContact, To: 1},
	))

	b.SetSearch("")
	got := contactIDs(b.Contacts())
	assert.Equal(t, []string{"b", "c", "a", "d"}, got, "hidden contacts must keep relative order")
}

func TestReorderIndexOutsideFilteredViewRejected(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())
	b.SetSearch("adams") // two visible contacts

	err := b.Drop(
		DragPayload{Kind: DragContact, From: 2},
		DropTarget{Kind: DragContact, To: 0},
	)
	assert.ErrorIs(t, err, ErrBadIndex)
	b.SetSearch("")
	assert.Equal(t, []string{"a", "b", "c", "d"}, contactIDs(b.Contacts()))
}

func TestDropMismatchedKindIsNoOp(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())

	// A phone row released over a contact-card drop target.
	err := b.Drop(
		DragPayload{Kind: DragPhone, ContactID: "a", From: 0},
		DropTarget{Kind: DragContact, To: 2},
	)
	assert.ErrorIs(t, err, ErrDragMismatch)

	assert.Equal(t, []string{"a", "b", "c", "d"}, contactIDs(b.Contacts()))
	a, err := b.Contact("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3"}, phoneIDs(a.Phones))
}

func TestPhoneReorderWithinContact(t *testing.T) {
	store := newMemStore()
	b := NewBoard("prop1", testContacts(), store)

	require.NoError(t, b.Drop(
		DragPayload{Kind: DragPhone, ContactID: "a", From: 0},
		DropTarget{Kind: DragPhone, ContactID: "a", To: 2},
	))

	a, err := b.Contact("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p3", "p1"}, phoneIDs(a.Phones))
	for i, p := range a.Phones {
		assert.Equal(t, i, p.Position)
	}
	assert.Contains(t, store.saved, "a")
}

func TestPhoneDropOnOtherContactRejected(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())

	err := b.Drop(
		DragPayload{Kind: DragPhone, ContactID: "a", From: 0},
		DropTarget{Kind: DragPhone, ContactID: "b", To: 0},
	)
	assert.ErrorIs(t, err, ErrDragMismatch)
}

func TestEmailReorderWithinContact(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())

	require.NoError(t, b.Drop(
		DragPayload{Kind: DragEmail, ContactID: "a", From: 1},
		DropTarget{Kind: DragEmail, ContactID: "a", To: 0},
	))
	a, _ := b.Contact("a")
	assert.Equal(t, "e2", a.Emails[0].Id)
	assert.Equal(t, "e1", a.Emails[1].Id)
}

func TestReorderBlockedWhileEditing(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())
	require.NoError(t, b.BeginEdit("a"))

	err := b.Drop(
		DragPayload{Kind: DragContact, From: 0},
		DropTarget{Kind: DragContact, To: 2},
	)
	assert.ErrorIs(t, err, ErrEditInProgress)

	err = b.Drop(
		DragPayload{Kind: DragPhone, ContactID: "a", From: 0},
		DropTarget{Kind: DragPhone, ContactID: "a", To: 1},
	)
	assert.ErrorIs(t, err, ErrEditInProgress)
}

func TestToggleExpandAll(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())

	assert.True(t, b.ToggleExpandAll())
	for _, c := range b.Contacts() {
		assert.True(t, c.IsExpanded)
	}
	assert.False(t, b.ToggleExpandAll())
	for _, c := range b.Contacts() {
		assert.False(t, c.IsExpanded)
	}
}

func TestToggleExpandBlockedWhileEditing(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())

	require.NoError(t, b.ToggleExpand("b"))
	c, _ := b.Contact("b")
	assert.True(t, c.IsExpanded)

	require.NoError(t, b.BeginEdit("a"))
	assert.ErrorIs(t, b.ToggleExpand("a"), ErrEditInProgress)
}

func TestAddContactPrependsExpanded(t *testing.T) {
	store := newMemStore()
	b := NewBoard("prop1", testContacts(), store)

	added, err := b.AddContact()
	require.NoError(t, err)
	assert.NotEmpty(t, added.Id)
	assert.Equal(t, "New", added.FirstName)
	assert.Equal(t, "Contact", added.LastName)
	assert.True(t, added.IsExpanded)

	contacts := b.Contacts()
	require.Len(t, contacts, 5)
	assert.Equal(t, added.Id, contacts[0].Id)
	for i, c := range contacts {
		assert.Equal(t, i, c.Position)
	}
}

func TestDeleteContactRequiresConfirmation(t *testing.T) {
	store := newMemStore()
	b := NewBoard("prop1", testContacts(), store)

	assert.ErrorIs(t, b.DeleteContact("a", false), ErrConfirmationRequired)
	assert.Len(t, b.Contacts(), 4)
	assert.Empty(t, store.deleted)

	require.NoError(t, b.DeleteContact("a", true))
	assert.Equal(t, []string{"b", "c", "d"}, contactIDs(b.Contacts()))
	assert.Equal(t, []string{"a"}, store.deleted)

	assert.ErrorIs(t, b.DeleteContact("nope", true), ErrContactNotFound)
}

func TestDeleteContactDropsEditSession(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())
	require.NoError(t, b.BeginEdit("a"))
	require.NoError(t, b.DeleteContact("a", true))
	assert.Empty(t, b.EditingIDs())
}
