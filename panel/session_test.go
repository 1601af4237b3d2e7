package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proprospect-backend/models"
)

func TestBeginEditForcesExpanded(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())

	require.NoError(t, b.BeginEdit("a"))
	c, err := b.Contact("a")
	require.NoError(t, err)
	assert.True(t, c.IsExpanded)
	assert.Equal(t, []string{"a"}, b.EditingIDs())

	assert.ErrorIs(t, b.BeginEdit("a"), ErrEditInProgress)
	assert.ErrorIs(t, b.BeginEdit("nope"), ErrContactNotFound)
}

func TestWithDraftWithoutSession(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())

	err := b.WithDraft("a", func(d *Draft) error { return nil })
	assert.ErrorIs(t, err, ErrNoEditSession)
	assert.ErrorIs(t, b.CancelEdit("a"), ErrNoEditSession)
	_, err = b.CommitEdit("a")
	assert.ErrorIs(t, err, ErrNoEditSession)
}

func TestDraftEditsStayOffCommittedState(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())
	require.NoError(t, b.BeginEdit("a"))

	require.NoError(t, b.WithDraft("a", func(d *Draft) error {
		d.SetFirstName("Alicia")
		d.SetPhoneNumber("p1", "5559990000")
		return nil
	}))

	c, err := b.Contact("a")
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.FirstName)
	assert.Equal(t, "(555) 111-1111", c.Phones[0].Number)
}

func TestCancelEditRestoresCommittedState(t *testing.T) {
	store := newMemStore()
	b := NewBoard("prop1", testContacts(), store)
	before, err := b.Contact("a")
	require.NoError(t, err)
	before.IsExpanded = true // BeginEdit expands the committed card

	require.NoError(t, b.BeginEdit("a"))
	require.NoError(t, b.WithDraft("a", func(d *Draft) error {
		d.SetFirstName("Alicia")
		d.SetLastName("Anders")
		d.SetAge("99")
		d.ToggleDeceased()
		d.ToggleRelationship(models.RelOwner)
		d.AddPhone()
		d.SetPhoneStatus("p1", models.PhoneStatusDisconnected)
		d.RemovePhone("p2")
		d.AddEmail()
		d.ToggleEmailSelected("e1")
		d.DeleteSelectedEmails()
		return nil
	}))
	require.NoError(t, b.CancelEdit("a"))

	after, err := b.Contact("a")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, b.EditingIDs())
	assert.NotContains(t, store.saved, "a", "cancel must not persist anything")
}

func TestCommitEditReplacesAndPersists(t *testing.T) {
	store := newMemStore()
	b := NewBoard("prop1", testContacts(), store)
	require.NoError(t, b.BeginEdit("a"))

	require.NoError(t, b.WithDraft("a", func(d *Draft) error {
		d.SetFirstName("Alicia")
		d.SetAddress("9 Elm St")
		return nil
	}))

	committed, err := b.CommitEdit("a")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", committed.FirstName)
	assert.Equal(t, "9 Elm St", committed.Address)
	assert.Equal(t, 0, committed.Position, "commit keeps the slot position")

	c, err := b.Contact("a")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", c.FirstName)
	assert.Empty(t, b.EditingIDs())
	assert.Contains(t, store.saved, "a")
}

func TestCommitDropsBlankPhonesAndEmails(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())
	require.NoError(t, b.BeginEdit("a"))

	var blank, kept models.PhoneData
	require.NoError(t, b.WithDraft("a", func(d *Draft) error {
		blank = d.AddPhone()
		kept = d.AddPhone()
		d.SetPhoneNumber(kept.Id, "4155550123")
		d.AddEmail() // never filled in
		return nil
	}))

	committed, err := b.CommitEdit("a")
	require.NoError(t, err)

	ids := phoneIDs(committed.Phones)
	assert.NotContains(t, ids, blank.Id)
	assert.Contains(t, ids, kept.Id)
	assert.Len(t, committed.Emails, 2, "the untouched blank email row is dropped")

	var added models.PhoneData
	for _, p := range committed.Phones {
		if p.Id == kept.Id {
			added = p
		}
	}
	assert.Equal(t, "(415) 555-0123", added.Number)
	assert.Equal(t, models.PhoneStatusUnknown, added.Status)
	assert.Nil(t, added.StatusChangedDate, "no status edit, no stamp")
	for i, p := range committed.Phones {
		assert.Equal(t, i, p.Position)
	}
}

func TestCommitCoercesAge(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"52", 52},
		{"-5", 0},
		{"abc", 0},
		{"", 0},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			b := NewBoard("prop1", testContacts(), newMemStore())
			require.NoError(t, b.BeginEdit("a"))
			require.NoError(t, b.WithDraft("a", func(d *Draft) error {
				d.SetAge(tc.input)
				return nil
			}))
			committed, err := b.CommitEdit("a")
			require.NoError(t, err)
			assert.Equal(t, tc.want, committed.Age)
		})
	}
}

func TestStatusChangeStampsDate(t *testing.T) {
	fixed := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	b := NewBoard("prop1", testContacts(), newMemStore())
	b.SetClock(func() time.Time { return fixed })
	require.NoError(t, b.BeginEdit("a"))

	require.NoError(t, b.WithDraft("a", func(d *Draft) error {
		require.True(t, d.SetPhoneStatus("p1", models.PhoneStatusCorrect))
		// A later number edit must not touch the stamp.
		require.True(t, d.SetPhoneNumber("p1", "2125550000"))
		return nil
	}))

	committed, err := b.CommitEdit("a")
	require.NoError(t, err)
	p := committed.Phones[0]
	assert.Equal(t, models.PhoneStatusCorrect, p.Status)
	require.NotNil(t, p.StatusChangedDate)
	assert.Equal(t, fixed, *p.StatusChangedDate)
	assert.Equal(t, "(212) 555-0000", p.Number)
	assert.Nil(t, committed.Phones[1].StatusChangedDate, "other rows untouched")
}

func TestToggleRelationship(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())
	require.NoError(t, b.BeginEdit("b"))

	require.NoError(t, b.WithDraft("b", func(d *Draft) error {
		d.ToggleRelationship(models.RelHeir)
		d.ToggleRelationship(models.RelPersonalRep)
		d.ToggleRelationship(models.RelHeir) // second toggle removes
		return nil
	}))
	committed, err := b.CommitEdit("b")
	require.NoError(t, err)
	assert.Equal(t, []models.ContactRelationship{models.RelPersonalRep}, []models.ContactRelationship(committed.Relationships))
}

func TestEmailBulkDelete(t *testing.T) {
	b := NewBoard("prop1", testContacts(), newMemStore())
	require.NoError(t, b.BeginEdit("a"))

	require.NoError(t, b.WithDraft("a", func(d *Draft) error {
		d.ToggleEmailSelected("e1")
		d.ToggleEmailSelected("e2")
		d.ToggleEmailSelected("e2") // deselect
		assert.ElementsMatch(t, []string{"e1"}, d.SelectedEmails())

		assert.Equal(t, 1, d.DeleteSelectedEmails())
		assert.Empty(t, d.SelectedEmails(), "selection clears after the bulk delete")
		assert.Equal(t, 0, d.DeleteSelectedEmails())
		return nil
	}))

	committed, err := b.CommitEdit("a")
	require.NoError(t, err)
	require.Len(t, committed.Emails, 1)
	assert.Equal(t, "e2", committed.Emails[0].Id)
}

func TestManagerReusesBoards(t *testing.T) {
	m := NewManager(newMemStore())

	b1, err := m.Board("prop1")
	require.NoError(t, err)
	b2, err := m.Board("prop1")
	require.NoError(t, err)
	assert.Same(t, b1, b2)

	other, err := m.Board("prop2")
	require.NoError(t, err)
	assert.NotSame(t, b1, other)
}
