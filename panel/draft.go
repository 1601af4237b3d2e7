package panel

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"proprospect-backend/models"
	"proprospect-backend/utils"
)

// Draft is the scratch buffer of one edit session: a deep copy of the
// contact taken at BeginEdit. Field mutations land here and nowhere else;
// the committed contact is untouched until CommitEdit merges the draft back.
type Draft struct {
	contact        models.Contact
	selectedEmails map[string]struct{}
	ageInput       *string
	now            func() time.Time
}

func newDraft(contact models.Contact, now func() time.Time) *Draft {
	return &Draft{
		contact:        cloneContact(contact),
		selectedEmails: make(map[string]struct{}),
		now:            now,
	}
}

// Contact returns a copy of the draft's current state.
func (d *Draft) Contact() models.Contact {
	return cloneContact(d.contact)
}

func (d *Draft) SetFirstName(v string) { d.contact.FirstName = v }
func (d *Draft) SetLastName(v string)  { d.contact.LastName = v }
func (d *Draft) SetAddress(v string)   { d.contact.Address = v }

// SetAge records raw age input. Coercion (negative or unparseable => 0)
// happens once at commit, never on intermediate keystrokes.
func (d *Draft) SetAge(input string) {
	d.ageInput = &input
}

func (d *Draft) ToggleDeceased() {
	d.contact.IsDeceased = !d.contact.IsDeceased
}

func (d *Draft) ToggleRelationship(tag models.ContactRelationship) {
	for i, r := range d.contact.Relationships {
		if r == tag {
			d.contact.Relationships = append(d.contact.Relationships[:i], d.contact.Relationships[i+1:]...)
			return
		}
	}
	d.contact.Relationships = append(d.contact.Relationships, tag)
}

// AddPhone appends a blank phone row to the draft. New rows start Unknown
// with no status-change date.
func (d *Draft) AddPhone() models.PhoneData {
	phone := models.PhoneData{
		Id:        uuid.NewString(),
		ContactID: d.contact.Id,
		Type:      models.PhoneTypeMobile,
		Status:    models.PhoneStatusUnknown,
	}
	d.contact.Phones = append(d.contact.Phones, phone)
	return phone
}

// SetPhoneNumber applies formatted text input to a phone row. Text edits
// never touch StatusChangedDate.
func (d *Draft) SetPhoneNumber(phoneID, raw string) bool {
	for i := range d.contact.Phones {
		if d.contact.Phones[i].Id == phoneID {
			d.contact.Phones[i].Number = utils.FormatPhoneNumber(raw)
			return true
		}
	}
	return false
}

func (d *Draft) SetPhoneType(phoneID string, t models.PhoneType) bool {
	for i := range d.contact.Phones {
		if d.contact.Phones[i].Id == phoneID {
			d.contact.Phones[i].Type = t
			return true
		}
	}
	return false
}

// SetPhoneStatus is the only mutation that stamps StatusChangedDate.
func (d *Draft) SetPhoneStatus(phoneID string, s models.PhoneStatus) bool {
	for i := range d.contact.Phones {
		if d.contact.Phones[i].Id == phoneID {
			changed := d.now()
			d.contact.Phones[i].Status = s
			d.contact.Phones[i].StatusChangedDate = &changed
			return true
		}
	}
	return false
}

func (d *Draft) RemovePhone(phoneID string) bool {
	for i := range d.contact.Phones {
		if d.contact.Phones[i].Id == phoneID {
			d.contact.Phones = append(d.contact.Phones[:i], d.contact.Phones[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Draft) AddEmail() models.EmailData {
	email := models.EmailData{
		Id:        uuid.NewString(),
		ContactID: d.contact.Id,
	}
	d.contact.Emails = append(d.contact.Emails, email)
	return email
}

func (d *Draft) SetEmail(emailID, v string) bool {
	for i := range d.contact.Emails {
		if d.contact.Emails[i].Id == emailID {
			d.contact.Emails[i].Email = v
			return true
		}
	}
	return false
}

// ToggleEmailSelected accumulates the bulk-delete selection. The selection
// lives only inside this edit session.
func (d *Draft) ToggleEmailSelected(emailID string) {
	if _, ok := d.selectedEmails[emailID]; ok {
		delete(d.selectedEmails, emailID)
	} else {
		d.selectedEmails[emailID] = struct{}{}
	}
}

func (d *Draft) SelectedEmails() []string {
	ids := make([]string, 0, len(d.selectedEmails))
	for id := range d.selectedEmails {
		ids = append(ids, id)
	}
	return ids
}

// DeleteSelectedEmails removes every selected email from the draft and
// clears the selection set. Nothing happens when the selection is empty.
func (d *Draft) DeleteSelectedEmails() int {
	if len(d.selectedEmails) == 0 {
		return 0
	}
	kept := d.contact.Emails[:0]
	removed := 0
	for _, e := range d.contact.Emails {
		if _, selected := d.selectedEmails[e.Id]; selected {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	d.contact.Emails = kept
	d.selectedEmails = make(map[string]struct{})
	return removed
}

// cleaned applies the commit cleanup rules in order: drop phones with empty
// trimmed numbers, drop emails with empty trimmed addresses, then coerce age.
func (d *Draft) cleaned() models.Contact {
	c := cloneContact(d.contact)

	phones := c.Phones[:0]
	for _, p := range c.Phones {
		if strings.TrimSpace(p.Number) != "" {
			phones = append(phones, p)
		}
	}
	c.Phones = phones

	emails := c.Emails[:0]
	for _, e := range c.Emails {
		if strings.TrimSpace(e.Email) != "" {
			emails = append(emails, e)
		}
	}
	c.Emails = emails

	if d.ageInput != nil {
		c.Age = utils.ParseAge(*d.ageInput)
	} else if c.Age < 0 {
		c.Age = 0
	}
	return c
}

func cloneContact(c models.Contact) models.Contact {
	out := c
	out.Phones = make([]models.PhoneData, len(c.Phones))
	copy(out.Phones, c.Phones)
	for i, p := range c.Phones {
		if p.StatusChangedDate != nil {
			t := *p.StatusChangedDate
			out.Phones[i].StatusChangedDate = &t
		}
	}
	out.Emails = make([]models.EmailData, len(c.Emails))
	copy(out.Emails, c.Emails)
	out.Relationships = make([]models.ContactRelationship, len(c.Relationships))
	copy(out.Relationships, c.Relationships)
	return out
}
