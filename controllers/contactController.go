package controllers

import (
	"errors"
	"strings"
	"time"

	"proprospect-backend/middlewares"
	"proprospect-backend/models"
	"proprospect-backend/panel"
	"proprospect-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// contactView decorates a contact with the stats the panel header shows.
type contactView struct {
	models.Contact
	ActivePhones      int        `json:"active_phones"`
	UnattemptedPhones int        `json:"unattempted_phones"`
	ActiveEmails      int        `json:"active_emails"`
	LastAttempted     *time.Time `json:"last_attempted,omitempty"`
	LastAttemptedOn   string     `json:"last_attempted_on,omitempty"`
}

func viewOf(contact models.Contact) contactView {
	v := contactView{Contact: contact}
	var last *time.Time
	for _, p := range contact.Phones {
		if strings.TrimSpace(p.Number) == "" {
			continue
		}
		v.ActivePhones++
		if p.Status == models.PhoneStatusUnknown {
			v.UnattemptedPhones++
		}
		if p.StatusChangedDate != nil && (last == nil || p.StatusChangedDate.After(*last)) {
			t := *p.StatusChangedDate
			last = &t
		}
	}
	for _, e := range contact.Emails {
		if strings.TrimSpace(e.Email) != "" {
			v.ActiveEmails++
		}
	}
	v.LastAttempted = last
	if last != nil {
		v.LastAttemptedOn = utils.FormatDateMMDDYYYY(*last)
	}
	return v
}

// engineReply maps engine results onto HTTP. Rejected gestures come back as
// 200 no-ops so a stale client drag can never turn into a surfaced fault.
func engineReply(c *fiber.Ctx, err error) error {
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "success"})
	case errors.Is(err, panel.ErrContactNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Contact not found"})
	case errors.Is(err, panel.ErrConfirmationRequired):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Deletion requires confirmation"})
	case errors.Is(err, panel.ErrNoEditSession):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "No edit session for contact"})
	case panel.IsRejection(err):
		return c.JSON(fiber.Map{"message": "ignored", "reason": err.Error()})
	default:
		return err
	}
}

func boardFor(c *fiber.Ctx) (*panel.Board, error) {
	return Boards.Board(c.Params("id"))
}

// GetPanel returns the visible (search-filtered) contact view plus session
// state. The q query param sets the active search before the view is taken.
func GetPanel(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	if q := c.Query("q", board.Search()); q != board.Search() {
		board.SetSearch(q)
	}

	contacts := board.Contacts()
	views := make([]contactView, len(contacts))
	for i, contact := range contacts {
		views[i] = viewOf(contact)
	}
	return c.JSON(fiber.Map{
		"contacts": views,
		"count":    len(views),
		"search":   board.Search(),
		"editing":  board.EditingIDs(),
	})
}

func AddContact(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	contact, err := board.AddContact()
	if err != nil {
		return err
	}
	return c.JSON(viewOf(contact))
}

type deleteContactRequest struct {
	Confirm bool `json:"confirm"`
}

func DeleteContact(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	var req deleteContactRequest
	_ = c.BodyParser(&req)
	return engineReply(c, board.DeleteContact(c.Params("contactId"), req.Confirm))
}

type reorderRequest struct {
	Payload panel.DragPayload `json:"payload"`
	Target  panel.DropTarget  `json:"target"`
}

// Reorder applies a drag-and-drop gesture against the board. The payload
// carries the collection-kind discriminator set at drag start; mismatches
// are ignored.
func Reorder(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return engineReply(c, board.Drop(req.Payload, req.Target))
}

func ToggleExpandAll(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"expanded": board.ToggleExpandAll()})
}

func ToggleExpand(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	return engineReply(c, board.ToggleExpand(c.Params("contactId")))
}

func BeginEdit(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	if err := board.BeginEdit(c.Params("contactId")); err != nil {
		return engineReply(c, err)
	}
	return draftReply(c, board)
}

func CancelEdit(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	return engineReply(c, board.CancelEdit(c.Params("contactId")))
}

func CommitEdit(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	contact, err := board.CommitEdit(c.Params("contactId"))
	if err != nil {
		return engineReply(c, err)
	}
	return c.JSON(viewOf(contact))
}

type phonePatch struct {
	Id     string  `json:"id" validate:"required"`
	Number *string `json:"number"`
	Type   *string `json:"type" validate:"omitempty,oneof=Mobile Landline Voip Other"`
	Status *string `json:"status" validate:"omitempty,oneof=UNKNOWN CORRECT WRONG DISCONNECTED DNC ATTEMPTED"`
	Delete bool    `json:"delete"`
}

type emailPatch struct {
	Id             string  `json:"id" validate:"required"`
	Email          *string `json:"email"`
	ToggleSelected bool    `json:"toggle_selected"`
}

type draftPatch struct {
	FirstName          *string      `json:"first_name"`
	LastName           *string      `json:"last_name"`
	Address            *string      `json:"address"`
	Age                *string      `json:"age"`
	ToggleDeceased     bool         `json:"toggle_deceased"`
	ToggleRelationship *string      `json:"toggle_relationship" validate:"omitempty,oneof=Owner Heir Petitioner 'Personal Representative' 'Tax Payer' Relative"`
	AddPhone           bool         `json:"add_phone"`
	Phones             []phonePatch `json:"phones" validate:"dive"`
	AddEmail           bool         `json:"add_email"`
	Emails             []emailPatch `json:"emails" validate:"dive"`
	DeleteSelected     bool         `json:"delete_selected_emails"`
}

// UpdateDraft applies a batch of scratch-buffer mutations to the contact's
// edit session. Nothing here touches the committed contact.
func UpdateDraft(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	var patch draftPatch
	if err := middlewares.BindAndValidate(c, &patch); err != nil {
		return err
	}

	err = board.WithDraft(c.Params("contactId"), func(d *panel.Draft) error {
		if patch.FirstName != nil {
			d.SetFirstName(*patch.FirstName)
		}
		if patch.LastName != nil {
			d.SetLastName(*patch.LastName)
		}
		if patch.Address != nil {
			d.SetAddress(*patch.Address)
		}
		if patch.Age != nil {
			d.SetAge(*patch.Age)
		}
		if patch.ToggleDeceased {
			d.ToggleDeceased()
		}
		if patch.ToggleRelationship != nil {
			d.ToggleRelationship(models.ContactRelationship(*patch.ToggleRelationship))
		}
		if patch.AddPhone {
			d.AddPhone()
		}
		for _, p := range patch.Phones {
			if p.Delete {
				d.RemovePhone(p.Id)
				continue
			}
			if p.Number != nil {
				d.SetPhoneNumber(p.Id, *p.Number)
			}
			if p.Type != nil {
				d.SetPhoneType(p.Id, models.PhoneType(*p.Type))
			}
			if p.Status != nil {
				d.SetPhoneStatus(p.Id, models.PhoneStatus(*p.Status))
			}
		}
		if patch.AddEmail {
			d.AddEmail()
		}
		for _, e := range patch.Emails {
			if e.Email != nil {
				d.SetEmail(e.Id, *e.Email)
			}
			if e.ToggleSelected {
				d.ToggleEmailSelected(e.Id)
			}
		}
		if patch.DeleteSelected {
			d.DeleteSelectedEmails()
		}
		return nil
	})
	if err != nil {
		return engineReply(c, err)
	}
	return draftReply(c, board)
}

// draftReply returns the scratch-buffer state plus validity hints for the
// phone rows as typed.
func draftReply(c *fiber.Ctx, board *panel.Board) error {
	var draft models.Contact
	var selected []string
	err := board.WithDraft(c.Params("contactId"), func(d *panel.Draft) error {
		draft = d.Contact()
		selected = d.SelectedEmails()
		return nil
	})
	if err != nil {
		return engineReply(c, err)
	}

	valid := make(map[string]bool, len(draft.Phones))
	for _, p := range draft.Phones {
		valid[p.Id] = p.Number == "" || utils.IsValidPhone(p.Number)
	}
	return c.JSON(fiber.Map{
		"draft":           draft,
		"selected_emails": selected,
		"phone_validity":  valid,
	})
}
