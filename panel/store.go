package panel

import "proprospect-backend/models"

// Store is the whole-entity persistence boundary. The engine receives the
// full contact collection on load and hands back complete entities on each
// mutation; the store never sees partial patches.
type Store interface {
	LoadContacts(propertyID string) ([]models.Contact, error)
	SaveContact(contact *models.Contact) error
	SaveContacts(contacts []models.Contact) error
	DeleteContactByID(id string) error
}
