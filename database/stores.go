package database

import (
	"proprospect-backend/models"

	"gorm.io/gorm"
)

// ContactStore implements panel.Store with whole-entity upserts. Each write
// runs in its own short transaction; the engines never see partial rows.
type ContactStore struct{}

func (ContactStore) LoadContacts(propertyID string) ([]models.Contact, error) {
	var contacts []models.Contact
	err := DB.
		Where("property_id = ?", propertyID).
		Order("position ASC").
		Preload("Phones", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Emails", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Find(&contacts).Error
	return contacts, err
}

func (ContactStore) SaveContact(contact *models.Contact) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		return saveContactTx(tx, contact)
	})
}

func (ContactStore) SaveContacts(contacts []models.Contact) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		// Position rewrites touch every contact row; children are saved
		// through their own SaveContact calls.
		for i := range contacts {
			if err := tx.Omit("Phones", "Emails").Save(&contacts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (ContactStore) DeleteContactByID(id string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&models.PhoneData{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", id).Delete(&models.EmailData{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Contact{}).Error
	})
}

func saveContactTx(tx *gorm.DB, contact *models.Contact) error {
	if err := tx.Omit("Phones", "Emails").Save(contact).Error; err != nil {
		return err
	}

	// Replace the child sets wholesale: drop rows no longer present, then
	// upsert what the entity carries.
	phoneIDs := make([]string, 0, len(contact.Phones))
	for _, p := range contact.Phones {
		phoneIDs = append(phoneIDs, p.Id)
	}
	q := tx.Where("contact_id = ?", contact.Id)
	if len(phoneIDs) > 0 {
		q = q.Where("id NOT IN ?", phoneIDs)
	}
	if err := q.Delete(&models.PhoneData{}).Error; err != nil {
		return err
	}
	for i := range contact.Phones {
		if err := tx.Save(&contact.Phones[i]).Error; err != nil {
			return err
		}
	}

	emailIDs := make([]string, 0, len(contact.Emails))
	for _, e := range contact.Emails {
		emailIDs = append(emailIDs, e.Id)
	}
	q = tx.Where("contact_id = ?", contact.Id)
	if len(emailIDs) > 0 {
		q = q.Where("id NOT IN ?", emailIDs)
	}
	if err := q.Delete(&models.EmailData{}).Error; err != nil {
		return err
	}
	for i := range contact.Emails {
		if err := tx.Save(&contact.Emails[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// NoteStore implements activity.NoteStore.
type NoteStore struct{}

func (NoteStore) LoadNotes(propertyID string) ([]models.Note, error) {
	var notes []models.Note
	err := DB.
		Where("property_id = ?", propertyID).
		Order("seq DESC").
		Find(&notes).Error
	return notes, err
}

func (NoteStore) SaveNote(note *models.Note) error {
	return DB.Save(note).Error
}

func (NoteStore) DeleteNoteByID(id string) error {
	return DB.Where("id = ?", id).Delete(&models.Note{}).Error
}
