package panel

// DragKind discriminates the three draggable collection kinds. A drop target
// only honors a payload carrying its own kind; anything else is a no-op, so a
// phone row dragged across a contact-card boundary can never splice the
// contact list.
type DragKind string

const (
	DragContact DragKind = "contact"
	DragPhone   DragKind = "phone"
	DragEmail   DragKind = "email"
)

// DragPayload is set once when a drag gesture starts. From is the element's
// position in the list the user sees (for contacts, the filtered view).
type DragPayload struct {
	Kind      DragKind `json:"kind"`
	ContactID string   `json:"contact_id,omitempty"` // owning contact for phone/email drags
	From      int      `json:"from"`
}

// DropTarget describes where the payload was released.
type DropTarget struct {
	Kind      DragKind `json:"kind"`
	ContactID string   `json:"contact_id,omitempty"`
	To        int      `json:"to"`
}
