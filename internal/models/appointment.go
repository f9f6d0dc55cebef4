package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	AppointmentPending = "pending"
	AppointmentPaid    = "paid"
)

// Appointment is the typed view of an appointment document. Booking payloads
// carry additional free-form fields (date, slot, doctor, fee, ...) which are
// stored and returned untouched. The transaction id field keeps the wire name
// the existing clients send.
type Appointment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	TransactionID string             `bson:"tranjactionId,omitempty" json:"tranjactionId,omitempty"`
}
