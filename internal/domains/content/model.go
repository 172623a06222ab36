package content

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// The five content kinds served by the API. Each lives in its own Mongo
// collection; none of them reference each other. Identifiers and creation
// timestamps are assigned once at insert and never change.

// Kind names double as collection names and cache key segments.
const (
	KindInfo      = "info"
	KindGallery   = "gallery"
	KindDirectory = "directory"
	KindAgenda    = "agenda"
	KindAbout     = "about"
)

// Info is an announcement shown on the public info page.
type Info struct {
	ID          bson.ObjectID `bson:"_id" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Category    string        `bson:"category" json:"category"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

// Gallery is a single photo entry.
type Gallery struct {
	ID          bson.ObjectID `bson:"_id" json:"id"`
	Title       string        `bson:"title" json:"title"`
	ImageURL    string        `bson:"imageUrl" json:"imageUrl"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Category    string        `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

// Directory is one student profile.
type Directory struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Position  string        `bson:"position,omitempty" json:"position,omitempty"`
	Photo     string        `bson:"photo,omitempty" json:"photo,omitempty"`
	Origin    string        `bson:"origin,omitempty" json:"origin,omitempty"`
	Bio       string        `bson:"bio,omitempty" json:"bio,omitempty"`
	Instagram string        `bson:"instagram,omitempty" json:"instagram,omitempty"`
	LinkedIn  string        `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub    string        `bson:"github,omitempty" json:"github,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// Agenda is a scheduled class event. Date is the form value "YYYY-MM-DD",
// Time an optional "HH:MM"; both are kept as entered rather than cast to
// a timestamp.
type Agenda struct {
	ID          bson.ObjectID `bson:"_id" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Date        string        `bson:"date" json:"date"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Time        string        `bson:"time,omitempty" json:"time,omitempty"`
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`
	Category    string        `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

// About holds the class description. Modeled as a collection even though
// the site only ever shows one document.
type About struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	Content   string        `bson:"content" json:"content"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
