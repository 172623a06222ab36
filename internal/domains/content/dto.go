package content

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Request DTOs for the five kinds. Create requests validate the full
// required set and produce a ready-to-insert model; update requests use
// pointer fields so that only the fields actually sent end up in the
// $set document (replace-the-fields-sent, never a deep merge).

// CreateRequest is implemented by every create DTO.
type CreateRequest[T any] interface {
	Validate() error
	// ToModel builds the model with a fresh id and creation timestamp.
	ToModel() *T
}

// UpdateRequest is implemented by every update DTO.
type UpdateRequest interface {
	Validate() error
	// Fields returns the $set document for the fields present in the request.
	Fields() bson.M
}

// ---------------------------------------------------------------
// Info
// ---------------------------------------------------------------

var infoCategories = []interface{}{"exam", "event", "info"}

type CreateInfoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r *CreateInfoRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(infoCategories...).Error("category must be one of: exam, event, info"),
		),
	)
}

func (r *CreateInfoRequest) ToModel() *Info {
	return &Info{
		ID:          bson.NewObjectID(),
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		CreatedAt:   time.Now().UTC(),
	}
}

type UpdateInfoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func (r *UpdateInfoRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Category, validation.In(infoCategories...).Error("category must be one of: exam, event, info")),
	)
}

func (r *UpdateInfoRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "title", r.Title)
	setString(fields, "description", r.Description)
	setString(fields, "category", r.Category)
	return fields
}

// ---------------------------------------------------------------
// Gallery
// ---------------------------------------------------------------

var galleryCategories = []interface{}{"makrab", "graduation", "social", "academic"}

type CreateGalleryRequest struct {
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r *CreateGalleryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.ImageURL,
			validation.Required.Error("imageUrl is required"),
			is.URL.Error("imageUrl must be a valid URL"),
		),
		validation.Field(&r.Category, validation.In(galleryCategories...).Error("category must be one of: makrab, graduation, social, academic")),
	)
}

func (r *CreateGalleryRequest) ToModel() *Gallery {
	return &Gallery{
		ID:          bson.NewObjectID(),
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Category:    r.Category,
		CreatedAt:   time.Now().UTC(),
	}
}

type UpdateGalleryRequest struct {
	Title       *string `json:"title"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func (r *UpdateGalleryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ImageURL, is.URL.Error("imageUrl must be a valid URL")),
		validation.Field(&r.Category, validation.In(galleryCategories...).Error("category must be one of: makrab, graduation, social, academic")),
	)
}

func (r *UpdateGalleryRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "title", r.Title)
	setString(fields, "imageUrl", r.ImageURL)
	setString(fields, "description", r.Description)
	setString(fields, "category", r.Category)
	return fields
}

// ---------------------------------------------------------------
// Directory
// ---------------------------------------------------------------

type CreateDirectoryRequest struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	Photo     string `json:"photo"`
	Origin    string `json:"origin"`
	Bio       string `json:"bio"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
}

func (r *CreateDirectoryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Photo, is.URL.Error("photo must be a valid URL")),
	)
}

func (r *CreateDirectoryRequest) ToModel() *Directory {
	return &Directory{
		ID:        bson.NewObjectID(),
		Name:      r.Name,
		Position:  r.Position,
		Photo:     r.Photo,
		Origin:    r.Origin,
		Bio:       r.Bio,
		Instagram: r.Instagram,
		LinkedIn:  r.LinkedIn,
		GitHub:    r.GitHub,
		CreatedAt: time.Now().UTC(),
	}
}

type UpdateDirectoryRequest struct {
	Name      *string `json:"name"`
	Position  *string `json:"position"`
	Photo     *string `json:"photo"`
	Origin    *string `json:"origin"`
	Bio       *string `json:"bio"`
	Instagram *string `json:"instagram"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
}

func (r *UpdateDirectoryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Photo, is.URL.Error("photo must be a valid URL")),
	)
}

func (r *UpdateDirectoryRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "name", r.Name)
	setString(fields, "position", r.Position)
	setString(fields, "photo", r.Photo)
	setString(fields, "origin", r.Origin)
	setString(fields, "bio", r.Bio)
	setString(fields, "instagram", r.Instagram)
	setString(fields, "linkedin", r.LinkedIn)
	setString(fields, "github", r.GitHub)
	return fields
}

// ---------------------------------------------------------------
// Agenda
// ---------------------------------------------------------------

var agendaCategories = []interface{}{"academic", "social", "competition"}

const agendaDateLayout = "2006-01-02"

type CreateAgendaRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

func (r *CreateAgendaRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Date(agendaDateLayout).Error("date must be YYYY-MM-DD"),
		),
		validation.Field(&r.Time, validation.Date("15:04").Error("time must be HH:MM")),
		validation.Field(&r.Category, validation.In(agendaCategories...).Error("category must be one of: academic, social, competition")),
	)
}

func (r *CreateAgendaRequest) ToModel() *Agenda {
	return &Agenda{
		ID:          bson.NewObjectID(),
		Title:       r.Title,
		Date:        r.Date,
		Description: r.Description,
		Time:        r.Time,
		Location:    r.Location,
		Category:    r.Category,
		CreatedAt:   time.Now().UTC(),
	}
}

type UpdateAgendaRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
}

func (r *UpdateAgendaRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Date, validation.Date(agendaDateLayout).Error("date must be YYYY-MM-DD")),
		validation.Field(&r.Time, validation.Date("15:04").Error("time must be HH:MM")),
		validation.Field(&r.Category, validation.In(agendaCategories...).Error("category must be one of: academic, social, competition")),
	)
}

func (r *UpdateAgendaRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "title", r.Title)
	setString(fields, "date", r.Date)
	setString(fields, "description", r.Description)
	setString(fields, "time", r.Time)
	setString(fields, "location", r.Location)
	setString(fields, "category", r.Category)
	return fields
}

// ---------------------------------------------------------------
// About
// ---------------------------------------------------------------

type CreateAboutRequest struct {
	Content string `json:"content"`
}

func (r *CreateAboutRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

func (r *CreateAboutRequest) ToModel() *About {
	return &About{
		ID:        bson.NewObjectID(),
		Content:   r.Content,
		CreatedAt: time.Now().UTC(),
	}
}

type UpdateAboutRequest struct {
	Content *string `json:"content"`
}

func (r *UpdateAboutRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content, validation.Length(1, 0).Error("content cannot be empty")),
	)
}

func (r *UpdateAboutRequest) Fields() bson.M {
	fields := bson.M{}
	setString(fields, "content", r.Content)
	return fields
}

func setString(fields bson.M, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}
