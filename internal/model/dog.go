package model

import "time"

// Gender values accepted for a dog listing. Matching is case-sensitive.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Dog is an adoptable-animal listing. The nested sections are optional
// structured content shown on the dog's detail page; absent sections are
// stored as empty objects with empty ordered lists, never as loose fields.
type Dog struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Subheading string  `json:"subheading,omitempty"`
	PhotoURL   string  `json:"photoUrl"`
	Age        float64 `json:"age"`
	Gender     string  `json:"gender"`
	Breed      string  `json:"breed"`
	Size       string  `json:"size,omitempty"`

	Story           StorySection   `json:"story"`
	Gallery         GallerySection `json:"gallery"`
	AdoptionProcess ProcessSection `json:"adoptionProcess"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StorySection is the free-form biography block of a dog listing.
type StorySection struct {
	Title                string   `json:"title,omitempty"`
	Header               string   `json:"header,omitempty"`
	Paragraphs           []string `json:"paragraphs,omitempty"`
	Badges               []string `json:"badges,omitempty"`
	CompanionHeading     string   `json:"companionHeading,omitempty"`
	CompanionDescription string   `json:"companionDescription,omitempty"`
}

// GallerySection holds the photo gallery of a dog listing. Every image URL
// must satisfy the same http(s) shape check as the main photo.
type GallerySection struct {
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Images   []string `json:"images,omitempty"`
}

// ProcessSection describes the adoption process as an ordered list of steps.
type ProcessSection struct {
	Steps []AdoptionStep `json:"steps,omitempty"`
}

// AdoptionStep is one numbered step of the adoption process. All three
// fields are required when a step is present, and Number must be >= 1.
type AdoptionStep struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DogPatch carries a partial update for a dog listing. Nil fields are left
// untouched.
type DogPatch struct {
	Name            *string
	Subheading      *string
	PhotoURL        *string
	Age             *float64
	Gender          *string
	Breed           *string
	Size            *string
	Story           *StorySection
	Gallery         *GallerySection
	AdoptionProcess *ProcessSection
}

// IsEmpty returns true if the patch would change nothing.
func (p DogPatch) IsEmpty() bool {
	return p.Name == nil && p.Subheading == nil && p.PhotoURL == nil &&
		p.Age == nil && p.Gender == nil && p.Breed == nil && p.Size == nil &&
		p.Story == nil && p.Gallery == nil && p.AdoptionProcess == nil
}
