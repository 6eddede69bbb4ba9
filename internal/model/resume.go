package model

// Go models that match the resume.schema.json used for validation and
// rendering. Field names mirror the JSON contract the web editor submits.
// Every field is optional for rendering purposes; absent values suppress
// the corresponding element instead of rendering an empty label.

// PhotoConfig is the normalized crop state of the profile photo: the focal
// center as a percentage position inside the frame (50,50 = centered) and a
// magnification factor. Zoom 1 means the image exactly fills its frame.
type PhotoConfig struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// DefaultPhotoConfig is applied whenever a photo exists without an explicit
// crop, and after every fresh upload.
func DefaultPhotoConfig() PhotoConfig {
	return PhotoConfig{X: 50, Y: 50, Zoom: 1}
}

type PersonalDetails struct {
	FullName    string       `json:"fullName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Location    string       `json:"location"`
	JobTitle    string       `json:"jobTitle"`
	Website     string       `json:"website"`
	PhotoURL    string       `json:"photoUrl,omitempty"`
	PhotoConfig *PhotoConfig `json:"photoConfig,omitempty"`
}

// Experience rows keep free-form date strings; "Present" is a valid end
// date and is never parsed. Description newlines are preserved by the
// renderer.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// ResumeData is the aggregate the editor owns. It is replaced wholesale on
// every mutation; nothing in this package mutates it in place.
type ResumeData struct {
	PersonalDetails PersonalDetails `json:"personalDetails"`
	Summary         string          `json:"summary"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	Skills          []string        `json:"skills"`
}

// IsEmpty reports whether the resume carries no user content at all, which
// is when the sample seed is offered to the editor.
func (r ResumeData) IsEmpty() bool {
	return r.PersonalDetails.FullName == "" &&
		r.Summary == "" &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0
}
