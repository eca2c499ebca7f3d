package entity

// FaceRegistration is one line of the append-only face log. Names are not
// unique; several registrations may share one name.
type FaceRegistration struct {
	Name      string
	ImagePath string
}
