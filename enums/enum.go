package enums

const (
	SexMale   = "Male"
	SexFemale = "Female"

	DateLayout = "2006-01-02"

	DefaultProfileID = 1

	ResultDeficit = "deficit"
	ResultSurplus = "surplus"
)
