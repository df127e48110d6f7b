package coach

// Name identifies a coach persona. The set is open: adding a coach means
// adding a Profile to the seed list, not branching elsewhere.
type Name string

const (
	// NameTara is the calm, supportive coach for younger students.
	NameTara Name = "Coach Tara"
	// NameRavi is the energetic, exam-focused coach for older students.
	NameRavi Name = "Coach Ravi"
)

// Profile pairs a coach identity with the behavioral prompt handed to
// whatever responder generates replies on its behalf. Immutable after seed.
type Profile struct {
	Name         Name   `json:"name"`
	SystemPrompt string `json:"systemPrompt"`
}

// Seed provides the default coach roster shipped with the service.
func Seed() []Profile {
	return []Profile{
		{
			Name: NameTara,
			SystemPrompt: "You are Coach Tara, calm, encouraging, and age-appropriate for Grades 6-8. " +
				"Use short, warm explanations and confidence-building language.",
		},
		{
			Name: NameRavi,
			SystemPrompt: "You are Coach Ravi, energetic and exam-focused for Grades 9-12. " +
				"Give practical steps, accountability, and revision tactics.",
		},
	}
}
