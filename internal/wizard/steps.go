package wizard

// Step is an index into the wizard's fixed step sequence.
type Step int

const (
	StepIdentity Step = iota
	StepFilingInfo
	StepDependents
	StepIncome
	StepDeductions
	StepCredits
	StepBanking
	StepConsent
)

// StepCount is the number of wizard steps.
const StepCount = int(StepConsent) + 1

var stepNames = [StepCount]string{
	"Contact & Identity",
	"Filing Info",
	"Dependents",
	"Income",
	"Deductions",
	"Credits",
	"Banking",
	"Consents & Signatures",
}

func (s Step) String() string {
	if s < 0 || int(s) >= StepCount {
		return "unknown"
	}
	return stepNames[s]
}

// UploadCategory returns the file category collected on this step, or "" if
// the step has no upload panel.
func (s Step) UploadCategory() Category {
	switch s {
	case StepIdentity:
		return CategoryID
	case StepIncome:
		return CategoryIncome
	case StepDeductions:
		return CategoryDeductions
	case StepCredits:
		return CategoryCredits
	default:
		return ""
	}
}
