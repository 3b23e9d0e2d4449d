// Package intake defines the intake record: the full set of answers a client
// provides for one tax filing, stored as a single JSON payload. The JSON tags
// are the wire format of the stored data column and must stay stable.
package intake

// Status is the lifecycle tag of an intake submission. Draft is the only
// mutable state; anything else is read-only for the owner.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
)

// FilingStatus is one of the IRS filing statuses, or empty when unset.
type FilingStatus string

const (
	FilingSingle                    FilingStatus = "Single"
	FilingMarriedJointly            FilingStatus = "Married Filing Jointly"
	FilingMarriedSeparately         FilingStatus = "Married Filing Separately"
	FilingHeadOfHousehold           FilingStatus = "Head of Household"
	FilingQualifyingSurvivingSpouse FilingStatus = "Qualifying Surviving Spouse"
)

// AccountType is the refund deposit account kind, or empty when unset.
type AccountType string

const (
	AccountChecking AccountType = "Checking"
	AccountSavings  AccountType = "Savings"
)

// BookkeepingMethod is the accounting method of a self-employed business.
type BookkeepingMethod string

const (
	BookkeepingCash    BookkeepingMethod = "Cash"
	BookkeepingAccrual BookkeepingMethod = "Accrual"
)

// Dependent is one dependent claimed on the return. ID is an opaque generated
// identifier, immutable once created; order of the slice is insertion order.
type Dependent struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Relationship         string `json:"relationship"`
	DOB                  string `json:"dob"`
	SSN                  string `json:"ssn"`
	MonthsInHome         string `json:"months_in_home"`
	ClaimedBySomeoneElse bool   `json:"claimed_by_someone_else"`
}

// IncomeSources is the set of income flags. SelfEmployed reveals the
// Business section; Other is unconstrained free text.
type IncomeSources struct {
	W2                bool   `json:"w2"`
	Unemployment1099G bool   `json:"unemployment_1099g"`
	SSA1099           bool   `json:"ssa_1099"`
	SelfEmployed      bool   `json:"self_employed"`
	Interest1099INT   bool   `json:"interest_1099int"`
	Dividends1099DIV  bool   `json:"dividends_1099div"`
	IRAPension1099R   bool   `json:"ira_pension_1099r"`
	Brokerage1099B    bool   `json:"brokerage_1099b"`
	Other             string `json:"other"`
}

// BusinessInfo describes a self-employed business. Only relevant while
// IncomeSources.SelfEmployed is set, but always present in the payload.
type BusinessInfo struct {
	BusinessName      string            `json:"business_name"`
	LegalName         string            `json:"legal_name"`
	EIN               string            `json:"ein"`
	BusinessAddress   string            `json:"business_address"`
	BusinessType      string            `json:"business_type"`
	StartedDate       string            `json:"started_date"`
	BookkeepingMethod BookkeepingMethod `json:"bookkeeping_method"`
}

type Deductions struct {
	StudentLoanInterest     bool   `json:"student_loan_interest"`
	IRAContributions        bool   `json:"ira_contributions"`
	HSAContributions        bool   `json:"hsa_contributions"`
	EducatorExpenses        bool   `json:"educator_expenses"`
	MortgageInterest1098    bool   `json:"mortgage_interest_1098"`
	PropertyTaxes           bool   `json:"property_taxes"`
	CharitableContributions bool   `json:"charitable_contributions"`
	MedicalExpenses         bool   `json:"medical_expenses"`
	Other                   string `json:"other"`
}

type Credits struct {
	ChildTaxCredit  bool   `json:"child_tax_credit"`
	ChildCare       bool   `json:"child_care"`
	Education       bool   `json:"education"`
	RetirementSaver bool   `json:"retirement_savers"`
	EarnedIncome    bool   `json:"earned_income"`
	EVCredit        bool   `json:"ev_credit"`
	Other           string `json:"other"`
}

type Banking struct {
	RoutingNumber string      `json:"routing_number"`
	AccountNumber string      `json:"account_number"`
	AccountType   AccountType `json:"account_type"`
	BankName      string      `json:"bank_name"`
}

// Consent carries the two required acknowledgements plus the typed signature.
type Consent struct {
	AgreeToESign       bool   `json:"agree_to_esign"`
	AgreeToDisclosures bool   `json:"agree_to_disclosures"`
	SignatureName      string `json:"signature_name"`
	SignatureDate      string `json:"signature_date"` // mm/dd/yyyy
}

// Record is the full intake payload for one submission.
type Record struct {
	TaxYear string `json:"tax_year"`

	// Contact & Identity.
	LegalName string `json:"legal_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	SSN       string `json:"ssn"` // full SSN
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`

	FilingStatus FilingStatus `json:"filing_status"`

	SpouseName string `json:"spouse_name"`
	SpouseDOB  string `json:"spouse_dob"`
	SpouseSSN  string `json:"spouse_ssn"`

	Dependents []Dependent `json:"dependents"`

	IncomeSources IncomeSources `json:"income_sources"`
	Business      BusinessInfo  `json:"business"`

	Deductions      Deductions `json:"deductions"`
	DeductionsNotes string     `json:"deductions_notes"`

	Credits      Credits `json:"credits"`
	CreditsNotes string  `json:"credits_notes"`

	Banking Banking `json:"banking"`

	Notes string `json:"notes"`

	Consent Consent `json:"consent"`
}

// Clone returns a deep copy of the record. The only reference-typed field is
// the dependents slice, which is copied element by element.
func (r Record) Clone() Record {
	out := r
	if r.Dependents != nil {
		out.Dependents = make([]Dependent, len(r.Dependents))
		copy(out.Dependents, r.Dependents)
	}
	return out
}
