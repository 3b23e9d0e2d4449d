package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ledgerline/taxintake/internal/intake"
	"github.com/ledgerline/taxintake/internal/wizard"
)

// fieldSpec binds a CLI field name to a wizard mutation. Exactly one of str
// and flag is set.
type fieldSpec struct {
	step wizard.Step
	str  func(string) wizard.Mutation
	flag func(bool) wizard.Mutation
}

// fieldRegistry maps the names accepted by "set <field> <value>" to record
// mutations, grouped by the step they belong to.
var fieldRegistry = map[string]fieldSpec{
	// Identity & Contact.
	"tax_year":   {step: wizard.StepIdentity, str: wizard.SetTaxYear},
	"legal_name": {step: wizard.StepIdentity, str: wizard.SetLegalName},
	"phone":      {step: wizard.StepIdentity, str: wizard.SetPhone},
	"email":      {step: wizard.StepIdentity, str: wizard.SetEmail},
	"ssn":        {step: wizard.StepIdentity, str: wizard.SetSSN},
	"address1":   {step: wizard.StepIdentity, str: wizard.SetAddress1},
	"address2":   {step: wizard.StepIdentity, str: wizard.SetAddress2},
	"city":       {step: wizard.StepIdentity, str: wizard.SetCity},
	"state":      {step: wizard.StepIdentity, str: wizard.SetState},
	"zip":        {step: wizard.StepIdentity, str: wizard.SetZip},

	// Filing Info.
	"filing_status": {step: wizard.StepFilingInfo, str: func(v string) wizard.Mutation {
		return wizard.SetFilingStatus(intake.FilingStatus(v))
	}},
	"spouse_name": {step: wizard.StepFilingInfo, str: wizard.SetSpouseName},
	"spouse_dob":  {step: wizard.StepFilingInfo, str: wizard.SetSpouseDOB},
	"spouse_ssn":  {step: wizard.StepFilingInfo, str: wizard.SetSpouseSSN},

	// Income.
	"w2":                {step: wizard.StepIncome, flag: wizard.SetIncomeW2},
	"unemployment":      {step: wizard.StepIncome, flag: wizard.SetIncomeUnemployment},
	"ssa":               {step: wizard.StepIncome, flag: wizard.SetIncomeSSA},
	"self_employed":     {step: wizard.StepIncome, flag: wizard.SetIncomeSelfEmployed},
	"interest":          {step: wizard.StepIncome, flag: wizard.SetIncomeInterest},
	"dividends":         {step: wizard.StepIncome, flag: wizard.SetIncomeDividends},
	"ira_pension":       {step: wizard.StepIncome, flag: wizard.SetIncomeIRAPension},
	"brokerage":         {step: wizard.StepIncome, flag: wizard.SetIncomeBrokerage},
	"income_other":      {step: wizard.StepIncome, str: wizard.SetIncomeOther},
	"business_name":     {step: wizard.StepIncome, str: wizard.SetBusinessName},
	"business_legal":    {step: wizard.StepIncome, str: wizard.SetBusinessLegalName},
	"ein":               {step: wizard.StepIncome, str: wizard.SetBusinessEIN},
	"business_address":  {step: wizard.StepIncome, str: wizard.SetBusinessAddress},
	"business_type":     {step: wizard.StepIncome, str: wizard.SetBusinessType},
	"business_started":  {step: wizard.StepIncome, str: wizard.SetBusinessStartedDate},
	"bookkeeping": {step: wizard.StepIncome, str: func(v string) wizard.Mutation {
		return wizard.SetBusinessBookkeepingMethod(intake.BookkeepingMethod(v))
	}},

	// Deductions.
	"student_loan":     {step: wizard.StepDeductions, flag: wizard.SetDeductionStudentLoanInterest},
	"ira_contrib":      {step: wizard.StepDeductions, flag: wizard.SetDeductionIRAContributions},
	"hsa_contrib":      {step: wizard.StepDeductions, flag: wizard.SetDeductionHSAContributions},
	"educator":         {step: wizard.StepDeductions, flag: wizard.SetDeductionEducatorExpenses},
	"mortgage":         {step: wizard.StepDeductions, flag: wizard.SetDeductionMortgageInterest},
	"property_taxes":   {step: wizard.StepDeductions, flag: wizard.SetDeductionPropertyTaxes},
	"charitable":       {step: wizard.StepDeductions, flag: wizard.SetDeductionCharitable},
	"medical":          {step: wizard.StepDeductions, flag: wizard.SetDeductionMedicalExpenses},
	"deductions_other": {step: wizard.StepDeductions, str: wizard.SetDeductionsOther},
	"deductions_notes": {step: wizard.StepDeductions, str: wizard.SetDeductionsNotes},

	// Credits.
	"child_tax":       {step: wizard.StepCredits, flag: wizard.SetCreditChildTax},
	"child_care":      {step: wizard.StepCredits, flag: wizard.SetCreditChildCare},
	"education":       {step: wizard.StepCredits, flag: wizard.SetCreditEducation},
	"retirement":      {step: wizard.StepCredits, flag: wizard.SetCreditRetirementSaver},
	"earned_income":   {step: wizard.StepCredits, flag: wizard.SetCreditEarnedIncome},
	"ev":              {step: wizard.StepCredits, flag: wizard.SetCreditEV},
	"credits_other":   {step: wizard.StepCredits, str: wizard.SetCreditsOther},
	"credits_notes":   {step: wizard.StepCredits, str: wizard.SetCreditsNotes},

	// Banking.
	"routing": {step: wizard.StepBanking, str: wizard.SetRoutingNumber},
	"account": {step: wizard.StepBanking, str: wizard.SetAccountNumber},
	"account_type": {step: wizard.StepBanking, str: func(v string) wizard.Mutation {
		return wizard.SetAccountType(intake.AccountType(v))
	}},
	"bank": {step: wizard.StepBanking, str: wizard.SetBankName},

	// Review & Consent.
	"notes":          {step: wizard.StepConsent, str: wizard.SetNotes},
	"esign":          {step: wizard.StepConsent, flag: wizard.SetAgreeToESign},
	"disclosures":    {step: wizard.StepConsent, flag: wizard.SetAgreeToDisclosures},
	"signature":      {step: wizard.StepConsent, str: wizard.SetSignatureName},
	"signature_date": {step: wizard.StepConsent, str: wizard.SetSignatureDate},
}

// parseField resolves one "set" argument pair into a mutation.
func parseField(name, value string) (wizard.Mutation, error) {
	spec, ok := fieldRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown field %q", name)
	}
	if spec.flag != nil {
		b, err := parseBool(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		return spec.flag(b), nil
	}
	return spec.str(value), nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "y", "yes", "on":
		return true, nil
	case "n", "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("expected a yes/no value, got %q", v)
	}
	return b, nil
}

// fieldNamesForStep lists the registry names belonging to a step, sorted, for
// the help output.
func fieldNamesForStep(step wizard.Step) []string {
	var names []string
	for name, spec := range fieldRegistry {
		if spec.step == step {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
