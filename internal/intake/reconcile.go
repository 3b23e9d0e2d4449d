package intake

import "encoding/json"

// Reconcile merges an arbitrary stored JSON payload over DefaultRecord and
// returns a record satisfying the full current schema. Rows written by older
// builds may miss fields or hold malformed values; no migration scripts are
// run, so this is the only schema-upgrade mechanism.
//
// Behavior for malformed input:
//   - unparsable or non-object payloads yield DefaultRecord unchanged
//   - a value of the wrong type is ignored and the default is kept
//   - a malformed dependents array is replaced with an empty slice
//   - nested objects are merged field by field over their defaults
//
// Reconcile never panics.
func Reconcile(raw []byte) Record {
	rec := DefaultRecord()

	var m map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &m) != nil || m == nil {
		return rec
	}

	str(m, "tax_year", &rec.TaxYear)

	str(m, "legal_name", &rec.LegalName)
	str(m, "phone", &rec.Phone)
	str(m, "email", &rec.Email)
	str(m, "ssn", &rec.SSN)
	str(m, "address1", &rec.Address1)
	str(m, "address2", &rec.Address2)
	str(m, "city", &rec.City)
	str(m, "state", &rec.State)
	str(m, "zip", &rec.Zip)

	if v, ok := m["filing_status"].(string); ok {
		rec.FilingStatus = FilingStatus(v)
	}

	str(m, "spouse_name", &rec.SpouseName)
	str(m, "spouse_dob", &rec.SpouseDOB)
	str(m, "spouse_ssn", &rec.SpouseSSN)

	rec.Dependents = reconcileDependents(m["dependents"])

	if sub, ok := m["income_sources"].(map[string]any); ok {
		flag(sub, "w2", &rec.IncomeSources.W2)
		flag(sub, "unemployment_1099g", &rec.IncomeSources.Unemployment1099G)
		flag(sub, "ssa_1099", &rec.IncomeSources.SSA1099)
		flag(sub, "self_employed", &rec.IncomeSources.SelfEmployed)
		flag(sub, "interest_1099int", &rec.IncomeSources.Interest1099INT)
		flag(sub, "dividends_1099div", &rec.IncomeSources.Dividends1099DIV)
		flag(sub, "ira_pension_1099r", &rec.IncomeSources.IRAPension1099R)
		flag(sub, "brokerage_1099b", &rec.IncomeSources.Brokerage1099B)
		str(sub, "other", &rec.IncomeSources.Other)
	}

	if sub, ok := m["business"].(map[string]any); ok {
		str(sub, "business_name", &rec.Business.BusinessName)
		str(sub, "legal_name", &rec.Business.LegalName)
		str(sub, "ein", &rec.Business.EIN)
		str(sub, "business_address", &rec.Business.BusinessAddress)
		str(sub, "business_type", &rec.Business.BusinessType)
		str(sub, "started_date", &rec.Business.StartedDate)
		if v, ok := sub["bookkeeping_method"].(string); ok {
			rec.Business.BookkeepingMethod = BookkeepingMethod(v)
		}
	}

	if sub, ok := m["deductions"].(map[string]any); ok {
		flag(sub, "student_loan_interest", &rec.Deductions.StudentLoanInterest)
		flag(sub, "ira_contributions", &rec.Deductions.IRAContributions)
		flag(sub, "hsa_contributions", &rec.Deductions.HSAContributions)
		flag(sub, "educator_expenses", &rec.Deductions.EducatorExpenses)
		flag(sub, "mortgage_interest_1098", &rec.Deductions.MortgageInterest1098)
		flag(sub, "property_taxes", &rec.Deductions.PropertyTaxes)
		flag(sub, "charitable_contributions", &rec.Deductions.CharitableContributions)
		flag(sub, "medical_expenses", &rec.Deductions.MedicalExpenses)
		str(sub, "other", &rec.Deductions.Other)
	}
	str(m, "deductions_notes", &rec.DeductionsNotes)

	if sub, ok := m["credits"].(map[string]any); ok {
		flag(sub, "child_tax_credit", &rec.Credits.ChildTaxCredit)
		flag(sub, "child_care", &rec.Credits.ChildCare)
		flag(sub, "education", &rec.Credits.Education)
		flag(sub, "retirement_savers", &rec.Credits.RetirementSaver)
		flag(sub, "earned_income", &rec.Credits.EarnedIncome)
		flag(sub, "ev_credit", &rec.Credits.EVCredit)
		str(sub, "other", &rec.Credits.Other)
	}
	str(m, "credits_notes", &rec.CreditsNotes)

	if sub, ok := m["banking"].(map[string]any); ok {
		str(sub, "routing_number", &rec.Banking.RoutingNumber)
		str(sub, "account_number", &rec.Banking.AccountNumber)
		if v, ok := sub["account_type"].(string); ok {
			rec.Banking.AccountType = AccountType(v)
		}
		str(sub, "bank_name", &rec.Banking.BankName)
	}

	str(m, "notes", &rec.Notes)

	if sub, ok := m["consent"].(map[string]any); ok {
		flag(sub, "agree_to_esign", &rec.Consent.AgreeToESign)
		flag(sub, "agree_to_disclosures", &rec.Consent.AgreeToDisclosures)
		str(sub, "signature_name", &rec.Consent.SignatureName)
		str(sub, "signature_date", &rec.Consent.SignatureDate)
	}

	return rec
}

func reconcileDependents(v any) []Dependent {
	arr, ok := v.([]any)
	if !ok {
		return []Dependent{}
	}
	out := make([]Dependent, 0, len(arr))
	for _, el := range arr {
		sub, ok := el.(map[string]any)
		if !ok {
			continue
		}
		var d Dependent
		str(sub, "id", &d.ID)
		str(sub, "name", &d.Name)
		str(sub, "relationship", &d.Relationship)
		str(sub, "dob", &d.DOB)
		str(sub, "ssn", &d.SSN)
		str(sub, "months_in_home", &d.MonthsInHome)
		flag(sub, "claimed_by_someone_else", &d.ClaimedBySomeoneElse)
		out = append(out, d)
	}
	return out
}

// str copies m[key] into dst when it is a string, otherwise leaves dst alone.
func str(m map[string]any, key string, dst *string) {
	if v, ok := m[key].(string); ok {
		*dst = v
	}
}

// flag copies m[key] into dst when it is a bool, otherwise leaves dst alone.
func flag(m map[string]any, key string, dst *bool) {
	if v, ok := m[key].(bool); ok {
		*dst = v
	}
}
