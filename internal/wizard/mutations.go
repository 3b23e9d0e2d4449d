package wizard

import (
	"github.com/google/uuid"

	"github.com/ledgerline/taxintake/internal/intake"
)

// Mutation is one field-level edit. The controller applies mutations to a
// fresh copy of the record, so a mutation never sees shared state.
type Mutation func(r *intake.Record)

// Contact & Identity.

func SetTaxYear(v string) Mutation   { return func(r *intake.Record) { r.TaxYear = v } }
func SetLegalName(v string) Mutation { return func(r *intake.Record) { r.LegalName = v } }
func SetPhone(v string) Mutation     { return func(r *intake.Record) { r.Phone = v } }
func SetEmail(v string) Mutation     { return func(r *intake.Record) { r.Email = v } }
func SetSSN(v string) Mutation       { return func(r *intake.Record) { r.SSN = v } }
func SetAddress1(v string) Mutation  { return func(r *intake.Record) { r.Address1 = v } }
func SetAddress2(v string) Mutation  { return func(r *intake.Record) { r.Address2 = v } }
func SetCity(v string) Mutation      { return func(r *intake.Record) { r.City = v } }
func SetState(v string) Mutation     { return func(r *intake.Record) { r.State = v } }
func SetZip(v string) Mutation       { return func(r *intake.Record) { r.Zip = v } }

// Filing Info.

func SetFilingStatus(v intake.FilingStatus) Mutation {
	return func(r *intake.Record) { r.FilingStatus = v }
}
func SetSpouseName(v string) Mutation { return func(r *intake.Record) { r.SpouseName = v } }
func SetSpouseDOB(v string) Mutation  { return func(r *intake.Record) { r.SpouseDOB = v } }
func SetSpouseSSN(v string) Mutation  { return func(r *intake.Record) { r.SpouseSSN = v } }

// Dependents. Add generates the opaque id; field setters address an entry by
// index and are no-ops when the index is out of range.

func AddDependent() Mutation {
	return func(r *intake.Record) {
		r.Dependents = append(r.Dependents, intake.Dependent{ID: uuid.NewString()})
	}
}

func RemoveDependent(i int) Mutation {
	return func(r *intake.Record) {
		if i < 0 || i >= len(r.Dependents) {
			return
		}
		r.Dependents = append(r.Dependents[:i], r.Dependents[i+1:]...)
	}
}

func dependentAt(r *intake.Record, i int) *intake.Dependent {
	if i < 0 || i >= len(r.Dependents) {
		return nil
	}
	return &r.Dependents[i]
}

func SetDependentName(i int, v string) Mutation {
	return func(r *intake.Record) {
		if d := dependentAt(r, i); d != nil {
			d.Name = v
		}
	}
}

func SetDependentRelationship(i int, v string) Mutation {
	return func(r *intake.Record) {
		if d := dependentAt(r, i); d != nil {
			d.Relationship = v
		}
	}
}

func SetDependentDOB(i int, v string) Mutation {
	return func(r *intake.Record) {
		if d := dependentAt(r, i); d != nil {
			d.DOB = v
		}
	}
}

func SetDependentSSN(i int, v string) Mutation {
	return func(r *intake.Record) {
		if d := dependentAt(r, i); d != nil {
			d.SSN = v
		}
	}
}

func SetDependentMonthsInHome(i int, v string) Mutation {
	return func(r *intake.Record) {
		if d := dependentAt(r, i); d != nil {
			d.MonthsInHome = v
		}
	}
}

func SetDependentClaimedBySomeoneElse(i int, v bool) Mutation {
	return func(r *intake.Record) {
		if d := dependentAt(r, i); d != nil {
			d.ClaimedBySomeoneElse = v
		}
	}
}

// Income.

func SetIncomeW2(v bool) Mutation           { return func(r *intake.Record) { r.IncomeSources.W2 = v } }
func SetIncomeUnemployment(v bool) Mutation {
	return func(r *intake.Record) { r.IncomeSources.Unemployment1099G = v }
}
func SetIncomeSSA(v bool) Mutation { return func(r *intake.Record) { r.IncomeSources.SSA1099 = v } }
func SetIncomeSelfEmployed(v bool) Mutation {
	return func(r *intake.Record) { r.IncomeSources.SelfEmployed = v }
}
func SetIncomeInterest(v bool) Mutation {
	return func(r *intake.Record) { r.IncomeSources.Interest1099INT = v }
}
func SetIncomeDividends(v bool) Mutation {
	return func(r *intake.Record) { r.IncomeSources.Dividends1099DIV = v }
}
func SetIncomeIRAPension(v bool) Mutation {
	return func(r *intake.Record) { r.IncomeSources.IRAPension1099R = v }
}
func SetIncomeBrokerage(v bool) Mutation {
	return func(r *intake.Record) { r.IncomeSources.Brokerage1099B = v }
}
func SetIncomeOther(v string) Mutation {
	return func(r *intake.Record) { r.IncomeSources.Other = v }
}

// Business (revealed by the self-employed flag).

func SetBusinessName(v string) Mutation {
	return func(r *intake.Record) { r.Business.BusinessName = v }
}
func SetBusinessLegalName(v string) Mutation {
	return func(r *intake.Record) { r.Business.LegalName = v }
}
func SetBusinessEIN(v string) Mutation { return func(r *intake.Record) { r.Business.EIN = v } }
func SetBusinessAddress(v string) Mutation {
	return func(r *intake.Record) { r.Business.BusinessAddress = v }
}
func SetBusinessType(v string) Mutation {
	return func(r *intake.Record) { r.Business.BusinessType = v }
}
func SetBusinessStartedDate(v string) Mutation {
	return func(r *intake.Record) { r.Business.StartedDate = v }
}
func SetBusinessBookkeepingMethod(v intake.BookkeepingMethod) Mutation {
	return func(r *intake.Record) { r.Business.BookkeepingMethod = v }
}

// Deductions.

func SetDeductionStudentLoanInterest(v bool) Mutation {
	return func(r *intake.Record) { r.Deductions.StudentLoanInterest = v }
}
func SetDeductionIRAContributions(v bool) Mutation {
	return func(r *intake.Record) { r.Deductions.IRAContributions = v }
}
func SetDeductionHSAContributions(v bool) Mutation {
	return func(r *intake.Record) { r.Deductions.HSAContributions = v }
}
func SetDeductionEducatorExpenses(v bool) Mutation {
	return func(r *intake.Record) { r.Deductions.EducatorExpenses = v }
}
func SetDeductionMortgageInterest(v bool) Mutation {
	return func(r *intake.Record) { r.Deductions.MortgageInterest1098 = v }
}
func SetDeductionPropertyTaxes(v bool) Mutation {
	return func(r *intake.Record) { r.Deductions.PropertyTaxes = v }
}
func SetDeductionCharitable(v bool) Mutation {
	return func(r *intake.Record) { r.Deductions.CharitableContributions = v }
}
func SetDeductionMedicalExpenses(v bool) Mutation {
	return func(r *intake.Record) { r.Deductions.MedicalExpenses = v }
}
func SetDeductionsOther(v string) Mutation {
	return func(r *intake.Record) { r.Deductions.Other = v }
}
func SetDeductionsNotes(v string) Mutation {
	return func(r *intake.Record) { r.DeductionsNotes = v }
}

// Credits.

func SetCreditChildTax(v bool) Mutation {
	return func(r *intake.Record) { r.Credits.ChildTaxCredit = v }
}
func SetCreditChildCare(v bool) Mutation {
	return func(r *intake.Record) { r.Credits.ChildCare = v }
}
func SetCreditEducation(v bool) Mutation {
	return func(r *intake.Record) { r.Credits.Education = v }
}
func SetCreditRetirementSaver(v bool) Mutation {
	return func(r *intake.Record) { r.Credits.RetirementSaver = v }
}
func SetCreditEarnedIncome(v bool) Mutation {
	return func(r *intake.Record) { r.Credits.EarnedIncome = v }
}
func SetCreditEV(v bool) Mutation {
	return func(r *intake.Record) { r.Credits.EVCredit = v }
}
func SetCreditsOther(v string) Mutation {
	return func(r *intake.Record) { r.Credits.Other = v }
}
func SetCreditsNotes(v string) Mutation {
	return func(r *intake.Record) { r.CreditsNotes = v }
}

// Banking.

func SetRoutingNumber(v string) Mutation {
	return func(r *intake.Record) { r.Banking.RoutingNumber = v }
}
func SetAccountNumber(v string) Mutation {
	return func(r *intake.Record) { r.Banking.AccountNumber = v }
}
func SetAccountType(v intake.AccountType) Mutation {
	return func(r *intake.Record) { r.Banking.AccountType = v }
}
func SetBankName(v string) Mutation {
	return func(r *intake.Record) { r.Banking.BankName = v }
}

// Notes & Consent.

func SetNotes(v string) Mutation { return func(r *intake.Record) { r.Notes = v } }

func SetAgreeToESign(v bool) Mutation {
	return func(r *intake.Record) { r.Consent.AgreeToESign = v }
}
func SetAgreeToDisclosures(v bool) Mutation {
	return func(r *intake.Record) { r.Consent.AgreeToDisclosures = v }
}
func SetSignatureName(v string) Mutation {
	return func(r *intake.Record) { r.Consent.SignatureName = v }
}
func SetSignatureDate(v string) Mutation {
	return func(r *intake.Record) { r.Consent.SignatureDate = v }
}
