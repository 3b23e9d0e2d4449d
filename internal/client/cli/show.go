package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerline/taxintake/internal/intake"
	"github.com/ledgerline/taxintake/internal/wizard"
)

// Show prints the current step and the record fields belonging to it.
func (a *App) Show(ctx context.Context) error {
	rec := a.controller.Record()
	step := a.controller.Step()

	var b strings.Builder
	fmt.Fprintf(&b, "Step %d/%d: %s", int(step)+1, wizard.StepCount, step)
	if a.controller.Locked() {
		b.WriteString("  [submitted, read-only]")
	}
	b.WriteString("\n")
	renderStep(&b, step, rec)

	printlnFn(b.String())
	return nil
}

// Fields lists the "set" field names available on the current step.
func (a *App) Fields(ctx context.Context) error {
	step := a.controller.Step()
	names := fieldNamesForStep(step)
	if len(names) == 0 {
		printlnFn("This step has no settable fields; use adddep/setdep/rmdep or upload.")
		return nil
	}
	printlnFn("Fields on this step:", strings.Join(names, ", "))
	return nil
}

func renderStep(b *strings.Builder, step wizard.Step, rec intake.Record) {
	switch step {
	case wizard.StepIdentity:
		row(b, "tax_year", rec.TaxYear)
		row(b, "legal_name", rec.LegalName)
		row(b, "phone", rec.Phone)
		row(b, "email", rec.Email)
		row(b, "ssn", maskTail(rec.SSN))
		row(b, "address1", rec.Address1)
		row(b, "address2", rec.Address2)
		row(b, "city", rec.City)
		row(b, "state", rec.State)
		row(b, "zip", rec.Zip)

	case wizard.StepFilingInfo:
		row(b, "filing_status", string(rec.FilingStatus))
		if rec.FilingStatus == intake.FilingMarriedJointly || rec.FilingStatus == intake.FilingMarriedSeparately {
			row(b, "spouse_name", rec.SpouseName)
			row(b, "spouse_dob", rec.SpouseDOB)
			row(b, "spouse_ssn", maskTail(rec.SpouseSSN))
		}

	case wizard.StepDependents:
		if len(rec.Dependents) == 0 {
			b.WriteString("  no dependents (use 'adddep' to add one)\n")
			return
		}
		for i, d := range rec.Dependents {
			fmt.Fprintf(b, "  [%d] %s (%s) dob=%s ssn=%s months=%s claimed_elsewhere=%v\n",
				i, d.Name, d.Relationship, d.DOB, maskTail(d.SSN), d.MonthsInHome, d.ClaimedBySomeoneElse)
		}

	case wizard.StepIncome:
		flagRow(b, "w2", rec.IncomeSources.W2)
		flagRow(b, "unemployment", rec.IncomeSources.Unemployment1099G)
		flagRow(b, "ssa", rec.IncomeSources.SSA1099)
		flagRow(b, "self_employed", rec.IncomeSources.SelfEmployed)
		flagRow(b, "interest", rec.IncomeSources.Interest1099INT)
		flagRow(b, "dividends", rec.IncomeSources.Dividends1099DIV)
		flagRow(b, "ira_pension", rec.IncomeSources.IRAPension1099R)
		flagRow(b, "brokerage", rec.IncomeSources.Brokerage1099B)
		row(b, "income_other", rec.IncomeSources.Other)
		if rec.IncomeSources.SelfEmployed {
			row(b, "business_name", rec.Business.BusinessName)
			row(b, "business_legal", rec.Business.LegalName)
			row(b, "ein", rec.Business.EIN)
			row(b, "business_address", rec.Business.BusinessAddress)
			row(b, "business_type", rec.Business.BusinessType)
			row(b, "business_started", rec.Business.StartedDate)
			row(b, "bookkeeping", string(rec.Business.BookkeepingMethod))
		}

	case wizard.StepDeductions:
		flagRow(b, "student_loan", rec.Deductions.StudentLoanInterest)
		flagRow(b, "ira_contrib", rec.Deductions.IRAContributions)
		flagRow(b, "hsa_contrib", rec.Deductions.HSAContributions)
		flagRow(b, "educator", rec.Deductions.EducatorExpenses)
		flagRow(b, "mortgage", rec.Deductions.MortgageInterest1098)
		flagRow(b, "property_taxes", rec.Deductions.PropertyTaxes)
		flagRow(b, "charitable", rec.Deductions.CharitableContributions)
		flagRow(b, "medical", rec.Deductions.MedicalExpenses)
		row(b, "deductions_other", rec.Deductions.Other)
		row(b, "deductions_notes", rec.DeductionsNotes)

	case wizard.StepCredits:
		flagRow(b, "child_tax", rec.Credits.ChildTaxCredit)
		flagRow(b, "child_care", rec.Credits.ChildCare)
		flagRow(b, "education", rec.Credits.Education)
		flagRow(b, "retirement", rec.Credits.RetirementSaver)
		flagRow(b, "earned_income", rec.Credits.EarnedIncome)
		flagRow(b, "ev", rec.Credits.EVCredit)
		row(b, "credits_other", rec.Credits.Other)
		row(b, "credits_notes", rec.CreditsNotes)

	case wizard.StepBanking:
		row(b, "routing", rec.Banking.RoutingNumber)
		row(b, "account", maskTail(rec.Banking.AccountNumber))
		row(b, "account_type", string(rec.Banking.AccountType))
		row(b, "bank", rec.Banking.BankName)

	case wizard.StepConsent:
		row(b, "notes", rec.Notes)
		flagRow(b, "esign", rec.Consent.AgreeToESign)
		flagRow(b, "disclosures", rec.Consent.AgreeToDisclosures)
		row(b, "signature", rec.Consent.SignatureName)
		row(b, "signature_date", rec.Consent.SignatureDate)
	}
}

func row(b *strings.Builder, name, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(b, "  %-18s %s\n", name, value)
}

func flagRow(b *strings.Builder, name string, v bool) {
	val := "no"
	if v {
		val = "yes"
	}
	row(b, name, val)
}

// maskTail hides all but the last four characters of a sensitive value.
func maskTail(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}
