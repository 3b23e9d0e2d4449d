package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgerline/taxintake/internal/wizard"
)

// AddDep appends a blank dependent row.
func (a *App) AddDep(ctx context.Context) error {
	if err := a.controller.Update(wizard.AddDependent()); err != nil {
		printlnFn("error:", err)
		return err
	}
	return a.Show(ctx)
}

// RmDep removes the dependent at the given index.
func (a *App) RmDep(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: rmdep <index>")
		return nil
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("error: not an index:", args[0])
		return err
	}
	if err := a.controller.Update(wizard.RemoveDependent(i)); err != nil {
		printlnFn("error:", err)
		return err
	}
	return a.Show(ctx)
}

// SetDep updates one field of a dependent: setdep <index> <field> <value...>.
// Fields: name, relationship, dob, ssn, months, claimed.
func (a *App) SetDep(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: setdep <index> <field> <value>")
		return nil
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("error: not an index:", args[0])
		return err
	}
	field := args[1]
	value := strings.Join(args[2:], " ")

	var mut wizard.Mutation
	switch field {
	case "name":
		mut = wizard.SetDependentName(i, value)
	case "relationship":
		mut = wizard.SetDependentRelationship(i, value)
	case "dob":
		mut = wizard.SetDependentDOB(i, value)
	case "ssn":
		mut = wizard.SetDependentSSN(i, value)
	case "months":
		mut = wizard.SetDependentMonthsInHome(i, value)
	case "claimed":
		b, err := parseBool(value)
		if err != nil {
			printlnFn("error:", err)
			return err
		}
		mut = wizard.SetDependentClaimedBySomeoneElse(i, b)
	default:
		err := fmt.Errorf("unknown dependent field %q", field)
		printlnFn("error:", err)
		return err
	}

	if err := a.controller.Update(mut); err != nil {
		printlnFn("error:", err)
		return err
	}
	return nil
}
