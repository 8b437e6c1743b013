package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/eventhub/internal/access"
	"github.com/dmitrijs2005/eventhub/internal/common"
)

// Users lists the users matching term (all users for an empty term).
func (a *App) Users(ctx context.Context, term string) error {
	if err := a.allow(ctx, access.ActionManageUsers); err != nil {
		return err
	}

	found := a.users.Search(term)
	if len(found) == 0 {
		fmt.Fprintln(a.out, "No users.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tADMIN\tACTIVE\tLAST LOGIN")
	for _, u := range found {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%s\n", u.ID, u.Name, u.Email, u.IsAdmin, u.Active(), u.LastLogin)
	}
	return tw.Flush()
}

func (a *App) ToggleAdmin(ctx context.Context, id string) error {
	if err := a.allow(ctx, access.ActionManageUsers); err != nil {
		return err
	}
	if _, ok := a.users.Get(id); !ok {
		return fmt.Errorf("user %s: %w", id, common.ErrorNotFound)
	}

	if err := a.users.ToggleAdmin(ctx, id); err != nil {
		return err
	}

	u, _ := a.users.Get(id)
	fmt.Fprintf(a.out, "%s admin: %t\n", u.Email, u.IsAdmin)
	if id == a.session().UserID() {
		fmt.Fprintln(a.out, "Your own role changes on your next login.")
	}
	return nil
}

func (a *App) ToggleActive(ctx context.Context, id string) error {
	if err := a.allow(ctx, access.ActionManageUsers); err != nil {
		return err
	}
	u, ok := a.users.Get(id)
	if !ok {
		return fmt.Errorf("user %s: %w", id, common.ErrorNotFound)
	}

	if err := a.users.SetActive(ctx, id, !u.Active()); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s active: %t\n", u.Email, !u.Active())
	return nil
}

// DeleteUser removes a user after confirmation.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	if err := a.allow(ctx, access.ActionManageUsers); err != nil {
		return err
	}
	u, ok := a.users.Get(id)
	if !ok {
		return fmt.Errorf("user %s: %w", id, common.ErrorNotFound)
	}

	yes, err := confirm(a.in, fmt.Sprintf("Delete user %s?", u.Email))
	if err != nil || !yes {
		return err
	}

	if err := a.users.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}
