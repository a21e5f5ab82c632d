package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"loginportal/internal/guard"
)

// Input seams, swappable in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and attempts to authenticate. On success
// the user lands on the account page; on failure the session manager's
// message is shown as-is.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	fetchCtx, cancel := a.fetchCtx(ctx)
	defer cancel()

	ok, msg := a.session.Login(fetchCtx, username, password)
	if !ok {
		printlnFn(msg)
		return nil
	}

	printlnFn("Login successful")
	a.navigate(guard.AccountPath)
	return nil
}

// Logout drops the session and returns to the login page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Warn(ctx, "persisted session not cleared", "error", err)
	}
	a.navigate(guard.HomePath)
	printlnFn("Logged out")
	return nil
}

// Whoami prints the authenticated user.
func (a *App) Whoami() error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s %s (%s)", u.Name, u.Surname, u.Credentials.Username))
	return nil
}

// Fetch loads the catalog from the data server.
func (a *App) Fetch(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	fetchCtx, cancel := a.fetchCtx(ctx)
	defer cancel()

	if err := a.catalog.Fetch(fetchCtx); err != nil {
		printlnFn("Не удалось загрузить данные о продуктах")
		return err
	}
	printlnFn(fmt.Sprintf("Loaded %d products", len(a.catalog.Products())))
	return nil
}

// List prints the current filtered view.
func (a *App) List() error {
	if !a.requireLogin() {
		return nil
	}

	filtered := a.catalog.Filtered()
	if len(filtered) == 0 {
		printlnFn("No products to show")
		return nil
	}
	for _, p := range filtered {
		printlnFn(fmt.Sprintf("%4d  %-20s %-12s %8.2f  x%d  %s  %s",
			p.ID, p.Name, p.Category, p.Price, p.Quantity, p.Status,
			p.DateCreated.Format("2006-01-02")))
	}
	return nil
}

// Categories prints all known categories, marking the selected ones.
func (a *App) Categories() error {
	if !a.requireLogin() {
		return nil
	}

	selected := make(map[string]struct{})
	for _, c := range a.catalog.SelectedCategories() {
		selected[c] = struct{}{}
	}
	for _, c := range a.catalog.Categories() {
		mark := " "
		if _, ok := selected[c]; ok {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("[%s] %s", mark, c))
	}
	return nil
}

// Filter toggles a category on or off.
func (a *App) Filter(args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: filter <category>")
		return nil
	}

	category := strings.Join(args, " ")
	a.catalog.ToggleCategory(category)
	printlnFn(fmt.Sprintf("%d of %d products shown", len(a.catalog.Filtered()), len(a.catalog.Products())))
	return nil
}

// Dates sets the creation-date range. Bounds are YYYY-MM-DD; "-" leaves a
// bound open. Both bounds are replaced on every call.
func (a *App) Dates(args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) == 0 || len(args) > 2 {
		printlnFn("Usage: dates <start|-> [end|-]")
		return nil
	}

	start, err := parseDateArg(args[0])
	if err != nil {
		printlnFn("Invalid start date:", args[0])
		return nil
	}

	var end *time.Time
	if len(args) == 2 {
		end, err = parseDateArg(args[1])
		if err != nil {
			printlnFn("Invalid end date:", args[1])
			return nil
		}
	}

	a.catalog.SetDateRange(start, end)
	printlnFn(fmt.Sprintf("%d of %d products shown", len(a.catalog.Filtered()), len(a.catalog.Products())))
	return nil
}

// Clear resets all filter criteria.
func (a *App) Clear() error {
	if !a.requireLogin() {
		return nil
	}
	a.catalog.ClearFilters()
	printlnFn("Filters cleared")
	return nil
}

// Goto simulates navigation; the guard may redirect.
func (a *App) Goto(args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: goto <path>")
		return nil
	}
	a.navigate(args[0])
	printlnFn("Now at", a.path)
	return nil
}

func (a *App) requireLogin() bool {
	if a.session.Authenticated() {
		return true
	}
	printlnFn("Please login first")
	return false
}

func parseDateArg(s string) (*time.Time, error) {
	if s == "-" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
