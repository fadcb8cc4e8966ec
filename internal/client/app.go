package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/atotto/clipboard"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App dispatches one command per Run call to the server adapter.
type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	copyToClipboard func(string) error

	commands map[string]command
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer) *App {
	a := &App{
		adapter:         serverAdapter,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
	}

	a.commands = map[string]command{
		"register":        {usage: "create an account", run: a.register},
		"login":           {usage: "log in and print the token", run: a.login},
		"current":         {usage: "show the current user", run: a.current},
		"update-profile":  {usage: "change name and/or password", run: a.updateProfile},
		"logout":          {usage: "invalidate the token", run: a.logout},
		"contacts-create": {usage: "create a contact", run: a.createContact},
		"contacts-get":    {usage: "show a contact", run: a.getContact},
		"contacts-update": {usage: "replace a contact", run: a.updateContact},
		"contacts-delete": {usage: "delete a contact", run: a.deleteContact},
		"contacts-search": {usage: "search contacts", run: a.searchContacts},
		"version":         {usage: "show the server version", run: a.version},
	}

	return a
}

// Run executes the command named by args[0] with the remaining arguments as
// its flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, a.Usage())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], a.Usage())
	}

	return cmd.run(ctx, args[1:])
}

// Usage lists the available commands.
func (a *App) Usage() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:")
	for _, name := range names {
		fmt.Fprintf(&b, "\n  %-16s %s", name, a.commands[name].usage)
	}
	return b.String()
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := newFlagSet("register")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.Name, "name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}

	printLine(a.out, renderUser("Registered", user))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	var copyToken bool
	fs := newFlagSet("login")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.BoolVar(&copyToken, "copy-token", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}

	printLine(a.out, renderUser("Logged in", user))

	if copyToken {
		if err = a.copyToClipboard(user.Token); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		printLine(a.out, helpStyle.Render("token copied to clipboard"))
	}
	return nil
}

func (a *App) current(ctx context.Context, args []string) error {
	if err := newFlagSet("current").Parse(args); err != nil {
		return err
	}

	user, err := a.adapter.Current(ctx)
	if err != nil {
		return err
	}

	printLine(a.out, renderUser("Current user", user))
	return nil
}

func (a *App) updateProfile(ctx context.Context, args []string) error {
	var name, password string
	fs := newFlagSet("update-profile")
	fs.StringVar(&name, "name", "", "new display name")
	fs.StringVar(&password, "password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req models.UpdateUserRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = &name
		case "password":
			req.Password = &password
		}
	})

	user, err := a.adapter.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	printLine(a.out, renderUser("Profile updated", user))
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := newFlagSet("logout").Parse(args); err != nil {
		return err
	}

	if err := a.adapter.Logout(ctx); err != nil {
		return err
	}

	printLine(a.out, titleStyle.Render("Logged out"))
	return nil
}

// contactFlags binds the contact fields to fs. Optional fields are only set
// when their flag is given.
func contactFlags(fs *flag.FlagSet, contact *models.Contact) func() {
	var lastName, email, phone string
	fs.StringVar(&contact.FirstName, "first-name", "", "first name")
	fs.StringVar(&lastName, "last-name", "", "last name")
	fs.StringVar(&email, "email", "", "email address")
	fs.StringVar(&phone, "phone", "", "phone number")

	return func() {
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "last-name":
				contact.LastName = &lastName
			case "email":
				contact.Email = &email
			case "phone":
				contact.Phone = &phone
			}
		})
	}
}

func (a *App) createContact(ctx context.Context, args []string) error {
	var contact models.Contact
	fs := newFlagSet("contacts-create")
	applyOptional := contactFlags(fs, &contact)
	if err := fs.Parse(args); err != nil {
		return err
	}
	applyOptional()

	created, err := a.adapter.CreateContact(ctx, contact)
	if err != nil {
		return err
	}

	printLine(a.out, renderContact("Contact created", created))
	return nil
}

func (a *App) getContact(ctx context.Context, args []string) error {
	var id int64
	fs := newFlagSet("contacts-get")
	fs.Int64Var(&id, "id", 0, "contact id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id <= 0 {
		return ErrMissingID
	}

	contact, err := a.adapter.GetContact(ctx, id)
	if err != nil {
		return err
	}

	printLine(a.out, renderContact("Contact", contact))
	return nil
}

func (a *App) updateContact(ctx context.Context, args []string) error {
	var contact models.Contact
	fs := newFlagSet("contacts-update")
	fs.Int64Var(&contact.ID, "id", 0, "contact id")
	applyOptional := contactFlags(fs, &contact)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if contact.ID <= 0 {
		return ErrMissingID
	}
	applyOptional()

	updated, err := a.adapter.UpdateContact(ctx, contact)
	if err != nil {
		return err
	}

	printLine(a.out, renderContact("Contact updated", updated))
	return nil
}

func (a *App) deleteContact(ctx context.Context, args []string) error {
	var id int64
	fs := newFlagSet("contacts-delete")
	fs.Int64Var(&id, "id", 0, "contact id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id <= 0 {
		return ErrMissingID
	}

	if err := a.adapter.DeleteContact(ctx, id); err != nil {
		return err
	}

	printLine(a.out, titleStyle.Render(fmt.Sprintf("Contact %d deleted", id)))
	return nil
}

func (a *App) searchContacts(ctx context.Context, args []string) error {
	var search models.ContactSearch
	fs := newFlagSet("contacts-search")
	fs.StringVar(&search.Name, "name", "", "first or last name contains")
	fs.StringVar(&search.Email, "email", "", "email contains")
	fs.StringVar(&search.Phone, "phone", "", "phone contains")
	fs.IntVar(&search.Page, "page", 0, "page number")
	fs.IntVar(&search.Size, "size", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	contacts, meta, err := a.adapter.SearchContacts(ctx, search)
	if err != nil {
		return err
	}

	printLine(a.out, renderContactList(contacts, meta))
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := newFlagSet("version").Parse(args); err != nil {
		return err
	}

	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	printLine(a.out, renderFields("Server", field{key: "version", value: v}))
	return nil
}
