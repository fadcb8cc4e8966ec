package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

type field struct {
	key   string
	value string
}

func renderFields(title string, fields ...field) string {
	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, f := range fields {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(f.key), f.value))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderUser(title string, user models.UserResponse) string {
	fields := []field{
		{key: "username", value: user.Username},
		{key: "name", value: user.Name},
	}
	if user.Token != "" {
		fields = append(fields, field{key: "token", value: user.Token})
	}
	return renderFields(title, fields...)
}

func renderContact(title string, contact models.Contact) string {
	return renderFields(title,
		field{key: "id", value: strconv.FormatInt(contact.ID, 10)},
		field{key: "first name", value: contact.FirstName},
		field{key: "last name", value: optional(contact.LastName)},
		field{key: "email", value: optional(contact.Email)},
		field{key: "phone", value: optional(contact.Phone)},
	)
}

func renderContactList(contacts []models.Contact, meta models.PageMeta) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Contacts (page %d of %d, %d total)", meta.Page, meta.LastPage, meta.Total)))
	for _, c := range contacts {
		name := strings.TrimSpace(c.FirstName + " " + optional(c.LastName))
		fmt.Fprintf(&b, "\n%s %s", keyStyle.Render("#"+strconv.FormatInt(c.ID, 10)), name)
		if c.Email != nil {
			b.WriteString(" " + helpStyle.Render("<"+*c.Email+">"))
		}
		if c.Phone != nil {
			b.WriteString(" " + helpStyle.Render(*c.Phone))
		}
	}
	if len(contacts) == 0 {
		b.WriteString("\n" + helpStyle.Render("no contacts found"))
	}
	return boxStyle.Render(b.String())
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func printLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}
